// Package editorconfig resolves the EditorConfig properties that apply to a
// file.
//
// Resolution walks the directory ancestry of the target, reads every
// .editorconfig found on the way, keeps the pairs whose section header
// matches the target and folds them into one ordered Properties set. Check
// validates a finished set against the value and pairing rules of the
// format.
package editorconfig

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/goeditorconfig/pkg/glob"
	"github.com/yaklabco/goeditorconfig/pkg/inifile"
)

// Precedence selects which config file wins when several set the same name.
type Precedence string

const (
	// PrecedenceNearest lets the file closest to the target win.
	PrecedenceNearest Precedence = "nearest"

	// PrecedenceRoot lets the file closest to the filesystem root win.
	PrecedenceRoot Precedence = "root"
)

// ErrInvalidPrecedence is returned by ParsePrecedence.
var ErrInvalidPrecedence = errors.New("invalid precedence")

// ParsePrecedence converts a string to a Precedence.
// The empty string selects PrecedenceNearest.
func ParsePrecedence(text string) (Precedence, error) {
	switch Precedence(strings.ToLower(strings.TrimSpace(text))) {
	case "", PrecedenceNearest:
		return PrecedenceNearest, nil
	case PrecedenceRoot:
		return PrecedenceRoot, nil
	default:
		return "", fmt.Errorf("%w: %q (expected nearest or root)", ErrInvalidPrecedence, text)
	}
}

// Options configures a Resolver. The zero value is usable.
type Options struct {
	// ConfFileName is the file looked up in each ancestor directory.
	// Defaults to DefaultConfFileName.
	ConfFileName string

	// Precedence selects the override direction. Defaults to PrecedenceNearest.
	Precedence Precedence

	// Version is the behaviour level requested by the caller. A zero value
	// means CurrentVersion; a newer one fails with ErrVersionTooNew.
	Version Version

	// Reader loads config files. Defaults to inifile.NewReader().
	Reader inifile.Reader

	// Logger receives debug output. Defaults to a discarding logger.
	Logger *log.Logger
}

// Resolver resolves properties for target files. It holds no per-call state
// and is safe for concurrent use when its Reader is.
type Resolver struct {
	opts Options
}

// NewResolver creates a Resolver, filling in defaults for unset options.
func NewResolver(opts Options) *Resolver {
	if opts.ConfFileName == "" {
		opts.ConfFileName = DefaultConfFileName
	}
	if opts.Precedence == "" {
		opts.Precedence = PrecedenceNearest
	}
	if opts.Reader == nil {
		opts.Reader = inifile.NewReader()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Resolver{opts: opts}
}

// Trace is the outcome of one resolution.
type Trace struct {
	// Path is the slash-separated target path.
	Path string

	// Properties is the resolved set.
	Properties *Properties

	// Files lists the config files that were read, nearest first.
	Files []string
}

// contribution is one config file read during a resolution.
type contribution struct {
	dir  string
	file *inifile.File
}

// Resolve returns the properties that apply to path.
func (r *Resolver) Resolve(ctx context.Context, path string) (*Properties, error) {
	trace, err := r.Trace(ctx, path)
	if err != nil {
		return nil, err
	}
	return trace.Properties, nil
}

// Trace resolves path and also reports which config files were read.
//
// Candidates are read nearest first. Missing or unreadable candidates are
// skipped. Under PrecedenceNearest the walk stops after a file whose preamble
// declares root = true; PrecedenceRoot always reads up to the filesystem root.
// A malformed candidate aborts resolution with a *ParseError.
func (r *Resolver) Trace(ctx context.Context, path string) (*Trace, error) {
	target, err := normalizeTarget(path)
	if err != nil {
		return nil, err
	}

	if !r.opts.Version.IsZero() && r.opts.Version.Compare(CurrentVersion()) > 0 {
		return nil, fmt.Errorf("%w: %s > %s", ErrVersionTooNew, r.opts.Version, CurrentVersion())
	}

	contributions, err := r.read(ctx, target)
	if err != nil {
		return nil, err
	}

	trace := &Trace{
		Path:  target,
		Files: make([]string, 0, len(contributions)),
	}
	for _, c := range contributions {
		trace.Files = append(trace.Files, c.file.Path)
	}

	if r.opts.Precedence == PrecedenceNearest {
		slices.Reverse(contributions)
	}

	name := target[strings.LastIndexByte(target, '/')+1:]
	props := NewProperties()
	for _, c := range contributions {
		r.fold(props, c, target, name)
	}

	if size, ok := props.Get("indent_size"); ok && !props.Has("tab_width") {
		props.Set("tab_width", size)
	}

	trace.Properties = props
	return trace, nil
}

// read loads every existing candidate for target, nearest first.
func (r *Resolver) read(ctx context.Context, target string) ([]contribution, error) {
	var contributions []contribution

	for _, dir := range ancestors(target) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("resolve %s: %w", target, err)
		}

		candidate := dir + "/" + r.opts.ConfFileName
		file, err := r.opts.Reader.Read(ctx, candidate)
		if err != nil {
			if errors.Is(err, inifile.ErrUnreadable) {
				continue
			}

			var syntaxErr *inifile.SyntaxError
			if errors.As(err, &syntaxErr) {
				return nil, &ParseError{File: candidate, Line: syntaxErr.Line, Err: err}
			}
			return nil, fmt.Errorf("read %s: %w", candidate, err)
		}

		r.opts.Logger.Debug("read config file", "path", candidate, "entries", len(file.Entries))
		contributions = append(contributions, contribution{dir: dir, file: file})

		if file.Root() && r.opts.Precedence == PrecedenceNearest {
			r.opts.Logger.Debug("root config file reached", "path", candidate)
			break
		}
	}

	return contributions, nil
}

// fold sets every pair of c whose section matches the target.
func (r *Resolver) fold(props *Properties, c contribution, target, name string) {
	var (
		section string
		matched bool
	)

	for idx, entry := range c.file.Entries {
		if idx == 0 || entry.Section != section {
			section = entry.Section
			matched = r.sectionMatches(section, c.dir, target, name)
		}
		if matched {
			props.Set(entry.Name, entry.Value)
		}
	}
}

// sectionMatches tests a section header against the target. Headers without
// a "/" see only the bare name; headers with one see the target path
// relative to the directory of the config file they come from.
func (r *Resolver) sectionMatches(section, dir, target, name string) bool {
	pattern, candidate := section, name
	if strings.Contains(section, "/") {
		pattern = strings.TrimPrefix(section, "/")
		candidate = strings.TrimPrefix(target, dir+"/")
	}

	ok, err := glob.Match(pattern, candidate)
	if err != nil {
		r.opts.Logger.Debug("section header does not compile", "section", section, "error", err)
		return false
	}
	return ok
}

// normalizeTarget converts path to slash form and checks that it is absolute.
func normalizeTarget(path string) (string, error) {
	slashed := strings.ReplaceAll(path, `\`, "/")
	if !filepath.IsAbs(path) || !strings.Contains(slashed, "/") {
		return "", fmt.Errorf("%w: %q", ErrNotFullPath, path)
	}
	return slashed, nil
}

// Resolve returns the properties that apply to path using the named config
// file and default options. An empty confName means DefaultConfFileName.
func Resolve(path, confName string) (*Properties, error) {
	return NewResolver(Options{ConfFileName: confName}).Resolve(context.Background(), path)
}
