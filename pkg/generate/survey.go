package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"github.com/yaklabco/goeditorconfig/pkg/fsutil"
	"github.com/yaklabco/goeditorconfig/pkg/langdetect"
)

const (
	// DefaultMaxFiles bounds the number of files a survey inspects.
	DefaultMaxFiles = 10000

	// sniffSize is how much of each file is read for detection.
	sniffSize = 8 * 1024
)

// Options configures Scan and Render.
type Options struct {
	// Strict limits the output to properties the conformance check knows,
	// so every generated set conforms.
	Strict bool

	// MaxFiles overrides DefaultMaxFiles.
	MaxFiles int

	// Logger receives debug output. Defaults to a discarding logger.
	Logger *log.Logger
}

// Usage records where one language appears.
type Usage struct {
	Language   string
	Files      int
	Extensions []string
	Names      []string
}

// Survey is the language inventory of a directory tree.
type Survey struct {
	Root   string
	Usages map[string]*Usage
}

// Languages returns the surveyed language names, sorted.
func (s *Survey) Languages() []string {
	return slices.Sorted(maps.Keys(s.Usages))
}

// Scan walks root and records every file whose language has a profile.
// Vendored trees, dot files and generated files are skipped.
func Scan(ctx context.Context, root string, opts Options) (*Survey, error) {
	opts = withDefaults(opts)
	survey := &Survey{Root: root, Usages: make(map[string]*Usage)}

	seen := 0
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			opts.Logger.Debug("skipping unreadable path", "path", path, "error", walkErr)
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return fmt.Errorf("relative path: %w", relErr)
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if entry.IsDir() {
			if langdetect.Skip(rel + "/") {
				return fs.SkipDir
			}
			return nil
		}
		if !entry.Type().IsRegular() || langdetect.Skip(rel) {
			return nil
		}

		if seen >= opts.MaxFiles {
			opts.Logger.Debug("file limit reached", "limit", opts.MaxFiles)
			return fs.SkipAll
		}
		seen++

		content, readErr := fsutil.ReadHead(ctx, path, sniffSize)
		if readErr != nil {
			opts.Logger.Debug("skipping unreadable file", "path", path, "error", readErr)
			return nil
		}
		if langdetect.Generated(rel, content) {
			return nil
		}

		language := langdetect.Detect(entry.Name(), content)
		if _, ok := ProfileFor(language); !ok {
			opts.Logger.Debug("no profile for file", "path", rel, "language", language)
			return nil
		}
		survey.record(language, entry.Name())
		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("scan cancelled: %w", err)
		}
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	for _, usage := range survey.Usages {
		usage.Extensions = lo.Uniq(usage.Extensions)
		usage.Names = lo.Uniq(usage.Names)
		slices.Sort(usage.Extensions)
		slices.Sort(usage.Names)
	}
	return survey, nil
}

func (s *Survey) record(language, name string) {
	usage, ok := s.Usages[language]
	if !ok {
		usage = &Usage{Language: language}
		s.Usages[language] = usage
	}
	usage.Files++

	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" || ext == strings.TrimPrefix(name, ".") {
		usage.Names = append(usage.Names, name)
		return
	}
	usage.Extensions = append(usage.Extensions, ext)
}

func withDefaults(opts Options) Options {
	if opts.MaxFiles <= 0 {
		opts.MaxFiles = DefaultMaxFiles
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return opts
}
