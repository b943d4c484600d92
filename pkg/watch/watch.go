// Package watch re-resolves a file whenever one of its config file
// candidates is created, edited or removed.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/yaklabco/goeditorconfig/pkg/editorconfig"
	"github.com/yaklabco/goeditorconfig/pkg/fsutil"
)

// DefaultDebounce is how long the watcher waits for a burst of events to
// settle before re-resolving.
const DefaultDebounce = 100 * time.Millisecond

// ErrClosed is returned by Run after Close.
var ErrClosed = errors.New("watcher closed")

// Options configures a Watcher.
type Options struct {
	// ConfFileName is the config file name to watch for.
	// Defaults to editorconfig.DefaultConfFileName.
	ConfFileName string

	// Resolver re-resolves the target. Defaults to a resolver using
	// ConfFileName and default options.
	Resolver *editorconfig.Resolver

	// Debounce overrides DefaultDebounce.
	Debounce time.Duration

	// Logger receives debug output. Defaults to a discarding logger.
	Logger *log.Logger
}

// Update is one resolution emitted by the watcher.
type Update struct {
	// Trace is the new resolution; nil when Err is set.
	Trace *editorconfig.Trace

	// Changed lists the candidates that changed since the previous update.
	// It is empty for the initial update.
	Changed []string

	// Err is the resolution error, if any. A parse error does not stop the
	// watcher.
	Err error
}

// Watcher follows the config file candidates of a single target.
type Watcher struct {
	target string
	opts   Options

	watcher   *fsnotify.Watcher
	snapshots map[string]*fsutil.Snapshot

	closeOnce sync.Once
	done      chan struct{}
}

// New creates a Watcher for the absolute path target. Every existing
// ancestor directory of target is registered with the file system notifier.
func New(target string, opts Options) (*Watcher, error) {
	if opts.ConfFileName == "" {
		opts.ConfFileName = editorconfig.DefaultConfFileName
	}
	if opts.Resolver == nil {
		opts.Resolver = editorconfig.NewResolver(editorconfig.Options{ConfFileName: opts.ConfFileName})
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	slashed := filepath.ToSlash(target)
	if !filepath.IsAbs(target) {
		return nil, fmt.Errorf("%w: %q", editorconfig.ErrNotFullPath, target)
	}

	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	w := &Watcher{
		target:    target,
		opts:      opts,
		watcher:   notifier,
		snapshots: make(map[string]*fsutil.Snapshot),
		done:      make(chan struct{}),
	}

	for _, candidate := range editorconfig.Locate(slashed, opts.ConfFileName) {
		dir := path.Dir(candidate)
		if info, statErr := os.Stat(filepath.FromSlash(dir)); statErr != nil || !info.IsDir() {
			continue
		}
		if addErr := notifier.Add(filepath.FromSlash(dir)); addErr != nil {
			opts.Logger.Debug("cannot watch directory", "dir", dir, "error", addErr)
			continue
		}
		w.snapshots[filepath.FromSlash(candidate)] = nil
	}

	if len(w.snapshots) == 0 {
		_ = notifier.Close()
		return nil, fmt.Errorf("no watchable directory above %s", target)
	}

	return w, nil
}

// Candidates returns the config file paths the watcher follows.
func (w *Watcher) Candidates() []string {
	candidates := make([]string, 0, len(w.snapshots))
	for _, candidate := range editorconfig.Locate(filepath.ToSlash(w.target), w.opts.ConfFileName) {
		native := filepath.FromSlash(candidate)
		if _, ok := w.snapshots[native]; ok {
			candidates = append(candidates, native)
		}
	}
	return candidates
}

// Run emits an initial Update and then one per settled change until ctx is
// cancelled, Close is called or emit returns an error.
func (w *Watcher) Run(ctx context.Context, emit func(Update) error) error {
	if err := w.refresh(ctx); err != nil {
		return err
	}
	if err := emit(w.resolve(ctx, nil)); err != nil {
		return err
	}

	timer := time.NewTimer(w.opts.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-w.done:
			return ErrClosed

		case event, ok := <-w.watcher.Events:
			if !ok {
				return ErrClosed
			}
			if _, followed := w.snapshots[filepath.Clean(event.Name)]; !followed {
				continue
			}
			w.opts.Logger.Debug("config file event", "path", event.Name, "op", event.Op.String())
			timer.Reset(w.opts.Debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return ErrClosed
			}
			w.opts.Logger.Warn("file watcher error", "error", err)

		case <-timer.C:
			changed, err := w.changed(ctx)
			if err != nil {
				return err
			}
			if len(changed) == 0 {
				continue
			}
			if err := emit(w.resolve(ctx, changed)); err != nil {
				return err
			}
		}
	}
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) resolve(ctx context.Context, changed []string) Update {
	trace, err := w.opts.Resolver.Trace(ctx, w.target)
	if err != nil {
		return Update{Changed: changed, Err: err}
	}
	return Update{Trace: trace, Changed: changed}
}

// refresh records a snapshot of every candidate.
func (w *Watcher) refresh(ctx context.Context) error {
	for candidate := range w.snapshots {
		snap, err := snapshot(ctx, candidate)
		if err != nil {
			return err
		}
		w.snapshots[candidate] = snap
	}
	return nil
}

// changed returns the candidates whose content differs from their last
// snapshot, nearest first.
func (w *Watcher) changed(ctx context.Context) ([]string, error) {
	var changed []string
	for _, candidate := range w.Candidates() {
		prev := w.snapshots[candidate]
		if prev == nil {
			prev = &fsutil.Snapshot{Path: candidate}
		}

		differs, current, err := fsutil.Changed(ctx, prev)
		if errors.Is(err, fsutil.ErrIsDirectory) || errors.Is(err, fsutil.ErrPermissionDenied) {
			differs, current, err = prev.Exists, &fsutil.Snapshot{Path: candidate}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", candidate, err)
		}

		w.snapshots[candidate] = current
		if differs {
			changed = append(changed, candidate)
		}
	}
	return changed, nil
}

// snapshot treats a candidate that cannot be read as absent.
func snapshot(ctx context.Context, candidate string) (*fsutil.Snapshot, error) {
	snap, err := fsutil.Snap(ctx, candidate)
	switch {
	case errors.Is(err, fsutil.ErrIsDirectory), errors.Is(err, fsutil.ErrPermissionDenied):
		return &fsutil.Snapshot{Path: candidate}, nil
	case err != nil:
		return nil, fmt.Errorf("snapshot %s: %w", candidate, err)
	}
	return snap, nil
}
