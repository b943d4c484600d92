// Package fsutil provides the file system primitives shared by the resolver,
// the watcher and the init command: context-aware reads, change snapshots,
// atomic writes and sidecar backups.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")
)

// Snapshot captures the observable state of a file at a point in time.
// A Snapshot of a missing file has Exists set to false and zero metadata.
type Snapshot struct {
	Path    string
	Exists  bool
	ModTime time.Time
	Size    int64
	Hash    [32]byte
}

// ReadFile reads the regular file at path.
// Failures are classified with ErrNotFound, ErrPermissionDenied and ErrIsDirectory.
func ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, classify(path, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, classify(path, err)
	}
	return content, nil
}

// Snap records the current state of path. A missing file is not an error.
func Snap(ctx context.Context, path string) (*Snapshot, error) {
	content, err := ReadFile(ctx, path)
	switch {
	case errors.Is(err, ErrNotFound):
		return &Snapshot{Path: path}, nil
	case err != nil:
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, classify(path, err)
	}

	return &Snapshot{
		Path:    path,
		Exists:  true,
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}, nil
}

// Changed reports whether the file behind prev was created, removed or had
// its content altered since prev was taken. Touching a file without
// altering its bytes is not a change.
func Changed(ctx context.Context, prev *Snapshot) (bool, *Snapshot, error) {
	current, err := Snap(ctx, prev.Path)
	if err != nil {
		return false, nil, err
	}

	if current.Exists != prev.Exists {
		return true, current, nil
	}
	if !current.Exists {
		return false, current, nil
	}
	return current.Size != prev.Size || current.Hash != prev.Hash, current, nil
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("read %s: %w", path, err)
	}
}

// ReadHead reads at most limit bytes from the start of the regular file at
// path. It is used where only a sniff of the content matters.
func ReadHead(ctx context.Context, path string, limit int) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, classify(path, err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, classify(path, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	buf := make([]byte, limit)
	n, err := io.ReadFull(file, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, classify(path, err)
	}
	return buf[:n], nil
}
