package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/yaklabco/goeditorconfig/pkg/glob"
)

// Discover expands opts.Paths into absolute target paths.
//
// Plain targets keep their input order. Directories are expanded in lexical
// order when opts.Recursive is set, skipping hidden entries and
// opts.ExcludeGlobs. Duplicates are dropped, keeping the first occurrence.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	var files []string
	for _, inputPath := range opts.Paths {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		if !opts.Recursive {
			files = append(files, absPath)
			continue
		}

		info, err := os.Stat(absPath)
		if err != nil || !info.IsDir() {
			files = append(files, absPath)
			continue
		}

		walked, err := walkDirectory(ctx, absPath, workDir, opts.ExcludeGlobs)
		if err != nil {
			return nil, err
		}
		files = append(files, walked...)
	}

	return lo.Uniq(files), nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// walkDirectory returns the regular files below root.
func walkDirectory(ctx context.Context, root, workDir string, excludes []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrPermission) {
				return nil
			}
			return walkErr
		}

		hidden := path != root && strings.HasPrefix(entry.Name(), ".")
		excluded := path != root && matchesAny(relative(workDir, path), excludes)

		if entry.IsDir() {
			if hidden || excluded {
				return filepath.SkipDir
			}
			return nil
		}

		if hidden || excluded || !entry.Type().IsRegular() {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

func relative(workDir, path string) string {
	rel, err := filepath.Rel(workDir, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}

// matchesAny reports whether relPath matches one of patterns. Patterns
// without a "/" are tested against the base name.
func matchesAny(relPath string, patterns []string) bool {
	return lo.SomeBy(patterns, func(pattern string) bool {
		candidate := relPath
		if !strings.Contains(pattern, "/") {
			candidate = relPath[strings.LastIndexByte(relPath, '/')+1:]
		}
		ok, err := glob.Match(pattern, candidate)
		return err == nil && ok
	})
}
