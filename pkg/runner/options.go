// Package runner resolves EditorConfig properties for many files at once.
package runner

// Options controls a multi-file resolution run.
type Options struct {
	// Paths are the user-specified targets. Targets need not exist: editors
	// query properties for files they are about to create.
	Paths []string

	// WorkingDir is the base directory used to make relative Paths absolute.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Recursive expands existing directories into the files below them.
	// Otherwise a directory is resolved as a target of its own.
	Recursive bool

	// ExcludeGlobs skip walked files and directories whose path relative to
	// WorkingDir matches. They use the EditorConfig glob dialect.
	ExcludeGlobs []string

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Check runs the conformance checker on every resolved set.
	Check bool
}
