// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"

	// Resolution fields.
	FieldConfFile   = "conf_file"
	FieldPrecedence = "precedence"
	FieldSources    = "sources"
	FieldJobs       = "jobs"
	FieldChanged    = "changed"

	// Statistics fields.
	FieldFilesDiscovered    = "files_discovered"
	FieldFilesResolved      = "files_resolved"
	FieldFilesErrored       = "files_errored"
	FieldFilesNonConforming = "files_non_conforming"

	// Generation fields.
	FieldLanguages = "languages"
	FieldBackup    = "backup"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
