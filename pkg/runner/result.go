package runner

import "github.com/yaklabco/goeditorconfig/pkg/editorconfig"

// FileOutcome is the resolution of one target.
type FileOutcome struct {
	// Path is the absolute target path.
	Path string

	// Properties is nil when Error is set.
	Properties *editorconfig.Properties

	// Sources lists the config files read, nearest first.
	Sources []string

	// Conformance is set when checking was requested and the set does not
	// conform.
	Conformance *editorconfig.ConformanceError

	// Error is set if the target could not be resolved.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered    int
	FilesResolved      int
	FilesErrored       int
	FilesNonConforming int
}

// Result is the overall runner result.
type Result struct {
	// Files holds one outcome per discovered target, in discovery order.
	Files []FileOutcome

	Stats Stats
}

// NewResult builds a Result from outcomes that were produced outside Run.
func NewResult(outcomes ...FileOutcome) *Result {
	result := &Result{Files: make([]FileOutcome, 0, len(outcomes))}
	result.Stats.FilesDiscovered = len(outcomes)
	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	return result
}

// HasErrors reports whether any target failed to resolve.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// HasNonConforming reports whether any resolved set failed the check.
func (r *Result) HasNonConforming() bool {
	return r != nil && r.Stats.FilesNonConforming > 0
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	switch {
	case outcome.Error != nil:
		r.Stats.FilesErrored++
	case outcome.Conformance != nil:
		r.Stats.FilesResolved++
		r.Stats.FilesNonConforming++
	default:
		r.Stats.FilesResolved++
	}
}
