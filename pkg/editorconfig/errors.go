package editorconfig

import (
	"errors"
	"fmt"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFullPath is returned when the target is not an absolute path
	// with a directory component.
	ErrNotFullPath = errors.New("input file must be a full path name")

	// ErrVersionTooNew is returned when the requested behaviour version is
	// newer than CurrentVersion.
	ErrVersionTooNew = errors.New("required version is greater than the current version")

	// ErrInvalidVersion is returned by ParseVersion.
	ErrInvalidVersion = errors.New("invalid version")

	// ErrNotConformed is wrapped by every *ConformanceError.
	ErrNotConformed = errors.New("standard not conformed")
)

// ParseError reports a malformed config file met during resolution.
type ParseError struct {
	// File is the candidate config file that failed to parse.
	File string
	// Line is 1-based; 0 means the line is unknown.
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("error when parsing file %s at line %d", e.File, e.Line)
	}
	return "error when parsing file " + e.File
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConformanceError reports the first rule a property set violates.
type ConformanceError struct {
	// Property is the offending property name, empty for pairing rules.
	Property string
	Reason   string
}

func (e *ConformanceError) Error() string {
	return e.Reason
}

func (e *ConformanceError) Is(target error) bool {
	return target == ErrNotConformed
}
