// Package inifile reads EditorConfig files into ordered (section, name, value)
// entries.
//
// Parsing is delegated to gopkg.in/ini.v1, configured for the EditorConfig
// dialect: duplicate section headers stay separate, values are taken
// verbatim, and both "=" and ":" separate names from values.
package inifile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnreadable is returned when a file is missing or cannot be read.
	// Callers resolving a path hierarchy treat it as "no contribution".
	ErrUnreadable = errors.New("config file unreadable")

	// ErrSyntax is returned when a file is present but malformed.
	ErrSyntax = errors.New("config file syntax error")
)

// Entry is one name/value pair and the section header it appeared under.
// Section is empty for pairs that precede the first header.
type Entry struct {
	Section string
	Name    string
	Value   string
}

// File is the parsed content of one config file.
type File struct {
	Path string
	// Preamble holds the pairs declared before the first section header.
	Preamble []Entry
	// Entries holds the sectioned pairs in document order.
	Entries []Entry
}

// Root reports whether the preamble declares root = true.
func (f *File) Root() bool {
	for _, entry := range f.Preamble {
		if strings.EqualFold(entry.Name, "root") && strings.EqualFold(entry.Value, "true") {
			return true
		}
	}
	return false
}

// SyntaxError describes a malformed config file.
type SyntaxError struct {
	Path string
	// Line is 1-based; 0 means the line could not be determined.
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrSyntax and the underlying parser error.
func (e *SyntaxError) Unwrap() []error {
	return []error{ErrSyntax, e.Err}
}

