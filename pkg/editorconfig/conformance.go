package editorconfig

import (
	"math"
	"strings"
)

// Conformance failure reasons.
const (
	ReasonIndentStyle            = "indent_style is set to neither 'space' nor 'tab'."
	ReasonTabWidth               = "tab_width is not a positive number."
	ReasonIndentSize             = "indent_size is not a positive number."
	ReasonEndOfLine              = "end_of_line contains invalid value."
	ReasonUnknownOption          = "Unknown option."
	ReasonTabWidthNoStyle        = "indent_style is not present but tab_width is present."
	ReasonIndentSizeNoStyle      = "indent_style is not present but indent_size is present."
	ReasonTabStyleNoTabWidth     = "tab_width is not specified while indent_style is set to 'tab'."
	ReasonSpaceStyleNoIndentSize = "indent_size is not specified while indent_style is set to 'space'."
)

// Check reports whether props conforms to the EditorConfig value and pairing
// rules. It returns nil on success and otherwise a *ConformanceError for the
// first violation: entries are checked in insertion order, then the pairing
// rules.
func Check(props *Properties) error {
	var (
		style         string
		styleSet      bool
		tabWidthSet   bool
		indentSizeSet bool
	)

	for _, entry := range props.entries {
		switch entry.Name {
		case "indent_style":
			styleSet = true
			style = entry.Value
			if style != "space" && style != "tab" {
				return &ConformanceError{Property: entry.Name, Reason: ReasonIndentStyle}
			}
		case "tab_width":
			tabWidthSet = true
			if atoi(entry.Value) <= 0 {
				return &ConformanceError{Property: entry.Name, Reason: ReasonTabWidth}
			}
		case "indent_size":
			indentSizeSet = true
			if atoi(entry.Value) <= 0 {
				return &ConformanceError{Property: entry.Name, Reason: ReasonIndentSize}
			}
		case "end_of_line":
			switch entry.Value {
			case "lf", "cr", "crlf":
			default:
				return &ConformanceError{Property: entry.Name, Reason: ReasonEndOfLine}
			}
		default:
			return &ConformanceError{Property: entry.Name, Reason: ReasonUnknownOption}
		}
	}

	switch {
	case tabWidthSet && !styleSet:
		return &ConformanceError{Reason: ReasonTabWidthNoStyle}
	case indentSizeSet && !styleSet:
		return &ConformanceError{Reason: ReasonIndentSizeNoStyle}
	case style == "tab" && !tabWidthSet:
		return &ConformanceError{Reason: ReasonTabStyleNoTabWidth}
	case style == "space" && !indentSizeSet:
		return &ConformanceError{Reason: ReasonSpaceStyleNoIndentSize}
	}

	return nil
}

// atoi parses the leading decimal integer of s after optional whitespace and
// sign. Text without a leading integer yields 0.
func atoi(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	i := 0

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if n > math.MaxInt32/10 {
			break
		}
		n = n*10 + int(s[i]-'0')
	}

	if neg {
		return -n
	}
	return n
}
