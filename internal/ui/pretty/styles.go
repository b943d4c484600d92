// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Resolution output
	FilePath      lipgloss.Style
	PropertyName  lipgloss.Style
	PropertyValue lipgloss.Style
	Separator     lipgloss.Style
	Source        lipgloss.Style

	// Outcome styles
	Error   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		FilePath:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		PropertyName:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		PropertyValue: lipgloss.NewStyle(),
		Separator:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Source:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		FilePath:      plain,
		PropertyName:  plain,
		PropertyValue: plain,
		Separator:     plain,
		Source:        plain,
		Error:         plain,
		Success:       plain,
		Failure:       plain,
		Dim:           plain,
		Bold:          plain,
	}
}

// FormatProperty renders one name=value line without a trailing newline.
func (s *Styles) FormatProperty(name, value string) string {
	return s.PropertyName.Render(name) + s.Separator.Render("=") + s.PropertyValue.Render(value)
}

// FormatFileHeader renders the "[path]" header used when several files are
// reported together.
func (s *Styles) FormatFileHeader(path string) string {
	return s.FilePath.Render("[" + path + "]")
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
