// Package generate writes a starter .editorconfig for a directory tree from
// the languages found in it.
package generate

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/yaklabco/goeditorconfig/pkg/editorconfig"
)

// Header is the comment written at the top of every generated file.
const Header = "# EditorConfig is awesome: https://editorconfig.org"

// Section is one generated section.
type Section struct {
	Pattern    string
	Properties []editorconfig.Property
}

// Sections builds the sections for survey: a [*] section with the shared
// defaults followed by one section per language, ordered by pattern.
func Sections(survey *Survey, opts Options) []Section {
	base := Section{Pattern: "*", Properties: []editorconfig.Property{{Name: "end_of_line", Value: "lf"}}}
	if !opts.Strict {
		base.Properties = append(base.Properties,
			editorconfig.Property{Name: "charset", Value: "utf-8"},
			editorconfig.Property{Name: "insert_final_newline", Value: "true"},
			editorconfig.Property{Name: "trim_trailing_whitespace", Value: "true"},
		)
	}

	var sections []Section
	if survey != nil {
		for _, language := range survey.Languages() {
			usage := survey.Usages[language]
			profile, ok := ProfileFor(language)
			pattern := Pattern(usage)
			if !ok || pattern == "" {
				continue
			}
			sections = append(sections, Section{Pattern: pattern, Properties: profileProperties(profile, opts)})
		}
	}
	slices.SortFunc(sections, func(a, b Section) int { return strings.Compare(a.Pattern, b.Pattern) })

	return append([]Section{base}, sections...)
}

// Render produces the content of a root .editorconfig for survey.
func Render(survey *Survey, opts Options) []byte {
	var buf bytes.Buffer
	buf.WriteString(Header + "\n\n")
	buf.WriteString("root = true\n")

	for _, section := range Sections(survey, opts) {
		fmt.Fprintf(&buf, "\n[%s]\n", section.Pattern)
		for _, prop := range section.Properties {
			fmt.Fprintf(&buf, "%s = %s\n", prop.Name, prop.Value)
		}
	}
	return buf.Bytes()
}

// Pattern returns the section header matching every file of usage:
// "*.go", "*.{c,h}", "Makefile" or a brace list when both kinds occur.
func Pattern(usage *Usage) string {
	exts, names := usage.Extensions, usage.Names
	switch {
	case len(exts) == 0 && len(names) == 0:
		return ""
	case len(names) == 0 && len(exts) == 1:
		return "*." + exts[0]
	case len(names) == 0:
		return "*.{" + strings.Join(exts, ",") + "}"
	case len(exts) == 0 && len(names) == 1:
		return names[0]
	}

	alternatives := make([]string, 0, len(exts)+len(names))
	for _, ext := range exts {
		alternatives = append(alternatives, "*."+ext)
	}
	alternatives = append(alternatives, names...)
	return "{" + strings.Join(alternatives, ",") + "}"
}

func profileProperties(profile Profile, opts Options) []editorconfig.Property {
	width := strconv.Itoa(profile.Width)
	props := []editorconfig.Property{{Name: "indent_style", Value: profile.IndentStyle}}
	if profile.IndentStyle == styleTab {
		props = append(props, editorconfig.Property{Name: "tab_width", Value: width})
	} else {
		props = append(props, editorconfig.Property{Name: "indent_size", Value: width})
	}

	if profile.EndOfLine != "" {
		props = append(props, editorconfig.Property{Name: "end_of_line", Value: profile.EndOfLine})
	}
	if profile.TrimTrailingWhitespace != nil && !opts.Strict {
		props = append(props, editorconfig.Property{Name: "trim_trailing_whitespace", Value: strconv.FormatBool(*profile.TrimTrailingWhitespace)})
	}
	return props
}
