package generate

// Indentation styles written into generated sections.
const (
	styleTab   = "tab"
	styleSpace = "space"
)

// Profile is the formatting convention applied to one language.
type Profile struct {
	// IndentStyle is "tab" or "space".
	IndentStyle string

	// Width is the indent_size for spaces or the tab_width for tabs.
	Width int

	// EndOfLine overrides the end_of_line of the [*] section.
	EndOfLine string

	// TrimTrailingWhitespace, when non-nil, overrides the [*] default.
	// It is omitted in strict output.
	TrimTrailingWhitespace *bool
}

func keepTrailingWhitespace() *bool {
	keep := false
	return &keep
}

// profiles is keyed by go-enry language name.
var profiles = map[string]Profile{
	"Go":       {IndentStyle: styleTab, Width: 4},
	"Makefile": {IndentStyle: styleTab, Width: 4},

	"C":          {IndentStyle: styleSpace, Width: 4},
	"C#":         {IndentStyle: styleSpace, Width: 4},
	"C++":        {IndentStyle: styleSpace, Width: 4},
	"Dockerfile": {IndentStyle: styleSpace, Width: 4},
	"Java":       {IndentStyle: styleSpace, Width: 4},
	"Kotlin":     {IndentStyle: styleSpace, Width: 4},
	"PHP":        {IndentStyle: styleSpace, Width: 4},
	"Python":     {IndentStyle: styleSpace, Width: 4},
	"Rust":       {IndentStyle: styleSpace, Width: 4},
	"Swift":      {IndentStyle: styleSpace, Width: 4},

	"Batchfile":  {IndentStyle: styleSpace, Width: 4, EndOfLine: "crlf"},
	"PowerShell": {IndentStyle: styleSpace, Width: 4, EndOfLine: "crlf"},

	"CSS":        {IndentStyle: styleSpace, Width: 2},
	"HCL":        {IndentStyle: styleSpace, Width: 2},
	"HTML":       {IndentStyle: styleSpace, Width: 2},
	"JSON":       {IndentStyle: styleSpace, Width: 2},
	"JavaScript": {IndentStyle: styleSpace, Width: 2},
	"Lua":        {IndentStyle: styleSpace, Width: 2},
	"Ruby":       {IndentStyle: styleSpace, Width: 2},
	"SCSS":       {IndentStyle: styleSpace, Width: 2},
	"SQL":        {IndentStyle: styleSpace, Width: 2},
	"Shell":      {IndentStyle: styleSpace, Width: 2},
	"TOML":       {IndentStyle: styleSpace, Width: 2},
	"TSX":        {IndentStyle: styleSpace, Width: 2},
	"TypeScript": {IndentStyle: styleSpace, Width: 2},
	"Vue":        {IndentStyle: styleSpace, Width: 2},
	"XML":        {IndentStyle: styleSpace, Width: 2},
	"YAML":       {IndentStyle: styleSpace, Width: 2},

	"Markdown": {IndentStyle: styleSpace, Width: 2, TrimTrailingWhitespace: keepTrailingWhitespace()},
}

// ProfileFor returns the profile of a go-enry language name.
func ProfileFor(language string) (Profile, bool) {
	profile, ok := profiles[language]
	return profile, ok
}
