package config

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TemplateOptions controls settings file template generation.
type TemplateOptions struct {
	// Full writes every setting with its default value. If false, a
	// minimal template with commented examples is generated.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// GenerateTemplate creates a settings file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	switch opts.Format {
	case "", FormatYAML:
	case FormatJSON:
		return templateToJSON(opts)
	default:
		return nil, fmt.Errorf("invalid template format %q: must be yaml or json", opts.Format)
	}

	if opts.Full {
		return generateFullTemplate()
	}
	return generateMinimalTemplate(), nil
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString(`

# File looked up in every directory above a target
conf_file_name: .editorconfig

# Which file wins when several set the same property: nearest or root
# precedence: nearest

# Output format: text, json, or yaml
# format: text

# Validate every resolved set
# check: false

# Number of parallel workers (0 = auto)
# jobs: 0

# File patterns skipped when recursing (glob patterns)
# exclude:
#   - "*.min.js"
#   - "testdata/**"

# Starter .editorconfig generation
# init:
#   strict: false
#   backups:
#     enabled: true
#     mode: sidecar
`)

	return buf.Bytes()
}

// generateFullTemplate writes every default.
func generateFullTemplate() ([]byte, error) {
	return NewConfig().ToYAMLWithHeader(DefaultTemplateHeader())
}

// templateToJSON renders the defaults as JSON. Comments are not available,
// so the full and minimal templates are the same.
func templateToJSON(_ TemplateOptions) ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(NewConfig(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}
	return append(jsonBytes, '\n'), nil
}

// DefaultTemplateHeader returns the default header for generated settings.
func DefaultTemplateHeader() string {
	return `# goeditorconfig settings
# See: https://github.com/yaklabco/goeditorconfig`
}
