// Package reporter renders resolution results as text, JSON or YAML.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/goeditorconfig/pkg/runner"
)

// Reporter formats and writes resolution results.
type Reporter interface {
	// Report writes formatted output for the given result.
	Report(ctx context.Context, result *runner.Result) error
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatText:
		return NewTextReporter(opts), nil
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatYAML:
		return NewYAMLReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Conformance verdict lines.
const (
	conformedLine    = "Standard conformed."
	notConformedLine = "Standard not conformed: "
)

func verdict(outcome runner.FileOutcome) string {
	if outcome.Conformance != nil {
		return notConformedLine + outcome.Conformance.Reason
	}
	return conformedLine
}
