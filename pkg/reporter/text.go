package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/goeditorconfig/internal/ui/pretty"
	"github.com/yaklabco/goeditorconfig/pkg/runner"
)

// TextReporter prints name=value lines. With several files, each block is
// introduced by a "[path]" header.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter. Files that failed to resolve are skipped;
// their errors are surfaced by the caller.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return nil
	}

	headers := len(result.Files) > 1
	for _, file := range result.Files {
		if file.Error != nil {
			continue
		}

		if headers {
			fmt.Fprintln(r.bw, r.styles.FormatFileHeader(file.Path))
		}

		if r.opts.Check {
			style := r.styles.Success
			if file.Conformance != nil {
				style = r.styles.Failure
			}
			fmt.Fprintln(r.bw, style.Render(verdict(file)))
		}

		for name, value := range file.Properties.All() {
			fmt.Fprintln(r.bw, r.styles.FormatProperty(name, value))
		}

		if r.opts.ShowSources {
			for _, source := range file.Sources {
				fmt.Fprintln(r.bw, r.styles.Source.Render("# from "+source))
			}
		}
	}

	return nil
}
