package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/yaklabco/goeditorconfig/pkg/editorconfig"
)

// Runner resolves many targets concurrently with one Resolver.
type Runner struct {
	Resolver *editorconfig.Resolver
}

// New creates a Runner. A nil resolver selects default resolver options.
func New(resolver *editorconfig.Resolver) *Runner {
	if resolver == nil {
		resolver = editorconfig.NewResolver(editorconfig.Options{})
	}
	return &Runner{Resolver: resolver}
}

// Run discovers the targets in opts and resolves them with a bounded worker
// pool. Outcomes are returned in discovery order regardless of completion
// order. Per-file failures are recorded in the outcome, not returned.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	workCh := make(chan int)
	outCh := make(chan indexedOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, files, opts.Check, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for idx := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- idx:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	outcomes := make([]*FileOutcome, len(files))
	for out := range outCh {
		outcome := out.outcome
		outcomes[out.index] = &outcome
	}

	for _, outcome := range outcomes {
		if outcome != nil {
			result.accumulate(*outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

type indexedOutcome struct {
	index   int
	outcome FileOutcome
}

func (r *Runner) worker(
	ctx context.Context,
	files []string,
	check bool,
	workCh <-chan int,
	outCh chan<- indexedOutcome,
) {
	for idx := range workCh {
		if ctx.Err() != nil {
			return
		}

		outcome := r.resolve(ctx, files[idx], check)

		select {
		case <-ctx.Done():
			return
		case outCh <- indexedOutcome{index: idx, outcome: outcome}:
		}
	}
}

func (r *Runner) resolve(ctx context.Context, path string, check bool) FileOutcome {
	trace, err := r.Resolver.Trace(ctx, path)
	return Outcome(path, trace, err, check)
}

// Outcome converts the result of one Trace call into a FileOutcome,
// running the conformance check when check is set.
func Outcome(path string, trace *editorconfig.Trace, err error, check bool) FileOutcome {
	outcome := FileOutcome{Path: path}
	if err != nil {
		outcome.Error = err
		return outcome
	}

	outcome.Properties = trace.Properties
	outcome.Sources = trace.Files

	if check {
		var confErr *editorconfig.ConformanceError
		if errors.As(editorconfig.Check(trace.Properties), &confErr) {
			outcome.Conformance = confErr
		}
	}

	return outcome
}
