package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/goeditorconfig/internal/logging"
	"github.com/yaklabco/goeditorconfig/pkg/runner"
)

// resolveFlags holds the flags for the resolve command.
type resolveFlags struct {
	resolutionFlags
	jobs      int
	recursive bool
	exclude   []string
}

func newResolveCommand() *cobra.Command {
	flags := &resolveFlags{}

	cmd := &cobra.Command{
		Use:   "resolve FILE...",
		Short: "Print the EditorConfig properties of files",
		Long: `Resolve the EditorConfig properties that apply to each FILE.

FILE does not have to exist. With a single FILE the properties are printed as
name=value lines; with several, each block is preceded by a [FILE] header.

Examples:
  goeditorconfig resolve main.go              Properties of one file
  goeditorconfig resolve -c src/app.py        Also check conformance
  goeditorconfig resolve -r --format json .   Every file below the directory
  goeditorconfig resolve -f .myconfig a.txt   Read .myconfig instead`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MinimumNArgs(1)(cmd, args); err != nil {
				return usageError(err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args, flags)
		},
	}

	addResolutionFlags(cmd, &flags.resolutionFlags)
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVarP(&flags.recursive, "recursive", "r", false, "resolve every file below directory arguments")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to skip when recursing")

	return cmd
}

func runResolve(cmd *cobra.Command, args []string, flags *resolveFlags) error {
	ctx := cmd.Context()

	cliCfg, err := flags.toConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("jobs") {
		cliCfg.Jobs = flags.jobs
	}
	if cmd.Flags().Changed("exclude") {
		cliCfg.Exclude = flags.exclude
	}
	cliCfg.Recursive = flags.recursive

	cfg, err := loadSettings(cmd, cliCfg)
	if err != nil {
		return err
	}

	logger := logging.FromContext(ctx)

	resolver, err := newResolver(cfg, logger)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	result, err := runner.New(resolver).Run(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Recursive:    cfg.Recursive,
		ExcludeGlobs: cfg.Exclude,
		Jobs:         cfg.Jobs,
		Check:        cfg.CheckEnabled(),
	})
	if err != nil {
		return errors.Join(errors.New("resolve run failed"), err)
	}

	logger.Debug("resolve complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesResolved, result.Stats.FilesResolved,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
		logging.FieldFilesNonConforming, result.Stats.FilesNonConforming,
	)

	rep, err := newReporter(cmd, cfg, flags.compact)
	if err != nil {
		return err
	}
	if err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	return resultError(result, logger)
}

// resultError logs per-file failures and converts the result into the
// command's error.
func resultError(result *runner.Result, logger *log.Logger) error {
	var errs []error
	for _, outcome := range result.Files {
		if outcome.Error == nil {
			continue
		}
		logger.Error("cannot resolve", logging.FieldPath, outcome.Path, logging.FieldError, outcome.Error)
		errs = append(errs, fmt.Errorf("%s: %w", outcome.Path, outcome.Error))
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrReported}, errs...)...)
	}
	if result.HasNonConforming() {
		return ErrNonConforming
	}
	return nil
}
