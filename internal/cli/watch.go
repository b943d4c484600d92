package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/goeditorconfig/internal/logging"
	"github.com/yaklabco/goeditorconfig/pkg/runner"
	"github.com/yaklabco/goeditorconfig/pkg/watch"
)

// watchFlags holds the flags for the watch command.
type watchFlags struct {
	resolutionFlags
	debounce time.Duration
}

func newWatchCommand() *cobra.Command {
	flags := &watchFlags{}

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-resolve a file whenever its config files change",
		Long: `Print the properties of FILE, then print them again every time one of the
config files that can apply to it is created, edited or removed.

A config file that fails to parse is reported and watching continues.
Stop with Ctrl-C.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return usageError(err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, args[0], flags)
		},
	}

	addResolutionFlags(cmd, &flags.resolutionFlags)
	cmd.Flags().DurationVar(&flags.debounce, "debounce", watch.DefaultDebounce,
		"quiet period before changes are re-resolved")

	return cmd
}

func runWatch(cmd *cobra.Command, target string, flags *watchFlags) error {
	ctx := cmd.Context()

	cliCfg, err := flags.toConfig(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadSettings(cmd, cliCfg)
	if err != nil {
		return err
	}

	logger := logging.FromContext(ctx)

	resolver, err := newResolver(cfg, logger)
	if err != nil {
		return err
	}

	absTarget, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	watcher, err := watch.New(absTarget, watch.Options{
		ConfFileName: cfg.ConfFileName,
		Resolver:     resolver,
		Debounce:     flags.debounce,
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	rep, err := newReporter(cmd, cfg, flags.compact)
	if err != nil {
		return err
	}

	logger.Debug("watching", logging.FieldPath, absTarget, logging.FieldPaths, watcher.Candidates())

	err = watcher.Run(ctx, func(update watch.Update) error {
		if len(update.Changed) > 0 {
			logger.Info("config changed", logging.FieldChanged, update.Changed)
		}
		if update.Err != nil {
			logger.Error("cannot resolve", logging.FieldPath, absTarget, logging.FieldError, update.Err)
			return nil
		}

		outcome := runner.Outcome(absTarget, update.Trace, nil, cfg.CheckEnabled())
		return rep.Report(ctx, runner.NewResult(outcome))
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
