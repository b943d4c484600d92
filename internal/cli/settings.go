package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/goeditorconfig/internal/configloader"
	"github.com/yaklabco/goeditorconfig/internal/logging"
	"github.com/yaklabco/goeditorconfig/pkg/config"
	"github.com/yaklabco/goeditorconfig/pkg/editorconfig"
	"github.com/yaklabco/goeditorconfig/pkg/reporter"
)

// loadSettings merges the settings files, the environment and cliCfg.
func loadSettings(cmd *cobra.Command, cliCfg *config.Config) (*config.Config, error) {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	// Get the explicit settings path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	if cmd.Flags().Changed("color") {
		if cliCfg.Color, err = cmd.Flags().GetString("color"); err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded settings from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}

// newResolver builds a Resolver from validated settings.
func newResolver(cfg *config.Config, logger *log.Logger) (*editorconfig.Resolver, error) {
	precedence, err := editorconfig.ParsePrecedence(cfg.Precedence)
	if err != nil {
		return nil, err
	}

	var version editorconfig.Version
	if cfg.Version != "" {
		if version, err = editorconfig.ParseVersion(cfg.Version); err != nil {
			return nil, err
		}
	}

	logger.Debug("resolver configured",
		logging.FieldConfFile, cfg.ConfFileName,
		logging.FieldPrecedence, precedence,
		logging.FieldVersion, version,
	)

	return editorconfig.NewResolver(editorconfig.Options{
		ConfFileName: cfg.ConfFileName,
		Precedence:   precedence,
		Version:      version,
		Logger:       logger,
	}), nil
}

// resolutionFlags are shared by resolve and watch.
type resolutionFlags struct {
	check      bool
	confName   string
	version    string
	precedence string
	format     string
	sources    bool
	compact    bool
}

func addResolutionFlags(cmd *cobra.Command, flags *resolutionFlags) {
	cmd.Flags().BoolVarP(&flags.check, "check", "c", false, "check the resolved properties for conformance")
	cmd.Flags().StringVarP(&flags.confName, "conf-file", "f", editorconfig.DefaultConfFileName,
		"name of the config file looked up in every directory")
	cmd.Flags().StringVarP(&flags.version, "version-target", "b", "",
		"request the behaviour of an EditorConfig version (X.Y.Z)")
	cmd.Flags().StringVar(&flags.precedence, "precedence", "nearest",
		"which file wins when several set a property: nearest, root")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, yaml")
	cmd.Flags().BoolVar(&flags.sources, "sources", false, "list the config files each result came from")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
}

// toConfig validates explicitly set flags and copies them into a Config.
// Unset flags stay zero so settings files are not overridden by defaults.
func (f *resolutionFlags) toConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("check") {
		cfg.Check = config.Bool(f.check)
	}
	if changed("sources") {
		cfg.ShowSources = config.Bool(f.sources)
	}
	if changed("conf-file") {
		cfg.ConfFileName = f.confName
	}

	if changed("precedence") {
		if _, err := editorconfig.ParsePrecedence(f.precedence); err != nil {
			return nil, usageError(err)
		}
		cfg.Precedence = f.precedence
	}

	if changed("format") {
		if _, err := reporter.ParseFormat(f.format); err != nil {
			return nil, usageError(err)
		}
		cfg.Format = f.format
	}

	if changed("version-target") {
		version, err := editorconfig.ParseVersion(f.version)
		if err != nil {
			return nil, usageError(err)
		}
		if version.Compare(editorconfig.CurrentVersion()) > 0 {
			return nil, fmt.Errorf("%w: %s > %s", editorconfig.ErrVersionTooNew, version, editorconfig.CurrentVersion())
		}
		cfg.Version = version.String()
	}

	return cfg, nil
}

// newReporter creates the reporter selected by cfg.
func newReporter(cmd *cobra.Command, cfg *config.Config, compact bool) (reporter.Reporter, error) {
	format, err := reporter.ParseFormat(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       cfg.Color,
		Check:       cfg.CheckEnabled(),
		ShowSources: cfg.SourcesEnabled(),
		Compact:     compact,
	})
	if err != nil {
		return nil, fmt.Errorf("create reporter: %w", err)
	}
	return rep, nil
}
