package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/goeditorconfig/internal/logging"
	"github.com/yaklabco/goeditorconfig/pkg/config"
	"github.com/yaklabco/goeditorconfig/pkg/fsutil"
	"github.com/yaklabco/goeditorconfig/pkg/generate"
)

// ErrAborted is returned when the user declines to overwrite a file.
var ErrAborted = errors.New("aborted")

// initFlags holds the flags for the init command.
type initFlags struct {
	force    bool
	strict   bool
	dryRun   bool
	settings bool
	full     bool
	format   string
	output   string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init [DIR]",
		Short: "Generate an .editorconfig for a project",
		Long: `Scan DIR (default: the current directory), detect the languages in use and
write a root .editorconfig with a section per language.

With --settings a goeditorconfig settings file is written instead.

Examples:
  goeditorconfig init                       Write ./.editorconfig
  goeditorconfig init --dry-run ./project   Print instead of writing
  goeditorconfig init --strict              Only emit checked properties
  goeditorconfig init --settings --full     Write .goeditorconfig.yml`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return usageError(err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.settings {
				return runInitSettings(cmd, flags)
			}
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(cmd, dir, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.force, "force", false, "overwrite an existing file without asking")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "emit only properties covered by the conformance check")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "print the generated file instead of writing it")
	cmd.Flags().BoolVar(&flags.settings, "settings", false, "write a goeditorconfig settings file instead")
	cmd.Flags().BoolVar(&flags.full, "full", false, "with --settings, write every setting with its default")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "with --settings, output format: yaml or json")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file path")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, flags *initFlags) error {
	ctx := cmd.Context()

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	info, err := os.Stat(absDir)
	if err != nil {
		return usageError(err)
	}
	if !info.IsDir() {
		return usageError(fmt.Errorf("%s is not a directory", dir))
	}

	cliCfg := &config.Config{Force: flags.force}
	if cmd.Flags().Changed("strict") {
		cliCfg.Init.Strict = config.Bool(flags.strict)
	}

	cfg, err := loadSettings(cmd, cliCfg)
	if err != nil {
		return err
	}

	logger := logging.FromContext(ctx)
	opts := generate.Options{
		Strict:   config.BoolValue(cfg.Init.Strict, false),
		MaxFiles: cfg.Init.MaxFiles,
		Logger:   logger,
	}

	survey, err := generate.Scan(ctx, absDir, opts)
	if err != nil {
		return err
	}
	content := generate.Render(survey, opts)

	if flags.dryRun {
		_, err := cmd.OutOrStdout().Write(content)
		return err
	}

	target := flags.output
	if target == "" {
		target = filepath.Join(absDir, cfg.ConfFileName)
	}

	if err := writeGenerated(cmd, target, content, cfg); err != nil {
		return err
	}

	logger.Info("created EditorConfig file",
		logging.FieldPath, target,
		logging.FieldLanguages, survey.Languages(),
	)
	return nil
}

func runInitSettings(cmd *cobra.Command, flags *initFlags) error {
	content, err := config.GenerateTemplate(config.TemplateOptions{
		Full:   flags.full,
		Format: flags.format,
	})
	if err != nil {
		return usageError(err)
	}

	if flags.dryRun {
		_, err := cmd.OutOrStdout().Write(content)
		return err
	}

	target := flags.output
	if target == "" {
		target = ".goeditorconfig.yml"
		if flags.format == config.FormatJSON {
			target = ".goeditorconfig.json"
		}
	}

	// Settings files are not loaded here: a broken one must still be replaceable.
	cfg := config.NewConfig()
	cfg.Force = flags.force

	if err := writeGenerated(cmd, target, content, cfg); err != nil {
		return err
	}

	logging.FromContext(cmd.Context()).Info("created settings file", logging.FieldPath, target)
	return nil
}

// writeGenerated writes content to target, asking before replacing an
// existing file and keeping a backup when enabled.
func writeGenerated(cmd *cobra.Command, target string, content []byte, cfg *config.Config) error {
	ctx := cmd.Context()
	logger := logging.FromContext(ctx)

	if _, err := os.Stat(target); err == nil {
		if err := confirmOverwrite(cmd, target, cfg.Force); err != nil {
			return err
		}

		if cfg.BackupsEnabled() {
			backup, err := fsutil.Backup(ctx, target)
			if err != nil {
				return fmt.Errorf("backup %s: %w", target, err)
			}
			logger.Debug("backed up existing file", logging.FieldBackup, backup)
		}
	}

	if err := fsutil.WriteAtomic(ctx, target, content, fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func confirmOverwrite(cmd *cobra.Command, target string, force bool) error {
	if force {
		logging.FromContext(cmd.Context()).Warn("overwriting existing file", logging.FieldPath, target)
		return nil
	}

	if !isInteractive(cmd.InOrStdin()) {
		return fmt.Errorf("file %q already exists; use --force to overwrite", target)
	}

	ok, err := askYesNo(cmd.InOrStdin(), cmd.ErrOrStderr(), fmt.Sprintf("%s already exists. Overwrite?", target))
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}
	return nil
}

func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// askYesNo prints question and reads one answer. Anything but y or yes is no.
func askYesNo(in io.Reader, out io.Writer, question string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s [y/N] ", question); err != nil {
		return false, err
	}

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
