package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/goeditorconfig/internal/logging"
	"github.com/yaklabco/goeditorconfig/pkg/editorconfig"
)

func newVersionCommand(info BuildInfo) *cobra.Command {
	var coreOnly bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print the version, commit hash, and build date of goeditorconfig together
with the EditorConfig core version it implements.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if coreOnly {
				_, err := fmt.Fprintf(out, "EditorConfig Go Core Version %s\n", editorconfig.CurrentVersion())
				return err
			}

			logger := log.NewWithOptions(out, log.Options{
				ReportTimestamp: false,
				ReportCaller:    false,
			})
			logger.SetLevel(log.InfoLevel)

			logger.Info("goeditorconfig",
				logging.FieldVersion, info.Version,
				logging.FieldCommit, info.Commit,
				logging.FieldBuilt, info.Date,
				"core", editorconfig.CurrentVersion().String(),
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&coreOnly, "core", false, "print only the EditorConfig core version")

	return cmd
}
