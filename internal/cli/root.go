package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/casedesk/internal/config"
	"github.com/rshade/casedesk/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the casedesk CLI.
// It wires up project config resolution, logging, tracing, and the
// dashboard, case and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		projectDir string
	)

	cmd := &cobra.Command{
		Use:     "casedesk",
		Short:   "Insurance case review dashboard",
		Long:    "casedesk: review an insurance case alongside the guidance that applies to it",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			wd, _ := os.Getwd()
			config.SetResolvedProjectDir(config.ResolveProjectDir(projectDir, wd))

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&projectDir, "project-dir", "",
		"project directory holding .casedesk/config.yaml (default: search upwards from the working directory)")
	cmd.AddCommand(NewDashboardCmd(), newCaseCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Open the dashboard for the built-in sample case
  casedesk dashboard

  # Open the dashboard for a case file and reload it when it changes
  casedesk dashboard --case claims/INS-99281-KL.yaml --watch

  # Print the assessment as JSON
  casedesk case show --case claims/INS-99281-KL.yaml --output json

  # Check a case file before sharing it
  casedesk case validate --case claims/INS-99281-KL.yaml

  # Use a custom guidance catalog by default
  casedesk config set guidance.catalog ~/guidance/catalog.yaml`

// newCaseCmd creates the case command group.
func newCaseCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "case", Short: "Case inspection commands"}
	cmd.AddCommand(NewCaseShowCmd(), NewCaseValidateCmd())
	return cmd
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
