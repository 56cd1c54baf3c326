package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/casedesk/internal/config"
)

// NewConfigInitCmd creates the config init command for initializing configuration.
// Inside a project with a .casedesk directory (and without --global) it writes
// the project-local config.yaml. Otherwise it writes the global one.
func NewConfigInitCmd() *cobra.Command {
	var (
		force  bool
		global bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

When a project .casedesk directory is found (or given with --project-dir), the
file is created at $PROJECT/.casedesk/config.yaml. Use --global to write
~/.casedesk/config.yaml instead.`,
		Example: `  # Create configuration
  casedesk config init

  # Create global configuration even inside a project
  casedesk config init --global

  # Create configuration, overwriting existing
  casedesk config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projectDir := config.GetResolvedProjectDir()

			if projectDir != "" && !global {
				return initConfigAt(cmd, filepath.Join(projectDir, "config.yaml"), force)
			}

			return initConfigAt(cmd, config.New().ConfigPath(), force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&global, "global", false, "force global configuration init even inside a project")

	return cmd
}

// initConfigAt writes the default configuration to configPath.
func initConfigAt(cmd *cobra.Command, configPath string, force bool) error {
	if !force {
		_, err := os.Stat(configPath)
		if err == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		}
		if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", configPath, err)
		}
	}

	cfg := config.Default()
	cfg.SetConfigPath(configPath)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", configPath)
	return nil
}
