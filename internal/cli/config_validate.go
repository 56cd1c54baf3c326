package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/casedesk/internal/config"
	"github.com/rshade/casedesk/internal/guidance"
	"github.com/rshade/casedesk/internal/ingest"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration for syntax and semantic correctness.

This includes:
- Display width and currency symbol
- Logging level and format
- The configured guidance catalog, if any (schema version and entries)
- The configured case file, if any`,
		Example: `  # Validate current configuration
  casedesk config validate

  # Validate and show detailed information
  casedesk config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if cfg.Guidance.Catalog != "" {
		if _, err := guidance.LoadCatalog(cfg.Guidance.Catalog); err != nil {
			return fmt.Errorf("configuration validation failed: %w", err)
		}
	}
	if cfg.Case.File != "" {
		if _, err := ingest.LoadCaseFile(cfg.Case.File); err != nil {
			return fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	cmd.Printf("  Display width: %d\n", cfg.Display.Width)
	cmd.Printf("  Currency symbol: %s\n", cfg.Display.CurrencySymbol)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)

	if cfg.Guidance.Catalog == "" {
		cmd.Println("  Guidance catalog: built-in")
	} else {
		cmd.Printf("  Guidance catalog: %s\n", cfg.Guidance.Catalog)
	}
	if cfg.Case.File == "" {
		cmd.Println("  Case file: built-in sample")
	} else {
		cmd.Printf("  Case file: %s\n", cfg.Case.File)
	}
}
