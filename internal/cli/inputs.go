package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/casedesk/internal/config"
	"github.com/rshade/casedesk/internal/engine"
	"github.com/rshade/casedesk/internal/guidance"
)

// caseFlags are the input flags shared by the dashboard and case show commands.
type caseFlags struct {
	caseFile     string
	guidanceFile string
	detailed     bool
}

func (f *caseFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.caseFile, "case", "",
		"case file (YAML or JSON); defaults to case.file from config, then the built-in sample")
	cmd.Flags().StringVar(&f.guidanceFile, "guidance", "",
		"guidance catalog (YAML); defaults to guidance.catalog from config, then the built-in catalog")
	cmd.Flags().BoolVar(&f.detailed, "detailed", false, "start in the detailed view")
}

// sources resolves flag values against the configuration.
func (f *caseFlags) sources() engine.Sources {
	src := engine.Sources{CaseFile: f.caseFile, CatalogFile: f.guidanceFile}
	if src.CaseFile == "" {
		src.CaseFile = config.GetCaseFile()
	}
	if src.CatalogFile == "" {
		src.CatalogFile = config.GetGuidanceCatalog()
	}
	return src
}

// engineOptions returns the display options from the configuration.
func engineOptions() engine.Options {
	display := config.GetDisplayConfig()
	opts := engine.DefaultOptions()
	if display.CurrencySymbol != "" {
		opts.CurrencySymbol = display.CurrencySymbol
	}
	if display.Locale != "" {
		opts.Locale = display.Locale
	}
	return opts
}

func newResolver(catalog *guidance.Catalog) *guidance.Resolver {
	return guidance.NewResolver(catalog, config.GetGuidanceCacheTTL())
}
