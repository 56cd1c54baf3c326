package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/casedesk/internal/engine"
)

// NewCaseShowCmd creates the case show command.
func NewCaseShowCmd() *cobra.Command {
	var (
		flags  caseFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the case assessment",
		Long: `Prints the case, its derived values and the applicable guidance.

The legal context is included only with --detailed.`,
		Example: `  # Table output for the built-in sample case
  casedesk case show

  # Detailed JSON for a case file
  casedesk case show --case claims/INS-99281-KL.yaml --detailed --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := engine.ParseOutputFormat(output)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			in, err := engine.Load(ctx, flags.sources())
			if err != nil {
				return err
			}
			a, err := buildAssessment(ctx, in.Case, newResolver(in.Catalog), flags.detailed)
			if err != nil {
				return err
			}
			return engine.RenderAssessment(cmd.OutOrStdout(), format, a)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", string(engine.OutputTable),
		"output format: table, json or yaml")

	return cmd
}
