package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/rshade/casedesk/internal/ingest"
)

// NewCaseValidateCmd creates the case validate command.
func NewCaseValidateCmd() *cobra.Command {
	var caseFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a case file",
		Long: `Checks that a case file parses and holds a displayable case.

Exits with status 2 when the file is invalid.`,
		Example: `  casedesk case validate --case claims/INS-99281-KL.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if caseFile == "" {
				return errors.New("--case is required")
			}
			record, err := ingest.LoadCaseFile(caseFile)
			if err != nil {
				logger.Info().Err(err).Str("case_file", caseFile).Msg("case file invalid")
				return invalidCaseError(caseFile, err)
			}
			cmd.Printf("✅ Case %s is valid\n", record.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&caseFile, "case", "", "case file to validate (YAML or JSON)")

	return cmd
}
