package cmd

import (
	"fmt"

	"portfolioData/internal/dataset"
	"portfolioData/internal/synth"

	"github.com/spf13/cobra"
)

var (
	validateInput string
	validateCount int
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a dataset file",
	Long: `Check that a dataset file has the expected number of records, unique
two-digit ids, upper-case titles and types, empty assets and is sorted by
year and id descending.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", dataset.DefaultOutput, "Dataset file to check")
	validateCmd.Flags().IntVarP(&validateCount, "count", "n", synth.DefaultCount, "Expected number of records")
}

func runValidate(cmd *cobra.Command, args []string) error {
	svc := dataset.NewService(workDir, logger)
	if err := svc.ValidateFile(validateInput); err != nil {
		return fmt.Errorf("data file validation failed: %w", err)
	}

	records, err := svc.Load(validateInput)
	if err != nil {
		return err
	}

	if err := dataset.Validate(records, validateCount); err != nil {
		return fmt.Errorf("%s is invalid:\n%w", validateInput, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid (%d records)\n", validateInput, len(records))
	return nil
}
