package cmd

import (
	"fmt"

	"portfolioData/internal/dataset"
	"portfolioData/internal/synth"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	genCount  int
	genOutput string
	genSeed   uint64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the portfolio dataset",
	Long: `Generate portfolio records, sort them by year and id (both descending)
and write them as indented JSON. Also creates the assets directory.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&genCount, "count", "n", synth.DefaultCount, "Number of records to generate")
	cmd.Flags().StringVarP(&genOutput, "output", "o", dataset.DefaultOutput, "Output JSON file")
	cmd.Flags().Uint64Var(&genSeed, "seed", 0, "Random seed for reproducible output (0 = random)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if genCount <= 0 {
		return fmt.Errorf("invalid count: %d", genCount)
	}

	records := synth.NewSynthesizer(genCount, genSeed).Run()
	logger.Debug("Generated records", zap.Int("count", len(records)), zap.Uint64("seed", genSeed))

	svc := dataset.NewService(workDir, logger)
	if _, err := svc.Persist(records, genOutput); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s with %d items.\n", genOutput, len(records))
	return nil
}
