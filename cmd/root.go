package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	workDir string
	verbose bool

	logger *zap.Logger
)

// envFlags maps environment variables onto the MongoDB flags of publish and
// pull. A variable only applies when the flag was not given on the command
// line. Generation never reads the environment.
var envFlags = map[string]string{
	"DB_URI":        "db-uri",
	"DB_NAME":       "database",
	"DB_COLLECTION": "collection",
}

var rootCmd = &cobra.Command{
	Use:   "portfolio-data",
	Short: "Generate and publish the portfolio works dataset",
	Long: `portfolio-data synthesizes the portfolio dataset (data.json) from the
built-in list of titles, and can export, validate and publish it.

Run without a command to generate data.json with the default 30 items.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := applyEnv(cmd); err != nil {
			return err
		}

		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runGenerate,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&workDir, "dir", ".", "Working directory for data files and the assets folder")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	addGenerateFlags(rootCmd)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(worksCmd)
	rootCmd.AddCommand(tuiCmd)
}

func initConfig() {
	// A missing .env is the normal case.
	_ = godotenv.Load()
}

func applyEnv(cmd *cobra.Command) error {
	for env, name := range envFlags {
		value, ok := os.LookupEnv(env)
		if !ok || value == "" {
			continue
		}
		flag := cmd.Flags().Lookup(name)
		if flag == nil || flag.Changed {
			continue
		}
		if err := flag.Value.Set(value); err != nil {
			return fmt.Errorf("invalid %s: %w", env, err)
		}
	}
	return nil
}
