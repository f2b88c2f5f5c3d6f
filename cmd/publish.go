package cmd

import (
	"fmt"

	"portfolioData/internal/database"
	"portfolioData/internal/dataset"

	"github.com/spf13/cobra"
)

var (
	dbURI      string
	dbName     string
	collection string

	publishInput string
	dropExisting bool
	pullOutput   string
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish the dataset to MongoDB",
	Long: `Upsert every record of the dataset into a MongoDB collection keyed by id.
Fields added to stored documents outside the generator are preserved.`,
	Args: cobra.NoArgs,
	RunE: runPublish,
}

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Write the published MongoDB records back to a dataset file",
	Args:  cobra.NoArgs,
	RunE:  runPull,
}

func addDatabaseFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&dbURI, "db-uri", "u", "mongodb://localhost:27017", "MongoDB connection URI")
	cmd.Flags().StringVarP(&dbName, "database", "d", "portfolio", "Database name")
	cmd.Flags().StringVarP(&collection, "collection", "c", "works", "Collection name")
}

func init() {
	addDatabaseFlags(publishCmd)
	publishCmd.Flags().StringVarP(&publishInput, "input", "i", dataset.DefaultOutput, "Dataset file to publish")
	publishCmd.Flags().BoolVar(&dropExisting, "drop", false, "Drop existing collection before publishing")

	addDatabaseFlags(pullCmd)
	pullCmd.Flags().StringVarP(&pullOutput, "output", "o", dataset.DefaultOutput, "Dataset file to write")
}

func runPublish(cmd *cobra.Command, args []string) error {
	svc := dataset.NewService(workDir, logger)
	records, err := svc.Load(publishInput)
	if err != nil {
		return err
	}

	db, err := database.NewMongoDB(cmd.Context(), dbURI, dbName, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	inserted, updated, err := db.PublishRecords(cmd.Context(), collection, records, dropExisting)
	if err != nil {
		return fmt.Errorf("publish failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Published %d records to %s.%s (%d new, %d updated)\n",
		len(records), dbName, collection, inserted, updated)
	return nil
}

func runPull(cmd *cobra.Command, args []string) error {
	db, err := database.NewMongoDB(cmd.Context(), dbURI, dbName, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.EnsureCollection(cmd.Context(), collection); err != nil {
		return fmt.Errorf("pull failed: %w", err)
	}

	records, err := db.FetchRecords(cmd.Context(), collection)
	if err != nil {
		return fmt.Errorf("pull failed: %w", err)
	}

	svc := dataset.NewService(workDir, logger)
	if _, err := svc.Persist(records, pullOutput); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Pulled %d records into %s\n", len(records), pullOutput)
	return nil
}
