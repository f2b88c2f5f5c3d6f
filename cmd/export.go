package cmd

import (
	"fmt"

	"portfolioData/internal/dataset"

	"github.com/spf13/cobra"
)

var (
	exportInput  string
	exportFormat string
	exportDir    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the dataset to another format",
	Long:  "Export data.json to JSON, CSV, YAML, msgpack or BSON files",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportInput, "input", "i", dataset.DefaultOutput, "Dataset file to export")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "Export format: json, csv, yaml, msgpack or bson")
	exportCmd.Flags().StringVar(&exportDir, "dest", "./exports", "Output directory for export files")
}

func runExport(cmd *cobra.Command, args []string) error {
	format := dataset.Format(exportFormat)
	if !format.Valid() {
		return fmt.Errorf("invalid format: %s. Use one of %v", exportFormat, dataset.Formats)
	}

	svc := dataset.NewService(workDir, logger)
	records, err := svc.Load(exportInput)
	if err != nil {
		return err
	}

	path, err := svc.Export(records, exportDir, format)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s\n", len(records), path)
	return nil
}
