package cmd

import (
	"encoding/json"
	"fmt"

	"portfolioData/internal/works"

	"github.com/spf13/cobra"
)

var worksJSON bool

var worksCmd = &cobra.Command{
	Use:   "works",
	Short: "List hand-built works found under works/works_NN",
	Long: `Scan works/works_40 down to works/works_01 for an index.html and print
each piece with its page title. Pages without a <title> are listed as "Work NN".`,
	Args: cobra.NoArgs,
	RunE: runWorks,
}

func init() {
	worksCmd.Flags().BoolVar(&worksJSON, "json", false, "Print the list as JSON")
}

func runWorks(cmd *cobra.Command, args []string) error {
	found, err := works.NewScanner(workDir, logger).Scan()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if worksJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(found)
	}

	if len(found) == 0 {
		fmt.Fprintln(out, "No works found")
		return nil
	}
	for _, w := range found {
		fmt.Fprintf(out, "%s  %s  (%s)\n", w.ID, w.Title, w.Path)
	}
	return nil
}
