package cli

import (
	"github.com/spf13/cobra"

	"github.com/tsawler/lexsent/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Summarize a batch",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

func init() {
	addBatchInputFlags(statsCmd)
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	records, err := analyzeInput(cmd, args)
	if err != nil {
		return err
	}

	summary := stats.Summarize(records, cfg.TopTerms)
	if outputJSON {
		return printJSON(cmd, summary)
	}
	cmd.Print(summary.String())
	return nil
}
