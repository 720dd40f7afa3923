package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/lexsent"
	"github.com/tsawler/lexsent/session"
	"github.com/tsawler/lexsent/stats"
)

var (
	batchSentences bool
	batchWorkers   int
)

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Analyze one text per line",
	Long: `Reads texts from a file (or stdin), one per line. Blank lines are
skipped. With --sentences the input is treated as prose and split into
sentences instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	addBatchInputFlags(batchCmd)
	rootCmd.AddCommand(batchCmd)
}

func addBatchInputFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&batchSentences, "sentences", false, "split prose into sentences instead of lines")
	cmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "number of goroutines (overrides config)")
}

// analyzeInput reads and validates batch input and runs it through a session.
func analyzeInput(cmd *cobra.Command, args []string) ([]session.Record, error) {
	input, err := readBatchInput(cmd, args)
	if err != nil {
		return nil, err
	}

	var texts []string
	if batchSentences {
		texts, err = lexsent.Sentences(input)
		if err != nil {
			return nil, err
		}
	} else {
		texts = session.ParseBatch(input)
	}

	workers := cfg.Workers
	if cmd.Flags().Changed("workers") {
		workers = batchWorkers
	}

	records, err := newSession(workers).AnalyzeBatch(texts)
	if err != nil {
		return nil, fmt.Errorf("batch failed: %w", err)
	}
	return records, nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	records, err := analyzeInput(cmd, args)
	if err != nil {
		return err
	}

	summary := stats.Summarize(records, cfg.TopTerms)

	if outputJSON {
		return printJSON(cmd, struct {
			Records []session.Record `json:"records"`
			Summary stats.Summary    `json:"summary"`
		}{records, summary})
	}

	for _, r := range records {
		printRecord(cmd, r)
	}
	cmd.Println()
	cmd.Print(summary.String())
	return nil
}
