package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/tsawler/lexsent"
)

var explainCmd = &cobra.Command{
	Use:   "explain [text...]",
	Short: "Show how a text was scored",
	RunE:  runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	if len(text) == 0 {
		return errors.New("nothing to explain")
	}

	b := analyzer.Explain(text)
	if outputJSON {
		return printJSON(cmd, b)
	}

	printBreakdown(cmd, b)
	return nil
}

func printBreakdown(cmd *cobra.Command, b lexsent.Breakdown) {
	cmd.Printf("Sentiment: %s (confidence %.2f)\n", label(b.Result.Sentiment), b.Result.Confidence)
	cmd.Printf("Score: %+d raw, %d tokens, %.3f normalized\n", b.RawScore, b.TokenCount, b.Normalized)

	if len(b.Words) > 0 {
		cmd.Println("Words:")
		for _, w := range b.Words {
			cmd.Printf("  %-14s %s/%s x%d  %+d\n", w.Word, w.Polarity, w.Intensity, w.Count, w.Delta)
		}
	}
	if len(b.Phrases) > 0 {
		cmd.Println("Phrases:")
		for _, p := range b.Phrases {
			cmd.Printf("  %-14q %+d\n", p.Phrase, p.Delta)
		}
	}
	if len(b.Negations) > 0 {
		cmd.Println("Negations:")
		for _, n := range b.Negations {
			cmd.Printf("  %s -> %s (%s)  %+d\n", n.Negation, n.Next, n.Word, n.Delta)
		}
	}
}
