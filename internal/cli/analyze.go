package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/lexsent"
)

var analyzeSentences bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text...]",
	Short: "Analyze a single text",
	Long: `Analyzes the arguments joined by spaces, or stdin when no arguments are given.
With --sentences each sentence is scored as well.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeSentences, "sentences", false, "also score each sentence")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	rec, err := newSession(cfg.Workers).Analyze(text)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if analyzeSentences {
		return outputDocument(cmd, text)
	}

	if outputJSON {
		return printJSON(cmd, rec)
	}

	cmd.Printf("Sentiment: %s\n", label(rec.Sentiment))
	cmd.Printf("Confidence: %.2f\n", rec.Confidence)
	cmd.Printf("Lexicon: %s\n", analyzer.Lexicon().Version())
	return nil
}

func outputDocument(cmd *cobra.Command, text string) error {
	doc, err := lexsent.NewDocument(text,
		lexsent.WithAnalyzer(analyzer),
		lexsent.WithWorkers(cfg.Workers),
		lexsent.WithContext(cmd.Context()),
	)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}
	logger.Debug("document analyzed", "count", doc.Metadata.SentenceCount)

	if outputJSON {
		return printJSON(cmd, struct {
			*lexsent.Document
			Sentences []lexsent.Sentence `json:"sentences"`
		}{doc, doc.Sentences()})
	}

	cmd.Printf("Sentiment: %s\n", label(doc.Overall.Sentiment))
	cmd.Printf("Confidence: %.2f\n", doc.Overall.Confidence)
	cmd.Printf("Lexicon: %s\n", doc.Metadata.LexiconVersion)
	cmd.Println()
	for i, s := range doc.Sentences() {
		cmd.Printf("  %d. [%s %.2f] %s\n", i+1, label(s.Sentiment), s.Confidence, s.Text)
	}
	return nil
}
