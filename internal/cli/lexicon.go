package cli

import (
	"github.com/spf13/cobra"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Print the active lexicon as JSON",
	Long: `Prints the active lexicon in the JSON format accepted by --lexicon and
the lexicon_path setting.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printJSON(cmd, analyzer.Lexicon())
	},
}

func init() {
	rootCmd.AddCommand(lexiconCmd)
}
