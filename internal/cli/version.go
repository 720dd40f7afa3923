package cli

import (
	"github.com/spf13/cobra"

	"github.com/tsawler/lexsent"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("lexsent version %s (lexicon %s)\n", version, lexsent.DefaultLexiconVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
