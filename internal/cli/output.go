package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/lexsent/session"
)

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func printRecord(cmd *cobra.Command, r session.Record) {
	cmd.Printf("[%s %.2f] %s\n", label(r.Sentiment), r.Confidence, r.Text)
}
