package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tsawler/lexsent/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Analyze a batch and write the results to a file",
	Long: `Analyzes one text per line, like batch, and writes the results as JSON
or CSV. The default file name is sentiment-analysis-YYYY-MM-DD.<format>
in the configured export directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json or csv")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path")
	addBatchInputFlags(exportCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	records, err := analyzeInput(cmd, args)
	if err != nil {
		return err
	}

	path := exportOut
	if path == "" {
		path = filepath.Join(cfg.ExportDir, export.Filename(format, clock.Now()))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := export.Write(f, format, records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}

	logger.Info("export written", "path", path, "format", format, "count", len(records))
	cmd.Printf("Exported %d results to %s\n", len(records), path)
	return nil
}
