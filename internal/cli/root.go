// Package cli implements the lexsent command line.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tsawler/lexsent"
	"github.com/tsawler/lexsent/internal/config"
	"github.com/tsawler/lexsent/internal/logging"
	"github.com/tsawler/lexsent/session"
)

var version = "dev"

var (
	configPath  string
	logLevel    string
	lexiconPath string
	outputJSON  bool
)

// Set up by setup before any command runs.
var (
	cfg      *config.Config
	logger   *log.Logger     = logging.Discard()
	analyzer *lexsent.Analyzer
	clock    clockwork.Clock = clockwork.NewRealClock()
)

var rootCmd = &cobra.Command{
	Use:   "lexsent",
	Short: "Lexicon-based sentiment analysis",
	Long: `Classifies text as positive, negative or neutral using a fixed
English lexicon with intensity weights, phrase matching and negation.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.lexsent/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&lexiconPath, "lexicon", "", "JSON lexicon file to use instead of the built-in one")
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "output as JSON")
}

// Execute runs the root command.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		c.LogLevel = logLevel
	}
	if cmd.Flags().Changed("lexicon") {
		c.LexiconPath = lexiconPath
	}
	if err := c.Validate(); err != nil {
		return err
	}

	l, err := logging.New(cmd.ErrOrStderr(), c.LogLevel, c.LogFormat)
	if err != nil {
		return err
	}

	a := lexsent.NewAnalyzer()
	if c.LexiconPath != "" {
		lex, err := lexsent.LoadLexicon(c.LexiconPath)
		if err != nil {
			return err
		}
		a = lexsent.NewAnalyzer(lexsent.UsingLexicon(lex))
	}
	l.Debug("analyzer ready", "lexicon_version", a.Lexicon().Version(), "path", c.LexiconPath)

	cfg, logger, analyzer = c, l, a
	return nil
}

func newSession(workers int) *session.Session {
	return session.New(analyzer,
		session.WithBatchLimit(cfg.BatchLimit),
		session.WithWorkers(workers),
		session.WithLogger(logger),
		session.WithClock(clock),
	)
}

var titleCaser = cases.Title(language.English)

func label(s lexsent.Sentiment) string {
	return titleCaser.String(string(s))
}

// readInput returns the joined arguments, or stdin when there are none.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// readBatchInput returns the contents of the file named by args[0], or stdin.
func readBatchInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		return readInput(cmd, nil)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}
