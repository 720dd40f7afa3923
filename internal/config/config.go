// Package config loads lexsent settings. Values are layered, lowest first:
// built-in defaults, the TOML config file, the environment (a .env file in
// the working directory fills unset variables), then command-line flags,
// which the CLI applies itself.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"go-simpler.org/env"
)

type Config struct {
	BatchLimit  int    `toml:"batch_limit" env:"LEXSENT_BATCH_LIMIT"`
	Workers     int    `toml:"workers" env:"LEXSENT_WORKERS"`
	LogLevel    string `toml:"log_level" env:"LEXSENT_LOG_LEVEL"`
	LogFormat   string `toml:"log_format" env:"LEXSENT_LOG_FORMAT"`
	LexiconPath string `toml:"lexicon_path" env:"LEXSENT_LEXICON_PATH"`
	TopTerms    int    `toml:"top_terms" env:"LEXSENT_TOP_TERMS"`
	ExportDir   string `toml:"export_dir" env:"LEXSENT_EXPORT_DIR"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		BatchLimit: 50,
		Workers:    0,
		LogLevel:   "warn",
		LogFormat:  "text",
		TopTerms:   10,
		ExportDir:  ".",
	}
}

// DefaultPath returns ~/.lexsent/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".lexsent", "config.toml"), nil
}

// Load builds a Config from the file at path and the environment. An empty
// path means DefaultPath. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to locate config file: %w", err)
		}
		path = p
	}

	if err := loadFile(path, cfg); err != nil {
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}
	if err := env.Load(cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks ranges and enumerated values.
func (c *Config) Validate() error {
	if c.BatchLimit < 1 {
		return fmt.Errorf("batch_limit must be at least 1, got %d", c.BatchLimit)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.TopTerms < 0 {
		return fmt.Errorf("top_terms must not be negative, got %d", c.TopTerms)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	switch c.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("log_format must be text, json or logfmt, got %q", c.LogFormat)
	}
	return nil
}
