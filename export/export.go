// Package export writes analyzed records as JSON or CSV.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tsawler/lexsent"
	"github.com/tsawler/lexsent/session"
)

// Format is an export file format.
type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
)

var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat accepts "json" or "csv" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case JSON, CSV:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Filename returns the default export file name for the given day.
func Filename(f Format, now time.Time) string {
	return fmt.Sprintf("sentiment-analysis-%s.%s", now.Format(time.DateOnly), f)
}

// entry is the exported shape of a record. IDs stay internal.
type entry struct {
	Text       string            `json:"text"`
	Sentiment  lexsent.Sentiment `json:"sentiment"`
	Confidence float64           `json:"confidence"`
	Timestamp  string            `json:"timestamp"`
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Write encodes records in the given format.
func Write(w io.Writer, f Format, records []session.Record) error {
	switch f {
	case JSON:
		return WriteJSON(w, records)
	case CSV:
		return WriteCSV(w, records)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// WriteJSON writes records as an indented JSON array.
func WriteJSON(w io.Writer, records []session.Record) error {
	entries := make([]entry, len(records))
	for i, r := range records {
		entries[i] = entry{
			Text:       r.Text,
			Sentiment:  r.Sentiment,
			Confidence: r.Confidence,
			Timestamp:  timestamp(r.Timestamp),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("error writing JSON export: %w", err)
	}
	return nil
}

// WriteCSV writes a header row followed by one row per record. Confidence
// is written with two decimals.
func WriteCSV(w io.Writer, records []session.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Text", "Sentiment", "Confidence", "Timestamp"}); err != nil {
		return fmt.Errorf("error writing CSV export: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Text,
			string(r.Sentiment),
			strconv.FormatFloat(r.Confidence, 'f', 2, 64),
			timestamp(r.Timestamp),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("error writing CSV export: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("error writing CSV export: %w", err)
	}
	return nil
}
