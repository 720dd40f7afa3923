package session

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/tsawler/lexsent"
)

// DefaultBatchLimit is the largest batch accepted unless WithBatchLimit says
// otherwise.
const DefaultBatchLimit = 50

var (
	ErrEmptyInput    = errors.New("text is empty")
	ErrEmptyBatch    = errors.New("batch has no texts")
	ErrBatchTooLarge = errors.New("batch is too large")
	ErrNotFound      = errors.New("record not found")
)

// Record is one analyzed text as kept in the history.
type Record struct {
	ID         string            `json:"id"`
	Text       string            `json:"text"`
	Sentiment  lexsent.Sentiment `json:"sentiment"`
	Confidence float64           `json:"confidence"`
	Timestamp  time.Time         `json:"timestamp"`
}

// Session is a newest-first list of records. It is safe for concurrent use.
type Session struct {
	mu      sync.RWMutex
	records []Record

	analyzer *lexsent.Analyzer
	clock    clockwork.Clock
	limit    int
	workers  int
	logger   *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the clock used for timestamps.
func WithClock(c clockwork.Clock) Option {
	return func(s *Session) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithBatchLimit sets the maximum number of texts in one batch. Values below
// one are ignored.
func WithBatchLimit(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithWorkers spreads batches over n goroutines. 0 or 1 runs sequentially.
func WithWorkers(n int) Option {
	return func(s *Session) {
		s.workers = n
	}
}

// WithLogger sets the logger. By default nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates an empty session. A nil analyzer means the default one.
func New(analyzer *lexsent.Analyzer, opts ...Option) *Session {
	if analyzer == nil {
		analyzer = lexsent.NewAnalyzer()
	}
	s := &Session{
		analyzer: analyzer,
		clock:    clockwork.NewRealClock(),
		limit:    DefaultBatchLimit,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BatchLimit returns the maximum batch size.
func (s *Session) BatchLimit() int {
	return s.limit
}

// Analyze scores a single text and records it. Text that is empty after
// trimming is rejected with ErrEmptyInput.
func (s *Session) Analyze(text string) (Record, error) {
	if strings.TrimSpace(text) == "" {
		return Record{}, ErrEmptyInput
	}

	rec := s.newRecord(s.analyzer.Analyze(text), s.clock.Now())

	s.mu.Lock()
	s.records = slices.Insert(s.records, 0, rec)
	s.mu.Unlock()

	s.logger.Debug("analyzed text", "id", rec.ID, "sentiment", rec.Sentiment)
	return rec, nil
}

// AnalyzeBatch scores texts and records them as one block at the head of the
// history, in input order. Blank texts are skipped. The remaining count must
// be between 1 and the batch limit.
func (s *Session) AnalyzeBatch(texts []string) ([]Record, error) {
	kept := make([]string, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t) != "" {
			kept = append(kept, t)
		}
	}

	switch {
	case len(kept) == 0:
		return nil, ErrEmptyBatch
	case len(kept) > s.limit:
		return nil, fmt.Errorf("%w: %d texts, limit is %d", ErrBatchTooLarge, len(kept), s.limit)
	}

	now := s.clock.Now()
	results := s.analyzer.AnalyzeBatchParallel(kept, s.workers)

	batch := make([]Record, len(results))
	for i, r := range results {
		batch[i] = s.newRecord(r, now)
	}

	s.mu.Lock()
	s.records = append(slices.Clone(batch), s.records...)
	s.mu.Unlock()

	s.logger.Info("analyzed batch", "count", len(batch), "workers", s.workers)
	return batch, nil
}

// Remove deletes the record with the given ID.
func (s *Session) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.records, func(r Record) bool { return r.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.records = slices.Delete(s.records, i, i+1)
	return nil
}

// Records returns a copy of the history, newest first.
func (s *Session) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

// Len returns the number of records.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Clear drops every record.
func (s *Session) Clear() {
	s.mu.Lock()
	s.records = nil
	s.mu.Unlock()
}

func (s *Session) newRecord(r lexsent.Result, at time.Time) Record {
	return Record{
		ID:         uuid.NewString(),
		Text:       r.Text,
		Sentiment:  r.Sentiment,
		Confidence: r.Confidence,
		Timestamp:  at,
	}
}

// ParseBatch splits multi-line input into texts: one per line, trimmed, with
// blank lines dropped.
func ParseBatch(input string) []string {
	var texts []string
	for _, line := range strings.Split(input, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			texts = append(texts, t)
		}
	}
	return texts
}
