package lexsent

import (
	"context"
	"strings"
	"time"
)

// A DocOpt represents a setting that changes how a Document is analyzed.
//
// For example, it might score sentences on four goroutines:
//
//	doc, err := lexsent.NewDocument("...", lexsent.WithWorkers(4))
type DocOpt func(opts *DocOpts)

// DocOpts controls Document analysis.
type DocOpts struct {
	Analyzer *Analyzer       // Analyzer to use; nil means the default
	Segment  bool            // If true, also score each sentence
	Workers  int             // Goroutines for sentence scoring; <= 1 is sequential
	Context  context.Context // Context for cancellation and timeouts
	Timeout  time.Duration   // Processing timeout; 0 means none
}

// WithAnalyzer specifies the Analyzer to use.
func WithAnalyzer(a *Analyzer) DocOpt {
	return func(opts *DocOpts) {
		opts.Analyzer = a
	}
}

// WithSegmentation can enable (the default) or disable sentence scoring.
func WithSegmentation(include bool) DocOpt {
	return func(opts *DocOpts) {
		opts.Segment = include
	}
}

// WithWorkers sets how many goroutines score sentences.
func WithWorkers(n int) DocOpt {
	return func(opts *DocOpts) {
		opts.Workers = n
	}
}

// WithContext sets the context for document processing.
func WithContext(ctx context.Context) DocOpt {
	return func(opts *DocOpts) {
		opts.Context = ctx
	}
}

// WithTimeout sets a timeout for document processing.
func WithTimeout(timeout time.Duration) DocOpt {
	return func(opts *DocOpts) {
		opts.Timeout = timeout
	}
}

// A Sentence is one scored sentence of a Document. Start and End are byte
// offsets into the document text.
type Sentence struct {
	Result
	Start int `json:"start"`
	End   int `json:"end"`
}

// DocumentMetadata describes how a Document was produced.
type DocumentMetadata struct {
	LexiconVersion string    `json:"lexicon_version"`
	SentenceCount  int       `json:"sentence_count"`
	ProcessedAt    time.Time `json:"processed_at"`
}

// A Document holds the score of a whole text and, when segmentation is on,
// of each of its sentences.
type Document struct {
	Text     string           `json:"text"`
	Overall  Result           `json:"overall"`
	Metadata DocumentMetadata `json:"metadata"`

	sentences []Sentence
}

// Sentences returns `doc`'s scored sentences.
func (doc *Document) Sentences() []Sentence {
	return doc.sentences
}

// Counts returns the number of sentences per label.
func (doc *Document) Counts() map[Sentiment]int {
	counts := make(map[Sentiment]int, 3)
	for _, s := range doc.sentences {
		counts[s.Sentiment]++
	}
	return counts
}

var defaultDocOpts = DocOpts{
	Segment: true,
	Context: context.Background(),
}

// NewDocument scores text as a whole and, unless segmentation is disabled,
// sentence by sentence.
//
// For example,
//
//	doc, err := lexsent.NewDocument("I love it. The box was damaged.")
func NewDocument(text string, opts ...DocOpt) (*Document, error) {
	base := defaultDocOpts
	for _, applyOpt := range opts {
		applyOpt(&base)
	}
	if base.Analyzer == nil {
		base.Analyzer = defaultAnalyzer()
	}
	if base.Context == nil {
		base.Context = context.Background()
	}

	ctx := base.Context
	if base.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, base.Timeout)
		defer cancel()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := Document{
		Text:    text,
		Overall: base.Analyzer.Analyze(text),
		Metadata: DocumentMetadata{
			LexiconVersion: base.Analyzer.Lexicon().Version(),
			ProcessedAt:    time.Now(),
		},
	}

	if base.Segment {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		texts, err := Sentences(text)
		if err != nil {
			return nil, err
		}
		results := base.Analyzer.AnalyzeBatchParallel(texts, base.Workers)

		doc.sentences = make([]Sentence, len(results))
		cursor := 0
		for i, r := range results {
			start := cursor
			if j := strings.Index(text[cursor:], r.Text); j >= 0 {
				start = cursor + j
			}
			end := start + len(r.Text)
			if end > len(text) {
				end = len(text)
			}
			doc.sentences[i] = Sentence{Result: r, Start: start, End: end}
			cursor = end
		}
		doc.Metadata.SentenceCount = len(doc.sentences)
	}

	return &doc, nil
}
