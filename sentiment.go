package lexsent

import (
	"math"
	"strings"
	"sync"
)

const (
	// positiveThreshold and negativeThreshold bound the neutral band.
	positiveThreshold = 0.15
	negativeThreshold = -0.15

	// lengthFactor scales the token count into the normalization divisor.
	lengthFactor = 0.3
)

// Analyzer scores text against a fixed lexicon. An Analyzer holds no mutable
// state and is safe for concurrent use by multiple goroutines.
type Analyzer struct {
	lexicon   *Lexicon
	tokenizer Tokenizer
}

// An AnalyzerOpt represents a setting that changes how an Analyzer is built.
//
// For example, it might swap the lexicon:
//
//	a := lexsent.NewAnalyzer(lexsent.UsingLexicon(lex))
type AnalyzerOpt func(a *Analyzer)

// UsingLexicon specifies the Lexicon to use.
func UsingLexicon(lex *Lexicon) AnalyzerOpt {
	return func(a *Analyzer) {
		if lex != nil {
			a.lexicon = lex
		}
	}
}

// UsingTokenizer specifies the Tokenizer used for negation scanning and
// length normalization.
func UsingTokenizer(tok Tokenizer) AnalyzerOpt {
	return func(a *Analyzer) {
		if tok != nil {
			a.tokenizer = tok
		}
	}
}

// NewAnalyzer creates an Analyzer. Without options it uses DefaultLexicon and
// the whitespace tokenizer.
func NewAnalyzer(opts ...AnalyzerOpt) *Analyzer {
	a := &Analyzer{
		lexicon:   DefaultLexicon(),
		tokenizer: NewWhitespaceTokenizer(),
	}
	for _, applyOpt := range opts {
		applyOpt(a)
	}
	return a
}

var defaultAnalyzer = sync.OnceValue(func() *Analyzer {
	return NewAnalyzer()
})

// Analyze scores text with the default analyzer.
func Analyze(text string) Result {
	return defaultAnalyzer().Analyze(text)
}

// AnalyzeBatch scores every text with the default analyzer, in order.
func AnalyzeBatch(texts []string) []Result {
	return defaultAnalyzer().AnalyzeBatch(texts)
}

// Lexicon returns the analyzer's lexicon.
func (a *Analyzer) Lexicon() *Lexicon {
	return a.lexicon
}

// Analyze returns the sentiment label and confidence for text. It accepts any
// string; empty and whitespace-only text is neutral with zero confidence.
func (a *Analyzer) Analyze(text string) Result {
	acc := accumulator{}
	normalized, _ := a.score(text, &acc)
	return newResult(text, normalized)
}

// Explain runs the same pipeline as Analyze and reports every contribution to
// the score.
func (a *Analyzer) Explain(text string) Breakdown {
	acc := accumulator{trace: true}
	normalized, tokenCount := a.score(text, &acc)

	return Breakdown{
		Result:     newResult(text, normalized),
		Words:      acc.words,
		Phrases:    acc.phrases,
		Negations:  acc.negations,
		RawScore:   acc.score,
		WordHits:   acc.hits,
		TokenCount: tokenCount,
		Normalized: normalized,
	}
}

// score accumulates the raw score and returns it normalized along with the
// token count of the original text.
func (a *Analyzer) score(text string, acc *accumulator) (float64, int) {
	lower := strings.ToLower(text)

	matchWords(a.lexicon, lower, acc)
	matchPhrases(a.lexicon, lower, acc)
	adjustNegations(a.lexicon, a.tokenizer.Tokenize(lower), acc)

	tokenCount := len(a.tokenizer.Tokenize(text))
	return normalize(acc.score, tokenCount), tokenCount
}

// newResult builds the final record from a normalized score.
func newResult(text string, normalized float64) Result {
	return Result{
		Text:       text,
		Sentiment:  classify(normalized),
		Confidence: confidence(normalized),
	}
}

// normalize divides the raw score by a length-based denominator so that short
// texts reach the thresholds with small scores and long texts need
// proportionally more matches. The result is clamped to [-1, 1].
func normalize(raw, tokenCount int) float64 {
	if tokenCount == 0 {
		return 0
	}
	n := float64(raw) / math.Max(float64(tokenCount)*lengthFactor, 1)
	return math.Max(-1, math.Min(1, n))
}

// classify maps a normalized score to a label.
func classify(normalized float64) Sentiment {
	switch {
	case normalized > positiveThreshold:
		return Positive
	case normalized < negativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

// confidence saturates at 1 once |normalized| reaches 0.5.
func confidence(normalized float64) float64 {
	return math.Min(math.Abs(normalized)*2, 1)
}
