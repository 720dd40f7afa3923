package lexsent

import (
	"encoding/json"
	"fmt"
)

// A Token represents a whitespace-delimited unit of text.
type Token struct {
	Text  string // The token's actual content.
	Start int    // Start position in original text
	End   int    // End position in original text
}

// Sentiment is the label assigned to a piece of text.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

// Valid reports whether s is one of the three labels.
func (s Sentiment) Valid() bool {
	switch s {
	case Positive, Negative, Neutral:
		return true
	}
	return false
}

// UnmarshalJSON rejects unknown labels.
func (s *Sentiment) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v := Sentiment(str)
	if !v.Valid() {
		return fmt.Errorf("lexsent: unknown sentiment: %q", str)
	}
	*s = v
	return nil
}

// Polarity is the direction of a lexicon word or phrase.
type Polarity string

const (
	PositivePolarity Polarity = "positive"
	NegativePolarity Polarity = "negative"
)

// sign returns +1 for positive and -1 for negative polarity.
func (p Polarity) sign() int {
	if p == NegativePolarity {
		return -1
	}
	return 1
}

// Intensity grades how strongly a lexicon word carries its polarity.
type Intensity string

const (
	Strong Intensity = "strong"
	Medium Intensity = "medium"
	Mild   Intensity = "mild"
)

// Weight returns the multiplier for an intensity: strong=3, medium=2, mild=1.
func (i Intensity) Weight() int {
	switch i {
	case Strong:
		return 3
	case Medium:
		return 2
	case Mild:
		return 1
	}
	return 0
}

// Result is the output of one pipeline run. It is immutable once produced
// and owned by the caller.
type Result struct {
	Text       string    `json:"text"`
	Sentiment  Sentiment `json:"sentiment"`
	Confidence float64   `json:"confidence"` // 0.0 to 1.0
}

// String returns a debug representation of the result.
func (r Result) String() string {
	return fmt.Sprintf("%s(confidence=%.2f)", r.Sentiment, r.Confidence)
}

// Breakdown reports how a Result was reached.
type Breakdown struct {
	Result     Result               `json:"result"`
	Words      []WordContribution   `json:"words"`
	Phrases    []PhraseContribution `json:"phrases"`
	Negations  []NegationPenalty    `json:"negations"`
	RawScore   int                  `json:"raw_score"`
	WordHits   int                  `json:"word_hits"`
	TokenCount int                  `json:"token_count"`
	Normalized float64              `json:"normalized"` // -1.0 to 1.0
}

// WordContribution represents a lexicon word's contribution to the raw score.
type WordContribution struct {
	Word      string    `json:"word"`
	Polarity  Polarity  `json:"polarity"`
	Intensity Intensity `json:"intensity"`
	Count     int       `json:"count"`
	Delta     int       `json:"delta"`
}

// PhraseContribution represents a matched phrase.
type PhraseContribution struct {
	Phrase   string   `json:"phrase"`
	Polarity Polarity `json:"polarity"`
	Delta    int      `json:"delta"`
}

// NegationPenalty records one penalty applied after a negation token.
type NegationPenalty struct {
	Negation string `json:"negation"` // the negation token
	Next     string `json:"next"`     // the token following it
	Word     string `json:"word"`     // positive lexicon word found inside Next
	Position int    `json:"position"` // index of the negation token
	Delta    int    `json:"delta"`
}
