package lexsent

import (
	"fmt"
	"strings"
	"sync"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

var punkt = sync.OnceValues(func() (*sentences.DefaultSentenceTokenizer, error) {
	return english.NewSentenceTokenizer(nil)
})

// Sentences splits prose into sentences using the Punkt model for English.
// Blank sentences are dropped and the rest are trimmed, so the output can be
// passed straight to AnalyzeBatch.
func Sentences(text string) ([]string, error) {
	tokenizer, err := punkt()
	if err != nil {
		return nil, fmt.Errorf("failed to load sentence model: %w", err)
	}

	var out []string
	for _, sent := range tokenizer.Tokenize(text) {
		if s := strings.TrimSpace(sent.Text); s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}
