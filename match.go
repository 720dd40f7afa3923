package lexsent

import "strings"

// accumulator collects the signed raw score for one pipeline run. When trace
// is set it also records every contribution for Explain.
type accumulator struct {
	score int
	hits  int
	trace bool

	words     []WordContribution
	phrases   []PhraseContribution
	negations []NegationPenalty
}

// matchWords adds count × weight for every lexicon word found on word
// boundaries in lower. Partial words never match: "goodness" does not
// contain the word "good".
func matchWords(lex *Lexicon, lower string, acc *accumulator) {
	for i, entry := range lex.words {
		count := len(lex.patterns[i].FindAllStringIndex(lower, -1))
		if count == 0 {
			continue
		}

		delta := entry.Polarity.sign() * count * entry.Weight()
		acc.score += delta
		acc.hits += count

		if acc.trace {
			acc.words = append(acc.words, WordContribution{
				Word:      entry.Word,
				Polarity:  entry.Polarity,
				Intensity: entry.Intensity,
				Count:     count,
				Delta:     delta,
			})
		}
	}
}

// matchPhrases adds a fixed contribution for every phrase contained in lower.
// A phrase counts once no matter how often it occurs.
func matchPhrases(lex *Lexicon, lower string, acc *accumulator) {
	for _, entry := range lex.phrases {
		if !strings.Contains(lower, entry.Phrase) {
			continue
		}

		delta := entry.Polarity.sign() * entry.Weight()
		acc.score += delta

		if acc.trace {
			acc.phrases = append(acc.phrases, PhraseContribution{
				Phrase:   entry.Phrase,
				Polarity: entry.Polarity,
				Delta:    delta,
			})
		}
	}
}
