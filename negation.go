package lexsent

import "strings"

// negationPenalty is subtracted for each strong or medium positive word found
// in the token after a negation.
const negationPenalty = 2

// adjustNegations scans tokens once with a one-token lookahead. When a
// negation is followed by a token containing a strong or medium positive word,
// the penalty is applied once per such word. The positive word keeps its own
// contribution from matchWords; the penalty only offsets it.
func adjustNegations(lex *Lexicon, tokens []*Token, acc *accumulator) {
	for i := 0; i < len(tokens)-1; i++ {
		if !lex.IsNegation(tokens[i].Text) {
			continue
		}

		next := tokens[i+1].Text
		for _, word := range lex.negatable {
			if !strings.Contains(next, word) {
				continue
			}

			acc.score -= negationPenalty

			if acc.trace {
				acc.negations = append(acc.negations, NegationPenalty{
					Negation: tokens[i].Text,
					Next:     next,
					Word:     word,
					Position: i,
					Delta:    -negationPenalty,
				})
			}
		}
	}
}
