package lexsent

import (
	"unicode"
	"unicode/utf8"
)

// Tokenizer splits text into tokens.
type Tokenizer interface {
	Tokenize(string) []*Token
}

// whitespaceTokenizer splits text on runs of whitespace. Leading and trailing
// whitespace never produces empty tokens.
type whitespaceTokenizer struct {
	isSep func(rune) bool
}

// TokenizerOptFunc configures a whitespace tokenizer.
type TokenizerOptFunc func(*whitespaceTokenizer)

// UsingSeparator replaces the separator test. The default treats Unicode white
// space and the byte order mark as separators.
func UsingSeparator(fn func(rune) bool) TokenizerOptFunc {
	return func(t *whitespaceTokenizer) {
		t.isSep = fn
	}
}

// NewWhitespaceTokenizer returns the tokenizer used by default for negation
// scanning and length normalization.
func NewWhitespaceTokenizer(opts ...TokenizerOptFunc) Tokenizer {
	tok := &whitespaceTokenizer{isSep: isSpace}
	for _, applyOpt := range opts {
		applyOpt(tok)
	}
	return tok
}

// Tokenize splits text into whitespace-delimited tokens with byte offsets.
func (t *whitespaceTokenizer) Tokenize(text string) []*Token {
	var tokens []*Token

	start := -1
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if t.isSep(r) {
			if start >= 0 {
				tokens = append(tokens, &Token{Text: text[start:i], Start: start, End: i})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
		i += size
	}
	if start >= 0 {
		tokens = append(tokens, &Token{Text: text[start:], Start: start, End: len(text)})
	}

	return tokens
}

// isSpace matches the characters a regular-expression \s class treats as
// white space, which includes U+FEFF.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}
