package lexsent

import (
	"strings"
	"testing"
)

func TestWhitespaceTokenizer(t *testing.T) {
	tests := []struct {
		text     string
		expected []string
		desc     string
	}{
		{"", nil, "Empty text"},
		{"   ", nil, "Only spaces"},
		{"not good", []string{"not", "good"}, "Two words"},
		{"  leading and trailing  ", []string{"leading", "and", "trailing"}, "Surrounding whitespace"},
		{"tabs\tand\nnewlines\r\nmixed", []string{"tabs", "and", "newlines", "mixed"}, "Mixed separators"},
		{"non\u00a0breaking", []string{"non", "breaking"}, "No-break space"},
		{"\ufeffbom start", []string{"bom", "start"}, "Byte order mark"},
		{"This is a table.", []string{"This", "is", "a", "table."}, "Punctuation stays attached"},
	}

	tokenizer := NewWhitespaceTokenizer()

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			tokens := tokenizer.Tokenize(tt.text)

			if len(tokens) != len(tt.expected) {
				t.Fatalf("Text: %q\nExpected %d tokens, got %d", tt.text, len(tt.expected), len(tokens))
			}
			for i, tok := range tokens {
				if tok.Text != tt.expected[i] {
					t.Errorf("Token %d: expected %q, got %q", i, tt.expected[i], tok.Text)
				}
				if tt.text[tok.Start:tok.End] != tok.Text {
					t.Errorf("Token %d: offsets [%d:%d] do not match %q", i, tok.Start, tok.End, tok.Text)
				}
			}
		})
	}
}

func TestUsingSeparator(t *testing.T) {
	tokenizer := NewWhitespaceTokenizer(UsingSeparator(func(r rune) bool { return r == ',' }))

	tokens := tokenizer.Tokenize("a,b,,c d")
	got := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		got = append(got, tok.Text)
	}

	if strings.Join(got, "|") != "a|b|c d" {
		t.Errorf("Expected a|b|c d, got %s", strings.Join(got, "|"))
	}
}

func BenchmarkTokenize(b *testing.B) {
	tokenizer := NewWhitespaceTokenizer()
	text := strings.Repeat("The customer service was absolutely terrible. ", 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tokenizer.Tokenize(text)
	}
}
