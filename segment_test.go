package lexsent

import (
	"testing"
)

func TestSentences(t *testing.T) {
	tests := []struct {
		text     string
		expected []string
		desc     string
	}{
		{"", nil, "Empty text"},
		{"I love the design. The quality is terrible though.", []string{
			"I love the design.",
			"The quality is terrible though.",
		}, "Two sentences"},
		{"Is it good? It is great!", []string{"Is it good?", "It is great!"}, "Question and exclamation"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, err := Sentences(tt.text)
			if err != nil {
				t.Fatalf("Sentences: %v", err)
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %d sentences, got %d: %q", len(tt.expected), len(got), got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Sentence %d: expected %q, got %q", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestSentenceLevelSentiment(t *testing.T) {
	sentences, err := Sentences("I love the design. The quality is terrible though. Overall, it's a table.")
	if err != nil {
		t.Fatalf("Sentences: %v", err)
	}

	results := AnalyzeBatch(sentences)
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	if results[0].Sentiment != Positive {
		t.Errorf("First sentence should be positive, got %s", results[0].Sentiment)
	}
	if results[1].Sentiment != Negative {
		t.Errorf("Second sentence should be negative, got %s", results[1].Sentiment)
	}
	if results[2].Sentiment != Neutral {
		t.Errorf("Third sentence should be neutral, got %s", results[2].Sentiment)
	}
}
