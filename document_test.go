package lexsent

import (
	"context"
	"errors"
	"testing"
)

func TestNewDocument(t *testing.T) {
	text := "I love the design. The quality is terrible though. It is a table."

	doc, err := NewDocument(text, WithWorkers(2))
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}

	if doc.Overall != Analyze(text) {
		t.Errorf("Expected overall %v, got %v", Analyze(text), doc.Overall)
	}
	if doc.Metadata.LexiconVersion != DefaultLexiconVersion {
		t.Errorf("Expected lexicon version %s, got %s", DefaultLexiconVersion, doc.Metadata.LexiconVersion)
	}

	sentences := doc.Sentences()
	if len(sentences) != 3 || doc.Metadata.SentenceCount != 3 {
		t.Fatalf("Expected 3 sentences, got %d", len(sentences))
	}

	expected := []Sentiment{Positive, Negative, Neutral}
	for i, s := range sentences {
		if s.Sentiment != expected[i] {
			t.Errorf("Sentence %d: expected %s, got %s", i, expected[i], s.Sentiment)
		}
		if text[s.Start:s.End] != s.Text {
			t.Errorf("Sentence %d: offsets [%d:%d] do not match %q", i, s.Start, s.End, s.Text)
		}
	}

	counts := doc.Counts()
	if counts[Positive] != 1 || counts[Negative] != 1 || counts[Neutral] != 1 {
		t.Errorf("Unexpected counts: %v", counts)
	}
}

func TestNewDocumentWithoutSegmentation(t *testing.T) {
	doc, err := NewDocument("excellent. terrible.", WithSegmentation(false))
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}

	if len(doc.Sentences()) != 0 {
		t.Errorf("Expected no sentences, got %d", len(doc.Sentences()))
	}
	if doc.Overall.Sentiment != Neutral {
		t.Errorf("Expected neutral overall, got %s", doc.Overall.Sentiment)
	}
}

func TestNewDocumentCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDocument("excellent", WithContext(ctx))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestNewDocumentCustomAnalyzer(t *testing.T) {
	lex, err := NewLexicon("doc-1", []LexiconEntry{{Word: "rad", Polarity: PositivePolarity, Intensity: Strong}}, nil, nil)
	if err != nil {
		t.Fatalf("NewLexicon: %v", err)
	}

	doc, err := NewDocument("So rad.", WithAnalyzer(NewAnalyzer(UsingLexicon(lex))))
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	if doc.Overall.Sentiment != Positive || doc.Metadata.LexiconVersion != "doc-1" {
		t.Errorf("Expected the custom lexicon to be used, got %v / %s", doc.Overall, doc.Metadata.LexiconVersion)
	}
}
