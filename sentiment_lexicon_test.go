package lexsent

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLexiconOperations(t *testing.T) {
	lexicon := DefaultLexicon()

	if lexicon.Version() != DefaultLexiconVersion {
		t.Errorf("Expected version %s, got %s", DefaultLexiconVersion, lexicon.Version())
	}
	if lexicon.Size() != 67 {
		t.Errorf("Expected 67 words, got %d", lexicon.Size())
	}

	tests := []struct {
		word      string
		polarity  Polarity
		intensity Intensity
		weight    int
	}{
		{"excellent", PositivePolarity, Strong, 3},
		{"Good", PositivePolarity, Medium, 2},
		{"fine", PositivePolarity, Mild, 1},
		{"terrible", NegativePolarity, Strong, 3},
		{"bad", NegativePolarity, Medium, 2},
		{"boring", NegativePolarity, Mild, 1},
	}

	for _, tt := range tests {
		entry, ok := lexicon.Lookup(tt.word)
		if !ok {
			t.Errorf("Word %q: not found", tt.word)
			continue
		}
		if entry.Polarity != tt.polarity || entry.Intensity != tt.intensity || entry.Weight() != tt.weight {
			t.Errorf("Word %q: expected %s/%s/%d, got %s/%s/%d", tt.word,
				tt.polarity, tt.intensity, tt.weight, entry.Polarity, entry.Intensity, entry.Weight())
		}
	}

	if _, ok := lexicon.Lookup("unknown_word"); ok {
		t.Error("Expected unknown_word to be missing")
	}

	for _, neg := range []string{"not", "no", "never", "neither", "nobody", "nothing"} {
		if !lexicon.IsNegation(neg) {
			t.Errorf("Expected %q to be recognized as negation", neg)
		}
	}
	if lexicon.IsNegation("without") {
		t.Error("Did not expect without to be a negation")
	}

	if len(lexicon.Phrases()) != 14 {
		t.Errorf("Expected 14 phrases, got %d", len(lexicon.Phrases()))
	}
}

func TestLexiconAccessorsReturnCopies(t *testing.T) {
	lexicon := DefaultLexicon()

	words := lexicon.Words()
	words[0].Word = "mutated"
	if lexicon.Words()[0].Word == "mutated" {
		t.Error("Words must not expose internal storage")
	}

	phrases := lexicon.Phrases()
	phrases[0].Phrase = "mutated"
	if lexicon.Phrases()[0].Phrase == "mutated" {
		t.Error("Phrases must not expose internal storage")
	}
}

func TestNegatableWords(t *testing.T) {
	lexicon := DefaultLexicon()

	for _, w := range lexicon.negatable {
		entry, _ := lexicon.Lookup(w)
		if entry.Polarity != PositivePolarity || entry.Intensity == Mild {
			t.Errorf("Word %q should not be subject to negation", w)
		}
	}
	if len(lexicon.negatable) != 25 {
		t.Errorf("Expected 25 strong and medium positive words, got %d", len(lexicon.negatable))
	}
}

func TestLexiconJSON(t *testing.T) {
	data, err := json.Marshal(DefaultLexicon())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	parsed, err := ParseLexicon(data)
	if err != nil {
		t.Fatalf("ParseLexicon: %v", err)
	}

	if !reflect.DeepEqual(parsed.Words(), DefaultLexicon().Words()) {
		t.Error("Words changed after JSON encoding")
	}
	if !reflect.DeepEqual(parsed.Phrases(), DefaultLexicon().Phrases()) {
		t.Error("Phrases changed after JSON encoding")
	}
	if !reflect.DeepEqual(parsed.Negations(), DefaultLexicon().Negations()) {
		t.Errorf("Negations changed: %v", parsed.Negations())
	}
}

func TestLoadLexicon(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.json")
	content := `{
		"version": "custom-2",
		"positive": {"strong": ["Stellar"]},
		"negative": {"mild": ["meh"]},
		"phrases": {"negative": ["Not Great"]},
		"negations": ["not", "ain't"]
	}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	lex, err := LoadLexicon(path)
	if err != nil {
		t.Fatalf("LoadLexicon: %v", err)
	}

	if lex.Version() != "custom-2" {
		t.Errorf("Expected version custom-2, got %s", lex.Version())
	}
	if _, ok := lex.Lookup("stellar"); !ok {
		t.Error("Expected words to be lowercased")
	}
	if got := lex.Phrases()[0].Phrase; got != "not great" {
		t.Errorf("Expected lowercased phrase, got %q", got)
	}
	if got := lex.Negations(); !reflect.DeepEqual(got, []string{"not", "ain't"}) {
		t.Errorf("Expected built-in negations first then extras, got %v", got)
	}

	if _, err := LoadLexicon(filepath.Join(dir, "missing.json")); err == nil ||
		!strings.Contains(err.Error(), "error reading lexicon file") {
		t.Errorf("Expected read error, got %v", err)
	}
}

func TestNewLexiconErrors(t *testing.T) {
	good := LexiconEntry{Word: "good", Polarity: PositivePolarity, Intensity: Medium}

	tests := []struct {
		version string
		words   []LexiconEntry
		phrases []PhraseEntry
		errPart string
		desc    string
	}{
		{"", nil, nil, "version", "Missing version"},
		{"v", []LexiconEntry{{Word: " "}}, nil, "empty", "Empty word"},
		{"v", []LexiconEntry{{Word: "two words", Polarity: PositivePolarity, Intensity: Mild}}, nil, "whitespace", "Word with space"},
		{"v", []LexiconEntry{good, {Word: "GOOD", Polarity: PositivePolarity, Intensity: Strong}}, nil, "duplicate", "Duplicate word"},
		{"v", []LexiconEntry{{Word: "meh", Polarity: "sideways", Intensity: Mild}}, nil, "polarity", "Bad polarity"},
		{"v", []LexiconEntry{{Word: "meh", Polarity: NegativePolarity, Intensity: "huge"}}, nil, "intensity", "Bad intensity"},
		{"v", nil, []PhraseEntry{{Phrase: ""}}, "empty", "Empty phrase"},
		{"v", nil, []PhraseEntry{{Phrase: "a b", Polarity: PositivePolarity}, {Phrase: "A B", Polarity: PositivePolarity}}, "duplicate", "Duplicate phrase"},
		{"v", nil, []PhraseEntry{{Phrase: "a b", Polarity: "up"}}, "polarity", "Bad phrase polarity"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := NewLexicon(tt.version, tt.words, tt.phrases, nil)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("Expected error containing %q, got %v", tt.errPart, err)
			}
		})
	}
}

func TestParseLexiconInvalid(t *testing.T) {
	if _, err := ParseLexicon([]byte("{")); err == nil {
		t.Error("Expected a JSON error")
	}
	if _, err := ParseLexicon([]byte(`{"positive": {"strong": ["x"]}}`)); err == nil {
		t.Error("Expected a missing version error")
	}
}

func BenchmarkLexiconLookup(b *testing.B) {
	lexicon := DefaultLexicon()
	words := []string{"good", "bad", "excellent", "terrible", "amazing", "awful"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = lexicon.Lookup(words[i%len(words)])
	}
}
