package lexsent

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"
	"sync"
)

// DefaultLexiconVersion identifies the built-in vocabulary. Results are only
// reproducible for a given text and lexicon version.
const DefaultLexiconVersion = "2024.1"

// phraseWeight is the fixed contribution of a matched phrase.
const phraseWeight = 2

// Lexicon holds sentiment words, phrases and negations. A Lexicon is
// immutable after construction and safe to share between goroutines.
type Lexicon struct {
	version   string
	words     []LexiconEntry
	patterns  []*regexp.Regexp // patterns[i] matches words[i]
	negatable []string         // strong and medium positive words
	phrases   []PhraseEntry
	negations map[string]bool
}

// LexiconEntry represents a word's sentiment information.
type LexiconEntry struct {
	Word      string
	Polarity  Polarity
	Intensity Intensity
}

// Weight returns the entry's intensity weight.
func (e LexiconEntry) Weight() int {
	return e.Intensity.Weight()
}

// PhraseEntry represents a fixed phrase pattern.
type PhraseEntry struct {
	Phrase   string
	Polarity Polarity
}

// Weight returns the phrase's contribution, which is the same for every phrase.
func (e PhraseEntry) Weight() int {
	return phraseWeight
}

// ExternalLexicon represents the JSON structure for lexicon files.
type ExternalLexicon struct {
	Version   string          `json:"version"`
	Positive  IntensityGroups `json:"positive"`
	Negative  IntensityGroups `json:"negative"`
	Phrases   PhraseGroups    `json:"phrases"`
	Negations []string        `json:"negations"`
}

// IntensityGroups lists words by intensity.
type IntensityGroups struct {
	Strong []string `json:"strong,omitempty"`
	Medium []string `json:"medium,omitempty"`
	Mild   []string `json:"mild,omitempty"`
}

// PhraseGroups lists phrases by polarity.
type PhraseGroups struct {
	Positive []string `json:"positive,omitempty"`
	Negative []string `json:"negative,omitempty"`
}

var defaultLexicon = sync.OnceValue(func() *Lexicon {
	lex, err := fromExternal(englishLexicon())
	if err != nil {
		panic(fmt.Sprintf("lexsent: invalid built-in lexicon: %v", err))
	}
	return lex
})

// DefaultLexicon returns the built-in English lexicon. It is built on first
// use and shared by every caller.
func DefaultLexicon() *Lexicon {
	return defaultLexicon()
}

// NewLexicon builds a lexicon from explicit entries. Words and phrases are
// lowercased; duplicates and malformed entries are rejected.
func NewLexicon(version string, words []LexiconEntry, phrases []PhraseEntry, negations []string) (*Lexicon, error) {
	if strings.TrimSpace(version) == "" {
		return nil, errors.New("lexicon version is required")
	}

	lex := &Lexicon{
		version:   version,
		words:     make([]LexiconEntry, 0, len(words)),
		patterns:  make([]*regexp.Regexp, 0, len(words)),
		negations: make(map[string]bool, len(negations)),
	}

	seen := make(map[string]bool, len(words))
	for _, entry := range words {
		word := strings.ToLower(strings.TrimSpace(entry.Word))
		if word == "" {
			return nil, errors.New("lexicon word must not be empty")
		}
		if strings.ContainsFunc(word, isSpace) {
			return nil, fmt.Errorf("lexicon word %q must not contain whitespace", word)
		}
		if seen[word] {
			return nil, fmt.Errorf("duplicate lexicon word %q", word)
		}
		if entry.Polarity != PositivePolarity && entry.Polarity != NegativePolarity {
			return nil, fmt.Errorf("word %q: unknown polarity %q", word, entry.Polarity)
		}
		if entry.Intensity.Weight() == 0 {
			return nil, fmt.Errorf("word %q: unknown intensity %q", word, entry.Intensity)
		}
		seen[word] = true

		entry.Word = word
		lex.words = append(lex.words, entry)
		lex.patterns = append(lex.patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(word)+`\b`))
		if entry.Polarity == PositivePolarity && entry.Intensity != Mild {
			lex.negatable = append(lex.negatable, word)
		}
	}

	seenPhrase := make(map[string]bool, len(phrases))
	for _, entry := range phrases {
		phrase := strings.ToLower(strings.TrimSpace(entry.Phrase))
		if phrase == "" {
			return nil, errors.New("lexicon phrase must not be empty")
		}
		if seenPhrase[phrase] {
			return nil, fmt.Errorf("duplicate lexicon phrase %q", phrase)
		}
		if entry.Polarity != PositivePolarity && entry.Polarity != NegativePolarity {
			return nil, fmt.Errorf("phrase %q: unknown polarity %q", phrase, entry.Polarity)
		}
		seenPhrase[phrase] = true
		entry.Phrase = phrase
		lex.phrases = append(lex.phrases, entry)
	}

	for _, neg := range negations {
		neg = strings.ToLower(strings.TrimSpace(neg))
		if neg == "" {
			continue
		}
		lex.negations[neg] = true
	}

	return lex, nil
}

// LoadLexicon reads a lexicon from a JSON file in the format produced by
// MarshalJSON.
func LoadLexicon(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading lexicon file: %w", err)
	}
	return ParseLexicon(data)
}

// ParseLexicon decodes a JSON lexicon.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var external ExternalLexicon
	if err := json.Unmarshal(data, &external); err != nil {
		return nil, fmt.Errorf("error parsing lexicon JSON: %w", err)
	}
	lex, err := fromExternal(external)
	if err != nil {
		return nil, fmt.Errorf("invalid lexicon: %w", err)
	}
	return lex, nil
}

// fromExternal converts the grouped JSON form into a Lexicon.
func fromExternal(ext ExternalLexicon) (*Lexicon, error) {
	var words []LexiconEntry
	add := func(pol Polarity, groups IntensityGroups) {
		for _, g := range []struct {
			intensity Intensity
			words     []string
		}{
			{Strong, groups.Strong},
			{Medium, groups.Medium},
			{Mild, groups.Mild},
		} {
			for _, w := range g.words {
				words = append(words, LexiconEntry{Word: w, Polarity: pol, Intensity: g.intensity})
			}
		}
	}
	add(PositivePolarity, ext.Positive)
	add(NegativePolarity, ext.Negative)

	var phrases []PhraseEntry
	for _, p := range ext.Phrases.Positive {
		phrases = append(phrases, PhraseEntry{Phrase: p, Polarity: PositivePolarity})
	}
	for _, p := range ext.Phrases.Negative {
		phrases = append(phrases, PhraseEntry{Phrase: p, Polarity: NegativePolarity})
	}

	return NewLexicon(ext.Version, words, phrases, ext.Negations)
}

// MarshalJSON encodes the lexicon in the grouped form read by ParseLexicon.
func (lex *Lexicon) MarshalJSON() ([]byte, error) {
	ext := ExternalLexicon{
		Version:   lex.version,
		Negations: lex.Negations(),
	}
	for _, e := range lex.words {
		groups := &ext.Positive
		if e.Polarity == NegativePolarity {
			groups = &ext.Negative
		}
		switch e.Intensity {
		case Strong:
			groups.Strong = append(groups.Strong, e.Word)
		case Medium:
			groups.Medium = append(groups.Medium, e.Word)
		case Mild:
			groups.Mild = append(groups.Mild, e.Word)
		}
	}
	for _, p := range lex.phrases {
		if p.Polarity == PositivePolarity {
			ext.Phrases.Positive = append(ext.Phrases.Positive, p.Phrase)
		} else {
			ext.Phrases.Negative = append(ext.Phrases.Negative, p.Phrase)
		}
	}
	return json.Marshal(ext)
}

// Version returns the lexicon version string.
func (lex *Lexicon) Version() string {
	return lex.version
}

// Words returns a copy of the word entries in definition order.
func (lex *Lexicon) Words() []LexiconEntry {
	return append([]LexiconEntry(nil), lex.words...)
}

// Phrases returns a copy of the phrase entries in definition order.
func (lex *Lexicon) Phrases() []PhraseEntry {
	return append([]PhraseEntry(nil), lex.phrases...)
}

// Negations returns the negation tokens in definition order of the built-in
// set, followed by any others sorted alphabetically.
func (lex *Lexicon) Negations() []string {
	out := make([]string, 0, len(lex.negations))
	for _, n := range englishNegations {
		if lex.negations[n] {
			out = append(out, n)
		}
	}
	var extra []string
	for n := range lex.negations {
		if !slices.Contains(englishNegations, n) {
			extra = append(extra, n)
		}
	}
	slices.Sort(extra)
	return append(out, extra...)
}

// IsNegation checks if a lowercased token is a negation.
func (lex *Lexicon) IsNegation(token string) bool {
	return lex.negations[token]
}

// Lookup returns the entry for a word, if present.
func (lex *Lexicon) Lookup(word string) (LexiconEntry, bool) {
	word = strings.ToLower(word)
	for _, e := range lex.words {
		if e.Word == word {
			return e, true
		}
	}
	return LexiconEntry{}, false
}

// Size returns the number of words in the lexicon.
func (lex *Lexicon) Size() int {
	return len(lex.words)
}

var englishNegations = []string{"not", "no", "never", "neither", "nobody", "nothing"}

// englishLexicon is the built-in vocabulary.
func englishLexicon() ExternalLexicon {
	return ExternalLexicon{
		Version: DefaultLexiconVersion,
		Positive: IntensityGroups{
			Strong: []string{
				"excellent", "amazing", "outstanding", "fantastic", "incredible", "wonderful",
				"brilliant", "perfect", "exceptional", "magnificent", "superb", "marvelous",
			},
			Medium: []string{
				"good", "great", "nice", "happy", "love", "like", "enjoy", "pleased", "glad",
				"awesome", "beautiful", "delightful", "exciting",
			},
			Mild: []string{
				"okay", "fine", "decent", "alright", "satisfactory", "acceptable", "pleasant",
				"comfortable", "appreciate",
			},
		},
		Negative: IntensityGroups{
			Strong: []string{
				"terrible", "horrible", "awful", "disgusting", "dreadful", "atrocious",
				"abysmal", "appalling", "worst", "hate", "despise", "furious",
			},
			Medium: []string{
				"bad", "poor", "disappointing", "unfortunate", "sad", "upset", "angry",
				"frustrated", "annoyed", "useless", "waste",
			},
			Mild: []string{
				"dislike", "meh", "underwhelming", "lacking", "mediocre", "subpar", "boring",
				"dull", "concern", "worried",
			},
		},
		Phrases: PhraseGroups{
			Positive: []string{
				"well done", "thank you", "thanks", "looking forward", "can't wait",
				"so happy", "very good",
			},
			Negative: []string{
				"not good", "no good", "don't like", "never again", "waste of time",
				"very bad", "so sad",
			},
		},
		Negations: englishNegations,
	}
}
