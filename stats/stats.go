// Package stats summarizes a set of analyzed records.
package stats

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/bbalet/stopwords"
	"gonum.org/v1/gonum/stat"

	"github.com/tsawler/lexsent"
	"github.com/tsawler/lexsent/session"
)

// Term is a word and the number of times it occurs across all records.
type Term struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Summary holds aggregate figures for a set of records.
type Summary struct {
	Total    int `json:"total"`
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`

	MeanConfidence   float64 `json:"mean_confidence"`
	StdDevConfidence float64 `json:"stddev_confidence"`

	TopTerms []Term `json:"top_terms,omitempty"`
}

// Summarize counts labels, computes the mean and sample standard deviation of
// confidence, and collects the topN most frequent non-stop words. topN <= 0
// skips term counting.
func Summarize(records []session.Record, topN int) Summary {
	s := Summary{Total: len(records)}
	if len(records) == 0 {
		return s
	}

	conf := make([]float64, len(records))
	for i, r := range records {
		switch r.Sentiment {
		case lexsent.Positive:
			s.Positive++
		case lexsent.Negative:
			s.Negative++
		default:
			s.Neutral++
		}
		conf[i] = r.Confidence
	}

	if len(conf) > 1 {
		s.MeanConfidence, s.StdDevConfidence = stat.MeanStdDev(conf, nil)
	} else {
		s.MeanConfidence = stat.Mean(conf, nil)
	}

	if topN > 0 {
		s.TopTerms = topTerms(records, topN)
	}
	return s
}

// Percent returns the share of records with the given label, in the range
// 0 to 100.
func (s Summary) Percent(label lexsent.Sentiment) float64 {
	if s.Total == 0 {
		return 0
	}
	var n int
	switch label {
	case lexsent.Positive:
		n = s.Positive
	case lexsent.Negative:
		n = s.Negative
	case lexsent.Neutral:
		n = s.Neutral
	}
	return float64(n) * 100 / float64(s.Total)
}

// String renders the summary with percentages to one decimal and confidence
// to two.
func (s Summary) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Total: %d\n", s.Total)
	fmt.Fprintf(&b, "Positive: %d (%.1f%%)\n", s.Positive, s.Percent(lexsent.Positive))
	fmt.Fprintf(&b, "Negative: %d (%.1f%%)\n", s.Negative, s.Percent(lexsent.Negative))
	fmt.Fprintf(&b, "Neutral: %d (%.1f%%)\n", s.Neutral, s.Percent(lexsent.Neutral))
	fmt.Fprintf(&b, "Average confidence: %.2f (stddev %.2f)\n", s.MeanConfidence, s.StdDevConfidence)

	if len(s.TopTerms) > 0 {
		terms := make([]string, len(s.TopTerms))
		for i, t := range s.TopTerms {
			terms[i] = fmt.Sprintf("%s (%d)", t.Term, t.Count)
		}
		fmt.Fprintf(&b, "Top terms: %s\n", strings.Join(terms, ", "))
	}

	return b.String()
}

func topTerms(records []session.Record, n int) []Term {
	counts := make(map[string]int)
	for _, r := range records {
		for _, w := range strings.Fields(stopwords.CleanString(r.Text, "en", false)) {
			counts[w]++
		}
	}

	terms := make([]Term, 0, len(counts))
	for w, c := range counts {
		terms = append(terms, Term{Term: w, Count: c})
	}
	slices.SortFunc(terms, func(a, b Term) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Term, b.Term)
	})

	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}
