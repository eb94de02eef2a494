package picker

import (
	"sort"
	"strings"
)

// DefaultThreshold is the minimum score a candidate needs to stay visible.
const DefaultThreshold = 0.9

// Match is a candidate that survived filtering.
type Match struct {
	Text  string
	Index int // position in the candidate set
	Score float64
}

// Filter turns a query and a candidate set into the visible list.
type Filter struct {
	scorer    Scorer
	threshold float64
	limit     int
}

// FilterOption customises a Filter.
type FilterOption func(*Filter)

// WithScorer replaces the default Jaro-Winkler scorer.
func WithScorer(s Scorer) FilterOption {
	return func(f *Filter) {
		if s != nil {
			f.scorer = s
		}
	}
}

// WithThreshold sets the minimum accepted score.
func WithThreshold(threshold float64) FilterOption {
	return func(f *Filter) {
		f.threshold = threshold
	}
}

// WithLimit caps the number of ranked results. Zero or less means no cap.
func WithLimit(limit int) FilterOption {
	return func(f *Filter) {
		if limit < 0 {
			limit = 0
		}
		f.limit = limit
	}
}

// NewFilter builds a Filter using DefaultThreshold and the Jaro-Winkler scorer
// unless overridden.
func NewFilter(opts ...FilterOption) *Filter {
	f := &Filter{scorer: JaroWinkler{}, threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Threshold returns the minimum accepted score.
func (f *Filter) Threshold() float64 {
	return f.threshold
}

// Rank scores candidates against query. A blank query returns every
// candidate in its original order with a score of 1. Otherwise only
// candidates scoring at least the threshold are returned, best first; equal
// scores keep their candidate-set order. candidates is never modified.
func (f *Filter) Rank(query string, candidates []string) []Match {
	if strings.TrimSpace(query) == "" {
		all := make([]Match, len(candidates))
		for i, c := range candidates {
			all[i] = Match{Text: c, Index: i, Score: 1}
		}
		return all
	}
	matches := make([]Match, 0, len(candidates))
	for i, c := range candidates {
		score := f.scorer.Score(query, c)
		if score >= f.threshold {
			matches = append(matches, Match{Text: c, Index: i, Score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if f.limit > 0 && len(matches) > f.limit {
		matches = matches[:f.limit]
	}
	return matches
}

// Apply is Rank reduced to the matching strings.
func (f *Filter) Apply(query string, candidates []string) []string {
	return Texts(f.Rank(query, candidates))
}

// Texts extracts the candidate strings from matches.
func Texts(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Text
	}
	return out
}

var defaultFilter = NewFilter()

// Apply filters candidates with the default Filter.
func Apply(query string, candidates []string) []string {
	return defaultFilter.Apply(query, candidates)
}
