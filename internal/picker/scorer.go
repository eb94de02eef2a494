package picker

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/xrash/smetrics"
)

// Scorer rates how closely candidate matches query on a [0,1] scale.
type Scorer interface {
	Score(query, candidate string) float64
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(query, candidate string) float64

// Score calls f(query, candidate).
func (f ScorerFunc) Score(query, candidate string) float64 {
	return f(query, candidate)
}

// Algorithm names accepted by ScorerFor.
const (
	AlgorithmJaroWinkler = "jaro-winkler"
	AlgorithmLevenshtein = "levenshtein"
)

const (
	jaroWinklerBoostThreshold = 0.7
	jaroWinklerPrefixSize     = 4
)

// Algorithms lists the supported scorer names, default first.
func Algorithms() []string {
	return []string{AlgorithmJaroWinkler, AlgorithmLevenshtein}
}

// ScorerFor resolves a scorer by name. An empty name selects the default.
func ScorerFor(name string) (Scorer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", AlgorithmJaroWinkler, "jw":
		return JaroWinkler{}, nil
	case AlgorithmLevenshtein, "lev":
		return Levenshtein{}, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q (want one of %s)", name, strings.Join(Algorithms(), ", "))
	}
}

// JaroWinkler scores with the Jaro-Winkler similarity, which favours
// candidates sharing a prefix with the query.
type JaroWinkler struct{}

func (JaroWinkler) Score(query, candidate string) float64 {
	q, c := normalize(query), normalize(candidate)
	if q == c {
		return 1
	}
	if q == "" || c == "" {
		return 0
	}
	return clamp(smetrics.JaroWinkler(q, c, jaroWinklerBoostThreshold, jaroWinklerPrefixSize))
}

// Levenshtein scores 1 - distance/longest, so identical strings score 1 and
// strings with nothing in common score 0.
type Levenshtein struct{}

func (Levenshtein) Score(query, candidate string) float64 {
	q, c := normalize(query), normalize(candidate)
	if q == c {
		return 1
	}
	longest := utf8.RuneCountInString(q)
	if n := utf8.RuneCountInString(c); n > longest {
		longest = n
	}
	if longest == 0 {
		return 1
	}
	dist := fuzzy.LevenshteinDistance(q, c)
	return clamp(1 - float64(dist)/float64(longest))
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
