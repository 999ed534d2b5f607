package search

import (
	"cmp"
	"math"
	"slices"

	"github.com/poiesic/certsearch/core"
)

// Acceptance thresholds by normalized query length in runes.
const (
	singleRuneThreshold = 40
	twoRuneThreshold    = 25
	defaultThreshold    = 15
)

// Candidate is a record that passed the acceptance threshold.
type Candidate struct {
	Record    *core.Record
	Position  int // index in the corpus
	RawScore  float64
	Score     int // display score, 0..100
	MatchType core.MatchType
}

// Threshold returns the minimum score a record must exceed for a query of
// queryLen runes. Short queries need a stronger match.
func Threshold(queryLen int) float64 {
	switch {
	case queryLen <= 1:
		return singleRuneThreshold
	case queryLen == 2:
		return twoRuneThreshold
	default:
		return defaultThreshold
	}
}

// Accept reports whether score clears the threshold for queryLen.
func Accept(score float64, queryLen int) bool {
	return score > Threshold(queryLen)
}

// DisplayScore converts a raw aggregate score into the 0..100 integer
// reported on a suggestion.
func DisplayScore(raw float64) int {
	return int(math.Round(min(max(raw, 0), 100)))
}

// Rank orders candidates by score, then match type priority, then corpus
// position, and keeps at most limit of them. A limit outside
// 1..core.MaxSuggestions is treated as core.MaxSuggestions.
// The input slice is not modified.
func Rank(candidates []Candidate, limit int) []Candidate {
	if limit <= 0 || limit > core.MaxSuggestions {
		limit = core.MaxSuggestions
	}
	ranked := slices.Clone(candidates)
	slices.SortStableFunc(ranked, compareCandidates)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func compareCandidates(a, b Candidate) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if c := cmp.Compare(b.MatchType.Priority(), a.MatchType.Priority()); c != 0 {
		return c
	}
	return cmp.Compare(a.Position, b.Position)
}
