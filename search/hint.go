package search

import (
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/poiesic/certsearch/core"
)

// DefaultHintSimilarity is the minimum Jaro-Winkler similarity for a
// "did you mean" hint.
const DefaultHintSimilarity = 0.8

// ClosestAcronym finds the record acronym most similar to query, for use as
// a "did you mean" hint when a search comes back empty. It reports false
// when no acronym reaches minSimilarity. Ties go to the earlier record.
func ClosestAcronym(query string, corpus []core.Record, minSimilarity float32) (string, bool) {
	q := NormalizeQuery(query)
	if q == "" {
		return "", false
	}

	best := ""
	bestScore := float32(-1)
	for i := range corpus {
		acronym := corpus[i].Acronym
		if acronym == "" {
			continue
		}
		similarity, err := edlib.StringsSimilarity(q, strings.ToLower(acronym), edlib.JaroWinkler)
		if err != nil {
			continue
		}
		if similarity > bestScore {
			best, bestScore = acronym, similarity
		}
	}
	if best == "" || bestScore < minSimilarity {
		return "", false
	}
	return best, true
}
