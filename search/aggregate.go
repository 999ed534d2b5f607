package search

import (
	"strings"

	"github.com/poiesic/certsearch/core"
)

// Field weights applied to the fuzzy score of each record field.
const (
	AcronymWeight     = 3.0
	NameWeight        = 2.5
	DescriptionWeight = 1.5
	LevelWeight       = 2.0
	DomainWeight      = 2.0
)

// Weights applied to fuzzy scores of expanded keywords.
const (
	semanticAcronymWeight = 0.8
	semanticNameWeight    = 0.7
	semanticLevelWeight   = 0.6
	semanticMinScore      = 10
)

// Match is the aggregated relevance of one record for one query.
type Match struct {
	Score     float64
	MatchType core.MatchType
}

// Aggregate scores record against query and its expanded keywords.
// query is expected to be normalized. The score is the best weighted field
// score, raised by any expanded keyword that scores above the semantic floor.
// A keyword hit only turns the match type to semantic when the record would
// otherwise be a fuzzy match.
func Aggregate(record *core.Record, query string, keywords []string) Match {
	q := strings.ToLower(query)
	acronym := strings.ToLower(record.Acronym)
	name := strings.ToLower(record.Name)
	level := string(record.Level)

	score := max(
		AcronymWeight*Score(acronym, q),
		NameWeight*Score(name, q),
		DescriptionWeight*Score(record.Description, q),
		LevelWeight*Score(level, q),
		DomainWeight*domainScore(record.Domains, q),
	)
	matchType := classify(acronym, name, q)

	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if kw == q {
			continue
		}
		sem := max(
			semanticAcronymWeight*Score(acronym, kw),
			semanticNameWeight*Score(name, kw),
			semanticLevelWeight*Score(level, kw),
		)
		if sem <= semanticMinScore {
			continue
		}
		score = max(score, sem)
		if matchType.Priority() < core.MatchSemantic.Priority() {
			matchType = core.MatchSemantic
		}
	}

	return Match{Score: score, MatchType: matchType}
}

// classify expects lower-cased input.
func classify(acronym, name, q string) core.MatchType {
	switch {
	case acronym == q || strings.Contains(name, q):
		return core.MatchExact
	case strings.Contains(acronym, q):
		return core.MatchPartial
	default:
		return core.MatchFuzzy
	}
}

// domainScore is the best score over every domain name and topic name.
func domainScore(domains []core.Domain, q string) float64 {
	best := 0.0
	for _, d := range domains {
		if d.Name != "" {
			best = max(best, Score(d.Name, q))
		}
		for _, t := range d.Topics {
			if t.Name != "" {
				best = max(best, Score(t.Name, q))
			}
		}
	}
	return best
}
