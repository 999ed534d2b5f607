package search

import (
	"unicode/utf8"

	"github.com/poiesic/certsearch/core"
)

// Environment carries everything Suggest needs besides the query and corpus.
// The zero value is usable: default semantic map, default builder settings
// and core.MaxSuggestions results.
type Environment struct {
	Semantics *SemanticMap
	Builder   Builder
	Limit     int
}

// Suggest returns up to core.MaxSuggestions suggestions for query over
// corpus. An empty or blank query yields an empty list without evaluating
// any record. The result is a fresh slice; calling Suggest again with the
// same arguments returns an equal list.
func Suggest(query string, corpus []core.Record, env Environment) []core.Suggestion {
	return suggest(query, corpus, env, &noopMonitor{})
}

func suggest(query string, corpus []core.Record, env Environment, monitor SearchMonitor) []core.Suggestion {
	q := NormalizeQuery(query)
	if q == "" {
		return []core.Suggestion{}
	}

	semantics := env.Semantics
	if semantics == nil {
		semantics = DefaultSemanticMap()
	}
	keywords := semantics.Expand(q)
	monitor.AfterExpansion(keywords)

	queryLen := utf8.RuneCountInString(q)
	var candidates []Candidate
	for i := range corpus {
		record := &corpus[i]
		match := Aggregate(record, q, keywords)
		if !Accept(match.Score, queryLen) {
			monitor.Rejected(record, match)
			continue
		}
		monitor.Candidate(record, match)
		candidates = append(candidates, Candidate{
			Record:    record,
			Position:  i,
			RawScore:  match.Score,
			Score:     DisplayScore(match.Score),
			MatchType: match.MatchType,
		})
	}

	ranked := Rank(candidates, env.Limit)
	monitor.AfterRanking(ranked)

	results := make([]core.Suggestion, len(ranked))
	for i, c := range ranked {
		results[i] = env.Builder.Build(c.Record, c.Score, c.MatchType)
		results[i].Query = q
	}
	return results
}
