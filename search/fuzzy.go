package search

import (
	"strings"
	"unicode/utf8"
)

const (
	exactScore      = 100
	substringScore  = 80
	maxFuzzyScore   = 95
	wordPrefixBonus = 15
	wordInfixBonus  = 5
	acronymBonus    = 20
)

// Score rates how well text matches query, case-insensitively.
//
// An exact match scores 100 and a substring match 80. Anything else gets a
// fuzzy score capped at 95: characters of query found in order in text earn
// more the earlier they sit in query, words starting with or containing the
// query add a bonus, and so does an acronym built from the first letter of
// each word.
func Score(text, query string) float64 {
	t := strings.ToLower(text)
	q := strings.ToLower(query)

	if t == q {
		return exactScore
	}
	if strings.Contains(t, q) {
		return substringScore
	}
	return float64(fuzzyScore(t, q))
}

// fuzzyScore expects lower-cased input.
func fuzzyScore(text, query string) int {
	q := []rune(query)
	score := 0

	qi := 0
	for _, r := range text {
		if qi == len(q) {
			break
		}
		if r == q[qi] {
			score += (len(q) - qi) * 2
			qi++
		}
	}

	var initials strings.Builder
	for _, word := range strings.Fields(text) {
		if strings.HasPrefix(word, query) {
			score += wordPrefixBonus
		} else if strings.Contains(word, query) {
			score += wordInfixBonus
		}
		first, _ := utf8.DecodeRuneInString(word)
		initials.WriteRune(first)
	}
	if strings.Contains(initials.String(), query) {
		score += acronymBonus
	}

	return min(score, maxFuzzyScore)
}
