package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeQuery folds a raw query into the form the engine scores:
// NFKC-normalized, lower-cased, with runs of whitespace collapsed and the
// ends trimmed.
func NormalizeQuery(query string) string {
	q := norm.NFKC.String(query)
	q = strings.Join(strings.Fields(q), " ")
	return strings.ToLower(q)
}

// Span is a half-open byte range [Start, End) of a highlighted match.
type Span struct {
	Start int
	End   int
}

// HighlightSpans returns the non-overlapping, case-insensitive literal
// occurrences of query in text, left to right. Offsets index text in bytes.
func HighlightSpans(text, query string) []Span {
	q := lowerRunes(strings.TrimSpace(query))
	if len(q) == 0 {
		return nil
	}

	runes := make([]rune, 0, len(text))
	offsets := make([]int, 0, len(text)+1)
	for i, r := range text {
		runes = append(runes, unicode.ToLower(r))
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))

	var spans []Span
	for i := 0; i+len(q) <= len(runes); {
		if runesEqual(runes[i:i+len(q)], q) {
			spans = append(spans, Span{Start: offsets[i], End: offsets[i+len(q)]})
			i += len(q)
			continue
		}
		i++
	}
	return spans
}

// Highlight wraps every match of query in text with open and close.
// text is returned unchanged when nothing matches.
func Highlight(text, query, open, close string) string {
	spans := HighlightSpans(text, query)
	if len(spans) == 0 {
		return text
	}

	var sb strings.Builder
	last := 0
	for _, s := range spans {
		sb.WriteString(text[last:s.Start])
		sb.WriteString(open)
		sb.WriteString(text[s.Start:s.End])
		sb.WriteString(close)
		last = s.End
	}
	sb.WriteString(text[last:])
	return sb.String()
}

func lowerRunes(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
