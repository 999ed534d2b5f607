package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand_Default(t *testing.T) {
	t.Run("query comes first", func(t *testing.T) {
		keywords := Expand("CKA")
		require.NotEmpty(t, keywords)
		assert.Equal(t, "cka", keywords[0])
	})

	t.Run("k8s reaches kubernetes", func(t *testing.T) {
		keywords := Expand("k8s")
		assert.Equal(t, "k8s", keywords[0])
		assert.Contains(t, keywords, "kubernetes")
		assert.Contains(t, keywords, "container")
	})

	t.Run("related keyword inside query triggers entry", func(t *testing.T) {
		keywords := Expand("rhcsa exam")
		assert.Contains(t, keywords, "linux")
	})

	t.Run("unrelated query is returned alone", func(t *testing.T) {
		assert.Equal(t, []string{"xyzzy"}, Expand("xyzzy"))
	})

	t.Run("no duplicates", func(t *testing.T) {
		keywords := Expand("kubernetes k8s cloud")
		seen := make(map[string]bool)
		for _, kw := range keywords {
			assert.False(t, seen[kw], "duplicate keyword %q", kw)
			seen[kw] = true
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, Expand("aws security"), Expand("aws security"))
	})
}

func TestDefaultSemanticMap(t *testing.T) {
	m := DefaultSemanticMap()
	assert.Same(t, m, DefaultSemanticMap())
	assert.Positive(t, m.Len())
}

func TestSemanticMap(t *testing.T) {
	m := NewSemanticMap([]SemanticEntry{
		{Trigger: "Alpha", Related: []string{"one", "Two", " "}},
		{Trigger: "beta", Related: []string{"two", "three"}},
		{Trigger: " ", Related: nil},
	})

	t.Run("blank terms are dropped", func(t *testing.T) {
		entries := m.Entries()
		require.Len(t, entries, 2)
		assert.Equal(t, SemanticEntry{Trigger: "alpha", Related: []string{"one", "two"}}, entries[0])
	})

	t.Run("first-seen order across entries", func(t *testing.T) {
		assert.Equal(t, []string{"alpha beta", "one", "two", "three"}, m.Expand("Alpha Beta"))
	})

	t.Run("matched through related keyword", func(t *testing.T) {
		assert.Equal(t, []string{"three", "two"}, m.Expand("three"))
	})

	t.Run("entries are copies", func(t *testing.T) {
		entries := m.Entries()
		entries[0].Related[0] = "changed"
		assert.Equal(t, "one", m.Entries()[0].Related[0])
	})

	t.Run("input is not retained", func(t *testing.T) {
		input := []SemanticEntry{{Trigger: "gamma", Related: []string{"delta"}}}
		sm := NewSemanticMap(input)
		input[0].Related[0] = "epsilon"
		assert.Equal(t, []string{"gamma", "delta"}, sm.Expand("gamma"))
	})
}
