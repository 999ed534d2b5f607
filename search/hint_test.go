package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosestAcronym(t *testing.T) {
	corpus := testCorpus()

	t.Run("typo finds acronym", func(t *testing.T) {
		acronym, ok := ClosestAcronym("cisp", corpus, DefaultHintSimilarity)
		assert.True(t, ok)
		assert.Equal(t, "CISSP", acronym)
	})

	t.Run("nothing similar", func(t *testing.T) {
		_, ok := ClosestAcronym("zzzzzz", corpus, DefaultHintSimilarity)
		assert.False(t, ok)
	})

	t.Run("blank query", func(t *testing.T) {
		_, ok := ClosestAcronym("  ", corpus, DefaultHintSimilarity)
		assert.False(t, ok)
	})

	t.Run("empty corpus", func(t *testing.T) {
		_, ok := ClosestAcronym("cka", nil, DefaultHintSimilarity)
		assert.False(t, ok)
	})
}
