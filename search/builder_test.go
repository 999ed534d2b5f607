package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poiesic/certsearch/core"
)

func mapTranslator(messages map[string]string) core.TranslateFunc {
	return func(key string) string {
		if msg, ok := messages[key]; ok {
			return msg
		}
		return key
	}
}

func TestBuilder_Build(t *testing.T) {
	corpus := testCorpus()
	builder := Builder{
		Translate: mapTranslator(map[string]string{
			"certifications.aws-ccp.description": "Foundational AWS knowledge.",
			"categories.cloud-native":            "Cloud Native",
		}),
		Categories: testCategories(),
	}

	t.Run("plain record", func(t *testing.T) {
		s := builder.Build(&corpus[0], 100, core.MatchExact)
		assert.Equal(t, core.Suggestion{
			ID:          "cka",
			Title:       "CKA - Certified Kubernetes Administrator",
			Description: "Administer production Kubernetes clusters.",
			URL:         "/certifications/cka",
			Score:       100,
			MatchType:   core.MatchExact,
			Category:    "Cloud Native",
			Level:       core.LevelIntermediate,
			Tags:        []string{"intermediate", "cloud-native", "certification"},
		}, s)
	})

	t.Run("description key is translated", func(t *testing.T) {
		s := builder.Build(&corpus[3], 80, core.MatchPartial)
		assert.Equal(t, "Foundational AWS knowledge.", s.Description)
		assert.Equal(t, "Cloud", s.Category)
	})

	t.Run("plain description is not translated", func(t *testing.T) {
		b := builder
		b.Translate = func(string) string { return "translated" }
		s := b.Build(&core.Record{ID: "x", Description: "Plain text."}, 50, core.MatchFuzzy)
		assert.Equal(t, "Plain text.", s.Description)
	})

	t.Run("custom key prefix", func(t *testing.T) {
		b := builder
		b.KeyPrefix = "zert."
		b.Translate = mapTranslator(map[string]string{"zert.x": "Übersetzt"})
		s := b.Build(&core.Record{ID: "x", Description: "zert.x"}, 50, core.MatchFuzzy)
		assert.Equal(t, "Übersetzt", s.Description)
	})

	t.Run("unknown category", func(t *testing.T) {
		s := builder.Build(&corpus[8], 42, core.MatchFuzzy)
		assert.Empty(t, s.Category)
		assert.Equal(t, []string{"advanced", "", "certification"}, s.Tags)
	})

	t.Run("missing level keeps its tag slot", func(t *testing.T) {
		s := builder.Build(&core.Record{ID: "cissp", Acronym: "CISSP"}, 42, core.MatchFuzzy)
		assert.Equal(t, []string{"", "security", "certification"}, s.Tags)
		assert.Len(t, s.Tags, 3)
	})

	t.Run("zero builder", func(t *testing.T) {
		s := Builder{}.Build(&corpus[3], 80, core.MatchPartial)
		assert.Equal(t, "certifications.aws-ccp.description", s.Description)
		assert.Empty(t, s.Category)
		assert.Equal(t, "/certifications/aws-ccp", s.URL)
	})
}

func TestBuilder_URL(t *testing.T) {
	tests := []struct {
		name     string
		builder  Builder
		id       string
		expected string
	}{
		{"default base path", Builder{}, "cka", "/certifications/cka"},
		{"language segment", Builder{Language: "de"}, "cka", "/de/certifications/cka"},
		{"custom base path", Builder{Language: "de", BasePath: "zertifikate"}, "aws-saa", "/de/zertifikate/aws-saa"},
		{"id is slugged", Builder{}, "AWS Solutions Architect", "/certifications/aws-solutions-architect"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.builder.URL(tt.id))
		})
	}
}

func TestLooksLikeKey(t *testing.T) {
	assert.True(t, looksLikeKey("categories.cloud"))
	assert.False(t, looksLikeKey("Cloud"))
	assert.False(t, looksLikeKey("Cloud & Infra. Ops"))
}
