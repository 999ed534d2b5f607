package search

import (
	"path"
	"strings"
	"unicode"

	"github.com/gosimple/slug"

	"github.com/poiesic/certsearch/core"
)

const (
	// DefaultBasePath is the URL segment certification pages live under.
	DefaultBasePath = "certifications"
	// DefaultKeyPrefix marks descriptions that are translation keys.
	DefaultKeyPrefix = "certifications."
	// CertificationTag is attached to every suggestion.
	CertificationTag = "certification"
)

// Builder turns ranked records into display-ready suggestions.
// The zero value uses identity translation, no categories, no language
// segment and the default base path and key prefix.
type Builder struct {
	Translate  core.TranslateFunc
	Categories core.CategoryIndex
	BasePath   string
	Language   string
	KeyPrefix  string
}

// Build maps a record to a suggestion. It does not set Suggestion.Query.
// Tags are always level, category key and CertificationTag in that order;
// a missing level or category leaves an empty string in its slot.
func (b Builder) Build(record *core.Record, score int, matchType core.MatchType) core.Suggestion {
	categoryKey, categoryName := b.category(record.ID)
	return core.Suggestion{
		ID:          record.ID,
		Title:       record.Acronym + " - " + record.Name,
		Description: b.description(record.Description),
		URL:         b.URL(record.ID),
		Score:       score,
		MatchType:   matchType,
		Category:    categoryName,
		Level:       record.Level,
		Tags:        []string{string(record.Level), categoryKey, CertificationTag},
	}
}

// URL returns the page path for a record id, e.g. "/de/certifications/cka".
func (b Builder) URL(id string) string {
	basePath := b.BasePath
	if basePath == "" {
		basePath = DefaultBasePath
	}
	return path.Join("/", b.Language, basePath, slug.Make(id))
}

func (b Builder) description(desc string) string {
	prefix := b.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	if strings.HasPrefix(desc, prefix) {
		return b.translate(desc)
	}
	return desc
}

func (b Builder) category(id string) (key, name string) {
	entry, ok := b.Categories[id]
	if !ok {
		return "", ""
	}
	name = entry.Name
	if looksLikeKey(name) {
		name = b.translate(name)
	}
	return entry.Key, name
}

// looksLikeKey reports whether s reads as a dotted message id such as
// "categories.cloud" rather than a display label.
func looksLikeKey(s string) bool {
	return strings.Contains(s, ".") && !strings.ContainsFunc(s, unicode.IsSpace)
}

func (b Builder) translate(key string) string {
	if b.Translate == nil || key == "" {
		return key
	}
	return b.Translate(key)
}
