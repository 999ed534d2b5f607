package search

import (
	"slices"
	"strings"
	"sync"
)

// SemanticEntry relates a trigger term to keywords that mean the same thing
// to someone searching for certifications.
type SemanticEntry struct {
	Trigger string   `yaml:"trigger"`
	Related []string `yaml:"related"`
}

// SemanticMap is an ordered, immutable table of SemanticEntry values.
type SemanticMap struct {
	entries []SemanticEntry
}

// NewSemanticMap builds a map from entries. Terms are lower-cased and blank
// terms are dropped; the input slice is not retained.
func NewSemanticMap(entries []SemanticEntry) *SemanticMap {
	m := &SemanticMap{entries: make([]SemanticEntry, 0, len(entries))}
	for _, e := range entries {
		entry := SemanticEntry{Trigger: strings.ToLower(strings.TrimSpace(e.Trigger))}
		for _, kw := range e.Related {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				entry.Related = append(entry.Related, kw)
			}
		}
		if entry.Trigger == "" && len(entry.Related) == 0 {
			continue
		}
		m.entries = append(m.entries, entry)
	}
	return m
}

// Len returns the number of entries in the map.
func (m *SemanticMap) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the map's entries in table order.
func (m *SemanticMap) Entries() []SemanticEntry {
	out := make([]SemanticEntry, len(m.entries))
	for i, e := range m.entries {
		out[i] = SemanticEntry{Trigger: e.Trigger, Related: slices.Clone(e.Related)}
	}
	return out
}

// Expand returns the lower-cased query followed by the related keywords of
// every entry whose trigger or related keywords occur in the query.
// The result is deduplicated and keeps first-seen order.
func (m *SemanticMap) Expand(query string) []string {
	q := strings.ToLower(query)
	keywords := []string{q}
	seen := map[string]struct{}{q: {}}

	for _, e := range m.entries {
		if !e.matches(q) {
			continue
		}
		for _, kw := range e.Related {
			if _, ok := seen[kw]; ok {
				continue
			}
			seen[kw] = struct{}{}
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

func (e SemanticEntry) matches(q string) bool {
	if e.Trigger != "" && strings.Contains(q, e.Trigger) {
		return true
	}
	for _, kw := range e.Related {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

var (
	defaultSemanticsOnce sync.Once
	defaultSemantics     *SemanticMap
)

// DefaultSemanticMap returns the built-in certification vocabulary.
func DefaultSemanticMap() *SemanticMap {
	defaultSemanticsOnce.Do(func() {
		defaultSemantics = NewSemanticMap(defaultSemanticEntries)
	})
	return defaultSemantics
}

// Expand expands query with DefaultSemanticMap.
func Expand(query string) []string {
	return DefaultSemanticMap().Expand(query)
}

var defaultSemanticEntries = []SemanticEntry{
	{Trigger: "kubernetes", Related: []string{"kubernetes", "k8s", "container", "orchestration", "cka", "ckad", "cks", "kcna", "cloud native"}},
	{Trigger: "k8s", Related: []string{"kubernetes", "container", "orchestration", "cka", "ckad"}},
	{Trigger: "docker", Related: []string{"docker", "container", "containerization", "dca"}},
	{Trigger: "aws", Related: []string{"aws", "amazon", "amazon web services", "cloud", "solutions architect"}},
	{Trigger: "azure", Related: []string{"azure", "microsoft", "az-900", "az-104", "cloud"}},
	{Trigger: "gcp", Related: []string{"gcp", "google cloud", "google", "cloud"}},
	{Trigger: "cloud", Related: []string{"cloud", "aws", "azure", "gcp", "cloud native"}},
	{Trigger: "security", Related: []string{"security", "cybersecurity", "cissp", "cism", "security+", "cysa+", "oscp", "penetration testing"}},
	{Trigger: "network", Related: []string{"network", "networking", "ccna", "ccnp", "network+", "routing"}},
	{Trigger: "linux", Related: []string{"linux", "lfcs", "rhcsa", "rhce", "red hat", "lpic"}},
	{Trigger: "devops", Related: []string{"devops", "ci/cd", "automation", "terraform", "kubernetes"}},
	{Trigger: "terraform", Related: []string{"terraform", "hashicorp", "infrastructure as code"}},
	{Trigger: "project", Related: []string{"project management", "pmp", "capm", "prince2", "scrum"}},
	{Trigger: "agile", Related: []string{"agile", "scrum", "psm", "csm", "safe"}},
	{Trigger: "data", Related: []string{"data", "database", "sql", "analytics", "data engineer"}},
	{Trigger: "machine learning", Related: []string{"machine learning", "artificial intelligence", "mlops", "ai-102"}},
}
