// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"fmt"

	"github.com/go-crypt/x/blake2b"
	"gopkg.in/yaml.v3"
)

// MaxSuggestions is the upper bound on the length of any suggestion list.
const MaxSuggestions = 5

type ID uint64

func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

type Level string

const (
	LevelEntry        Level = "entry"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Valid reports whether l is one of the fixed level values.
func (l Level) Valid() bool {
	switch l {
	case LevelEntry, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return l, nil
}

// Topic is a study topic inside a domain. In data files it is written
// either as a bare string or as a {name, url} mapping.
type Topic struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url,omitempty"`
}

func (t *Topic) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		t.Name = value.Value
		t.URL = ""
		return nil
	}
	type plain Topic
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*t = Topic(p)
	return nil
}

type Domain struct {
	Name   string  `yaml:"name"`
	Topics []Topic `yaml:"topics,omitempty"`
}

// Record is a certification as supplied by the data set. The search engine
// treats it as read-only.
type Record struct {
	ID          string   `yaml:"id"`
	Acronym     string   `yaml:"acronym"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"` // may be a translation key
	Level       Level    `yaml:"level"`
	Domains     []Domain `yaml:"domains,omitempty"`
}

// CategoryEntry is the category a record is filed under.
type CategoryEntry struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"` // display label or translation key
}

// CategoryIndex maps record ids to their category.
type CategoryIndex map[string]CategoryEntry

// TranslateFunc resolves a translation key to display text.
type TranslateFunc func(key string) string

// IdentityTranslate returns every key unchanged.
func IdentityTranslate(key string) string {
	return key
}

type MatchType string

const (
	MatchExact    MatchType = "exact"
	MatchPartial  MatchType = "partial"
	MatchSemantic MatchType = "semantic"
	MatchFuzzy    MatchType = "fuzzy"
)

// Priority orders match types for tie-breaking; higher is better.
func (m MatchType) Priority() int {
	switch m {
	case MatchExact:
		return 4
	case MatchPartial:
		return 3
	case MatchSemantic:
		return 2
	case MatchFuzzy:
		return 1
	}
	return 0
}

// Suggestion is one display-ready search result.
type Suggestion struct {
	ID          string
	Title       string
	Description string
	URL         string
	Score       int // 0-100
	MatchType   MatchType
	Category    string
	Level       Level
	Tags        []string
	Query       string // normalized query that produced this suggestion
}
