package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/poiesic/certsearch/core"
	"github.com/poiesic/certsearch/search"
)

// Snapshot is a complete catalog as read from a data file.
type Snapshot struct {
	Records    []core.Record          `yaml:"records"`
	Categories core.CategoryIndex     `yaml:"categories,omitempty"`
	Semantics  []search.SemanticEntry `yaml:"semantics,omitempty"`
}

// ParseSnapshot decodes and validates a YAML snapshot.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// LoadSnapshot reads and parses the snapshot file at path.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	snap, err := ParseSnapshot(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return snap, nil
}

// Validate checks every record and the uniqueness of record ids.
func (s *Snapshot) Validate() error {
	if err := core.ValidateCorpus(s.Records); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	return nil
}

// SemanticMap returns the snapshot's synonym table, or the built-in one
// when the snapshot does not define any.
func (s *Snapshot) SemanticMap() *search.SemanticMap {
	if len(s.Semantics) == 0 {
		return search.DefaultSemanticMap()
	}
	return search.NewSemanticMap(s.Semantics)
}
