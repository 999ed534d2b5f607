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

import (
	"fmt"
)

func ValidateRecord(record *Record) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidRecord)
	}

	if record.ID == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecord, ErrEmptyID)
	}

	if record.Acronym == "" && record.Name == "" {
		return fmt.Errorf("%w: %s: %w", ErrInvalidRecord, record.ID, ErrEmptyTitle)
	}

	if !record.Level.Valid() {
		return fmt.Errorf("%w: %s: %w %q", ErrInvalidRecord, record.ID, ErrInvalidLevel, record.Level)
	}

	return nil
}

// ValidateCorpus validates every record and checks that ids are unique.
func ValidateCorpus(records []Record) error {
	seen := make(map[string]struct{}, len(records))
	for i := range records {
		if err := ValidateRecord(&records[i]); err != nil {
			return err
		}
		if _, ok := seen[records[i].ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateID, records[i].ID)
		}
		seen[records[i].ID] = struct{}{}
	}
	return nil
}
