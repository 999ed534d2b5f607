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

import "errors"

var (
	// ErrInvalidRecord indicates a Record failed validation.
	ErrInvalidRecord = errors.New("invalid certification record")

	// ErrEmptyID indicates the record id is empty.
	ErrEmptyID = errors.New("record id cannot be empty")

	// ErrEmptyTitle indicates both acronym and name are empty.
	ErrEmptyTitle = errors.New("record needs an acronym or a name")

	// ErrInvalidLevel indicates a level outside entry/intermediate/advanced.
	ErrInvalidLevel = errors.New("invalid level")

	// ErrDuplicateID indicates two records share an id.
	ErrDuplicateID = errors.New("duplicate record id")
)

