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

// Package loader reads certification catalog snapshots and imports them into
// storage.
//
// A snapshot is a YAML document with three sections:
//
//	records:     the certification corpus, in display order
//	categories:  record id -> {key, name}
//	semantics:   optional replacement for the built-in synonym table
//
// The Importer validates the corpus, writes records in batches with retry,
// and reports progress through a ProgressTracker.
package loader
