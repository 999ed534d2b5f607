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

// Package storage defines the repositories that hold the certification
// corpus and the category index.
//
// The search engine only reads from these repositories. Records are kept in
// the order they were added so that ranking ties resolve to corpus order.
// The badger subpackage provides the BadgerDB implementation, which runs
// in memory by default.
package storage
