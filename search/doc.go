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

// Package search implements the certification suggestion engine.
//
// A query flows through five stages:
//   - Semantic expansion: the query is widened with related keywords from a
//     static SemanticMap ("k8s" also looks for "kubernetes").
//   - Field scoring: Score rates a single text field against a query using
//     exact, substring, subsequence, word-boundary and acronym signals.
//   - Aggregation: Aggregate combines weighted field scores and semantic
//     keyword scores into one score and a MatchType per record.
//   - Ranking: records at or below a length-dependent threshold are dropped,
//     the rest are sorted by score, then match type, then corpus order, and
//     cut to at most core.MaxSuggestions entries.
//   - Building: Builder turns each accepted record into a core.Suggestion with
//     a title, translated description, category, tags and URL.
//
// Suggest runs the whole pipeline over an in-memory corpus. It is pure: the
// same query, corpus and environment always produce the same list. Searcher
// wraps Suggest with repository access, options and logging.
package search
