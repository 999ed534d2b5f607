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

// Package dispatch schedules searches for a stream of keystroke-level query
// updates.
//
// The Dispatcher holds a single pending request. Every Submit overwrites it
// and restarts a quiet-period timer; when the timer fires, only the request
// still pending runs. Queries of zero or one rune also run immediately for
// instant feedback. Searches execute on a worker pool and every result
// carries the sequence number of the request that produced it. A result
// older than one already delivered is dropped, so the latest query always
// supersedes earlier ones.
package dispatch
