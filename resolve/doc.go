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

// Package resolve turns a free-text search term into terminology atoms.
//
// Resolution runs in two sequential stages:
//   - Resolver searches the concept index and collects candidate concept
//     identifiers: an unrestricted pass, paginated until a page comes back
//     empty, followed by one pass restricted to trusted source vocabularies
//     (Metathesaurus and MeSH by default)
//   - Fetcher walks the candidates in order and returns the preferred-term
//     atoms of the first candidate that has any in the requested
//     vocabularies
//
// Remote failures never abort a stage. A failing search page ends its pass
// and a failing atoms request skips its candidate; both are logged and
// reported to the Monitor. Only invalid input and context cancellation are
// returned as errors.
//
// Neither stage runs requests concurrently: every decision depends on the
// previous answer.
package resolve
