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

// Package umls provides abstractions for the UMLS Terminology Services (UTS)
// REST API used by termfinder.
//
// The package defines the two remote operations the resolution pipeline
// depends on:
//
//   - SearchService: full-text search of the concept index
//   - ContentService: retrieval of a concept's atoms
//
// Client aggregates both behind a single lifecycle. Per-request parameters
// are carried by SearchParams and AtomParams, immutable values rendered into
// a fresh url.Values for every outbound call.
//
// # Implementation Packages
//
//   - umls/rest: Production implementation over HTTP
//   - umls/mock: Test double with scripted responses and call recording
//
// Public constructors in the implementation packages return the Client
// interface; the mock constructor returns its concrete type so tests can
// inspect recorded calls.
//
// # Errors
//
// A 404 from the service is reported as ErrNotFound. Other non-2xx answers
// are reported as *StatusError. Callers in the resolve package treat both as
// "nothing here" and move on.
package umls
