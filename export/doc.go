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

// Package export renders a core.Resolution for people and programs.
//
// Three formats are supported:
//   - text: "Name:", "Code:" and "Source Vocabulary:" lines per atom
//   - json: a single document with the request, candidates and atoms
//   - fhir: an HL7 FHIR R4 CodeableConcept with one Coding per atom
package export
