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

// Domain validation errors
var (
	// ErrInvalidRequest indicates a ResolutionRequest failed validation.
	ErrInvalidRequest = errors.New("invalid resolution request")

	// ErrEmptyTerm indicates the search term is empty after normalization.
	ErrEmptyTerm = errors.New("search term cannot be empty")

	// ErrInvalidSource indicates a malformed source vocabulary abbreviation.
	ErrInvalidSource = errors.New("invalid source vocabulary")
)
