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

package resolve

import "errors"

var (
	// ErrSearchServiceRequired is returned when a search service is not provided.
	ErrSearchServiceRequired = errors.New("search service required")

	// ErrContentServiceRequired is returned when a content service is not provided.
	ErrContentServiceRequired = errors.New("content service required")

	// ErrInvalidPassLimit is returned when the per-pass limit is not positive.
	ErrInvalidPassLimit = errors.New("pass limit must be greater than 0")

	// ErrInvalidMaxPages is returned when the page bound is not positive.
	ErrInvalidMaxPages = errors.New("max pages must be greater than 0")

	// ErrNoTermTypes is returned when the fetcher is configured without term types.
	ErrNoTermTypes = errors.New("at least one term type required")
)
