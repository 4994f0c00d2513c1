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

package umls

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is returned when the service answers 404.
	ErrNotFound = errors.New("umls: not found")

	// ErrAPIKeyRequired is returned when a Config carries no API key.
	ErrAPIKeyRequired = errors.New("umls config: APIKey is required")

	// ErrClientClosed is returned by calls made after Close.
	ErrClientClosed = errors.New("umls: client closed")
)

// StatusError reports a non-2xx answer from the service.
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("umls: %s: status %d %s", e.Endpoint, e.StatusCode, http.StatusText(e.StatusCode))
}

// Unwrap maps 404 answers onto ErrNotFound.
func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

// IsNotFound reports whether err signals a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
