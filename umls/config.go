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
	"log/slog"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public UTS endpoint.
	DefaultBaseURL = "https://uts-ws.nlm.nih.gov"

	// DefaultVersion selects the latest UMLS release.
	DefaultVersion = "current"

	// DefaultTimeout bounds every HTTP request.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies termfinder to the service.
	DefaultUserAgent = "termfinder"
)

// Config holds configuration for a UTS client.
type Config struct {
	// APIKey is the UTS credential attached to every request.
	// It is never logged.
	APIKey string

	// BaseURL is the scheme and host of the service.
	// Example: "https://uts-ws.nlm.nih.gov"
	BaseURL string

	// Version is the UMLS release tag used in request paths.
	// Example: "current", "2024AA"
	Version string

	// Timeout bounds a single HTTP request.
	// Default: 30s
	Timeout time.Duration

	// UserAgent is sent with every request.
	UserAgent string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithAPIKey sets the UTS API key.
func WithAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.APIKey = key
	}
}

// WithBaseURL sets the service base URL.
func WithBaseURL(base string) ConfigOption {
	return func(c *Config) {
		c.BaseURL = base
	}
}

// WithVersion sets the UMLS release tag.
func WithVersion(version string) ConfigOption {
	return func(c *Config) {
		c.Version = version
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header value.
func WithUserAgent(ua string) ConfigOption {
	return func(c *Config) {
		c.UserAgent = ua
	}
}

// DefaultConfig returns a Config pointing at the public UTS service.
// The API key is left empty and must be supplied.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		Version:   DefaultVersion,
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
//
// Example:
//
//	cfg := NewConfig(
//	    WithAPIKey(os.Getenv("UMLS_API_KEY")),
//	    WithVersion("2024AA"),
//	)
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
func (c *Config) Normalize() {
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.Version = strings.Trim(strings.TrimSpace(c.Version), "/")
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
}

// Validate checks that the configuration is valid and complete.
// It normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.APIKey == "" {
		return ErrAPIKeyRequired
	}
	if c.BaseURL == "" {
		return errors.New("umls config: BaseURL is required")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("umls config: invalid BaseURL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("umls config: BaseURL must be an absolute http(s) URL, got %q", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return errors.New("umls config: Timeout must be greater than 0")
	}
	return nil
}

// String renders the configuration with the API key redacted.
func (c *Config) String() string {
	return fmt.Sprintf("umls.Config{BaseURL: %q, Version: %q, Timeout: %s, APIKey: %s}",
		c.BaseURL, c.Version, c.Timeout, redact(c.APIKey))
}

// LogValue implements slog.LogValuer so a Config can be logged safely.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("baseURL", c.BaseURL),
		slog.String("version", c.Version),
		slog.Duration("timeout", c.Timeout),
		slog.String("apiKey", redact(c.APIKey)),
	)
}

func redact(secret string) string {
	if secret == "" {
		return "<unset>"
	}
	return "<redacted>"
}
