package umls

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://uts-ws.nlm.nih.gov", cfg.BaseURL)
	assert.Equal(t, "current", cfg.Version)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.APIKey)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
		assert.Equal(t, DefaultVersion, cfg.Version)
	})

	t.Run("with multiple options", func(t *testing.T) {
		cfg := NewConfig(
			WithAPIKey("secret"),
			WithBaseURL("http://localhost:8080"),
			WithVersion("2024AA"),
			WithTimeout(5*time.Second),
			WithUserAgent("tests"),
		)

		assert.Equal(t, "secret", cfg.APIKey)
		assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
		assert.Equal(t, "2024AA", cfg.Version)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Equal(t, "tests", cfg.UserAgent)
	})
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name        string
		baseURL     string
		version     string
		wantBaseURL string
		wantVersion string
	}{
		{
			name:        "already canonical",
			baseURL:     "https://uts-ws.nlm.nih.gov",
			version:     "current",
			wantBaseURL: "https://uts-ws.nlm.nih.gov",
			wantVersion: "current",
		},
		{
			name:        "trailing slash",
			baseURL:     "https://uts-ws.nlm.nih.gov/",
			version:     "2024AA",
			wantBaseURL: "https://uts-ws.nlm.nih.gov",
			wantVersion: "2024AA",
		},
		{
			name:        "empty version",
			baseURL:     "http://localhost:9000//",
			version:     "  ",
			wantBaseURL: "http://localhost:9000",
			wantVersion: "current",
		},
		{
			name:        "slashed version",
			baseURL:     "http://localhost:9000",
			version:     "/2023AB/",
			wantBaseURL: "http://localhost:9000",
			wantVersion: "2023AB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{BaseURL: tt.baseURL, Version: tt.version}
			cfg.Normalize()
			assert.Equal(t, tt.wantBaseURL, cfg.BaseURL)
			assert.Equal(t, tt.wantVersion, cfg.Version)
			assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := NewConfig(WithAPIKey("secret"))
		require.NoError(t, cfg.Validate())
	})

	t.Run("missing api key", func(t *testing.T) {
		cfg := NewConfig()
		err := cfg.Validate()
		assert.True(t, errors.Is(err, ErrAPIKeyRequired))
	})

	t.Run("blank api key", func(t *testing.T) {
		cfg := NewConfig(WithAPIKey("   "))
		assert.ErrorIs(t, cfg.Validate(), ErrAPIKeyRequired)
	})

	t.Run("missing base url", func(t *testing.T) {
		cfg := NewConfig(WithAPIKey("secret"), WithBaseURL(""))
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "BaseURL")
	})

	t.Run("relative base url", func(t *testing.T) {
		cfg := NewConfig(WithAPIKey("secret"), WithBaseURL("uts-ws.nlm.nih.gov"))
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "absolute")
	})

	t.Run("non http scheme", func(t *testing.T) {
		cfg := NewConfig(WithAPIKey("secret"), WithBaseURL("ftp://uts-ws.nlm.nih.gov"))
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero timeout", func(t *testing.T) {
		cfg := NewConfig(WithAPIKey("secret"), WithTimeout(0))
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Timeout")
	})
}

func TestConfigRedactsAPIKey(t *testing.T) {
	cfg := NewConfig(WithAPIKey("super-secret-key"))

	assert.NotContains(t, cfg.String(), "super-secret-key")
	assert.Contains(t, cfg.String(), "<redacted>")

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("configured", "config", cfg)

	assert.NotContains(t, buf.String(), "super-secret-key")
	assert.Contains(t, buf.String(), "config.version=current")
}
