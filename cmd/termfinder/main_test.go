package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/poiesic/termfinder/export"
	"github.com/poiesic/termfinder/umls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func findFlag[T cli.Flag](t *testing.T, flags []cli.Flag, name string) T {
	t.Helper()
	for _, flag := range flags {
		if f, ok := flag.(T); ok && flag.Names()[0] == name {
			return f
		}
	}
	var zero T
	t.Fatalf("flag %q not found", name)
	return zero
}

func TestLookupCommandFlags(t *testing.T) {
	app := newApp(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	require.Len(t, app.Commands, 1)
	flags := app.Commands[0].Flags

	t.Run("api-key reads UMLS_API_KEY", func(t *testing.T) {
		f := findFlag[*cli.StringFlag](t, flags, "api-key")
		assert.Equal(t, []string{"UMLS_API_KEY"}, f.EnvVars)
		assert.Empty(t, f.Value)
	})

	t.Run("base-url defaults to UTS", func(t *testing.T) {
		f := findFlag[*cli.StringFlag](t, flags, "base-url")
		assert.Equal(t, umls.DefaultBaseURL, f.Value)
		assert.Equal(t, []string{"UMLS_BASE_URL"}, f.EnvVars)
	})

	t.Run("version defaults to current", func(t *testing.T) {
		f := findFlag[*cli.StringFlag](t, flags, "version")
		assert.Equal(t, "current", f.Value)
	})

	t.Run("sabs defaults to HPO and SNOMEDCT_US", func(t *testing.T) {
		f := findFlag[*cli.StringSliceFlag](t, flags, "sabs")
		assert.Equal(t, []string{"HPO", "SNOMEDCT_US"}, f.Value.Value())
	})

	t.Run("fallback-sabs defaults to MTH and MSH", func(t *testing.T) {
		f := findFlag[*cli.StringSliceFlag](t, flags, "fallback-sabs")
		assert.Equal(t, []string{"MTH", "MSH"}, f.Value.Value())
	})

	t.Run("limit defaults to 10", func(t *testing.T) {
		f := findFlag[*cli.IntFlag](t, flags, "limit")
		assert.Equal(t, 10, f.Value)
	})

	t.Run("max-pages defaults to 1", func(t *testing.T) {
		f := findFlag[*cli.IntFlag](t, flags, "max-pages")
		assert.Equal(t, 1, f.Value)
	})

	t.Run("format defaults to text", func(t *testing.T) {
		f := findFlag[*cli.StringFlag](t, flags, "format")
		assert.Equal(t, string(export.FormatText), f.Value)
	})
}

func TestLookupCommandValidation(t *testing.T) {
	t.Setenv("UMLS_API_KEY", "")

	t.Run("api key is required", func(t *testing.T) {
		app := newApp(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
		err := app.Run([]string{"termfinder", "lookup", "marfan"})
		require.Error(t, err)
		assert.ErrorIs(t, err, umls.ErrAPIKeyRequired)
	})

	t.Run("unknown format", func(t *testing.T) {
		app := newApp(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
		err := app.Run([]string{"termfinder", "lookup", "--api-key", "k", "--format", "xml", "marfan"})
		assert.ErrorIs(t, err, export.ErrUnknownFormat)
	})

	t.Run("invalid log level", func(t *testing.T) {
		app := newApp(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
		err := app.Run([]string{"termfinder", "-l", "loud", "lookup", "marfan"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("zero limit is rejected", func(t *testing.T) {
		app := newApp(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
		err := app.Run([]string{"termfinder", "lookup", "--api-key", "k", "--limit", "0", "marfan"})
		require.Error(t, err)
	})
}

func newFakeUTS(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasPrefix(r.URL.Path, "/rest/search/"):
			ui := "NONE"
			if strings.Contains(strings.ToLower(r.URL.Query().Get("string")), "marfan") {
				ui = "C0024796"
			}
			json.NewEncoder(w).Encode(map[string]any{
				"result": map[string]any{
					"results": []map[string]string{{"ui": ui, "name": "Marfan Syndrome"}},
				},
			})
		case r.URL.Path == "/rest/content/current/CUI/C0024796/atoms":
			json.NewEncoder(w).Encode(map[string]any{
				"result": []map[string]string{{
					"name":       "Marfan syndrome",
					"code":       "https://uts-ws.nlm.nih.gov/rest/content/current/source/HPO/HP:0001519",
					"rootSource": "HPO",
					"termType":   "PT",
				}},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLookupCommand(t *testing.T) {
	srv := newFakeUTS(t)

	t.Run("term from args", func(t *testing.T) {
		var stdout bytes.Buffer
		app := newApp(strings.NewReader(""), &stdout, &bytes.Buffer{})
		err := app.Run([]string{"termfinder", "lookup", "--api-key", "k", "--base-url", srv.URL, "Marfan", "syndrome"})
		require.NoError(t, err)

		assert.Equal(t, "Name: Marfan syndrome\nCode: HP:0001519\nSource Vocabulary: HPO\n\n", stdout.String())
	})

	t.Run("term from prompt", func(t *testing.T) {
		var stdout bytes.Buffer
		app := newApp(strings.NewReader("marfan syndrome\n"), &stdout, &bytes.Buffer{})
		err := app.Run([]string{"termfinder", "lookup", "--api-key", "k", "--base-url", srv.URL})
		require.NoError(t, err)

		out := stdout.String()
		assert.True(t, strings.HasPrefix(out, "Enter search term: "))
		assert.Contains(t, out, "Code: HP:0001519")
	})

	t.Run("empty prompt", func(t *testing.T) {
		app := newApp(strings.NewReader("\n"), &bytes.Buffer{}, &bytes.Buffer{})
		err := app.Run([]string{"termfinder", "lookup", "--api-key", "k", "--base-url", srv.URL})
		require.Error(t, err)
	})

	t.Run("no results is not an error", func(t *testing.T) {
		var stdout bytes.Buffer
		app := newApp(strings.NewReader(""), &stdout, &bytes.Buffer{})
		err := app.Run([]string{"termfinder", "lookup", "--api-key", "k", "--base-url", srv.URL, "qqqzzzxxy"})
		require.NoError(t, err)
		assert.Equal(t, "No results found.\n", stdout.String())
	})

	t.Run("json output", func(t *testing.T) {
		var stdout bytes.Buffer
		app := newApp(strings.NewReader(""), &stdout, &bytes.Buffer{})
		err := app.Run([]string{"termfinder", "lookup", "--api-key", "k", "--base-url", srv.URL, "-f", "json", "marfan"})
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &doc))
		assert.Equal(t, "marfan", doc["term"])
		assert.Equal(t, true, doc["found"])
		assert.Equal(t, "C0024796", doc["concept"])
	})

	t.Run("trace goes to stderr", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		app := newApp(strings.NewReader(""), &stdout, &stderr)
		err := app.Run([]string{"termfinder", "-l", "error", "lookup", "--api-key", "k", "--base-url", srv.URL, "--trace", "--no-fallback", "marfan"})
		require.NoError(t, err)

		assert.Contains(t, stderr.String(), `searching for "marfan"`)
		assert.Contains(t, stderr.String(), "1 candidates")
		assert.NotContains(t, stderr.String(), "fallback")
		assert.Contains(t, stdout.String(), "Code: HP:0001519")
	})
}
