package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/poiesic/termfinder/core"
	"github.com/poiesic/termfinder/umls"
)

// maxDrain bounds how much of an error body is read before closing it.
const maxDrain = 4 << 10

// Client implements umls.Client against the UTS REST API.
type Client struct {
	config     *umls.Config
	httpClient *http.Client
	logger     *slog.Logger
	closed     bool
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. Its Timeout is left untouched.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default() tagged with the component name.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// newClient is an internal constructor that returns the concrete type.
func newClient(config *umls.Config, opts ...Option) (*Client, error) {
	if config == nil {
		config = umls.DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: slog.Default().With("component", "umls-rest"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewClient creates a UTS client from config.
// The config is validated and normalized before use.
//
// Returns umls.Client interface to keep callers independent of HTTP details.
func NewClient(config *umls.Config, opts ...Option) (umls.Client, error) {
	return newClient(config, opts...)
}

// Search fetches one page of search hits.
func (c *Client) Search(ctx context.Context, params umls.SearchParams) ([]core.SearchResult, error) {
	endpoint := "/rest/search/" + url.PathEscape(c.config.Version)

	var body searchResponse
	if err := c.get(ctx, endpoint, params.Values(c.config.APIKey), &body); err != nil {
		return nil, fmt.Errorf("search %q page %d: %w", params.Term, params.PageNumber, err)
	}

	results := make([]core.SearchResult, 0, len(body.Result.Results))
	for _, hit := range body.Result.Results {
		if hit.UI == "" || hit.UI == noResultsUI {
			continue
		}
		results = append(results, core.SearchResult{
			UI:         hit.UI,
			Name:       hit.Name,
			RootSource: hit.RootSource,
			URI:        hit.URI,
		})
	}

	c.logger.Debug("search page fetched",
		"term", params.Term,
		"page", params.PageNumber,
		"sabs", params.SourcesParam(),
		"hits", len(results))
	return results, nil
}

// Atoms fetches the atoms of a concept.
func (c *Client) Atoms(ctx context.Context, cui string, params umls.AtomParams) ([]core.Atom, error) {
	endpoint := fmt.Sprintf("/rest/content/%s/CUI/%s/atoms",
		url.PathEscape(c.config.Version), url.PathEscape(cui))

	var body atomsResponse
	if err := c.get(ctx, endpoint, params.Values(c.config.APIKey), &body); err != nil {
		return nil, fmt.Errorf("atoms %s: %w", cui, err)
	}

	atoms := make([]core.Atom, 0, len(body.Result))
	for _, a := range body.Result {
		atoms = append(atoms, core.Atom{
			Name:       a.Name,
			CodeURL:    a.Code,
			RootSource: a.RootSource,
			TermType:   a.TermType,
			Language:   a.Language,
		})
	}

	c.logger.Debug("atoms fetched", "cui", cui, "atoms", len(atoms))
	return atoms, nil
}

// Close releases the client's idle connections.
func (c *Client) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.httpClient.CloseIdleConnections()
	c.logger.Debug("closing UTS client")
	return nil
}

// get issues a GET for endpoint with query and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	if c.closed {
		return umls.ErrClientClosed
	}

	reqURL := c.config.BaseURL + endpoint + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)

	c.logger.Debug("GET", "endpoint", endpoint, "query", redactedQuery(query))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", endpoint, scrubURLError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrain))
		statusErr := &umls.StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode}
		if resp.StatusCode != http.StatusNotFound {
			c.logger.Warn("unexpected status from UTS", "endpoint", endpoint, "status", resp.StatusCode)
		}
		return statusErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", endpoint, err)
	}
	return nil
}

// redactedQuery renders query with the API key masked.
func redactedQuery(query url.Values) string {
	masked := url.Values{}
	for k, v := range query {
		if k == "apiKey" {
			masked.Set(k, "REDACTED")
			continue
		}
		masked[k] = v
	}
	return masked.Encode()
}

// scrubURLError drops the request URL, which carries the API key, from
// transport errors.
func scrubURLError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		return fmt.Errorf("%s: %w", ue.Op, ue.Err)
	}
	return err
}
