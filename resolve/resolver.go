package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/termfinder/core"
	"github.com/poiesic/termfinder/umls"
)

// Defaults for the search stage.
const (
	DefaultPassLimit = 10
	DefaultMaxPages  = 1
)

// DefaultFallbackSources returns the vocabularies of the restricted pass:
// the Metathesaurus and MeSH.
func DefaultFallbackSources() []string {
	return []string{"MTH", "MSH"}
}

// Pass names a search pass.
type Pass string

const (
	// PassUnrestricted searches every source vocabulary.
	PassUnrestricted Pass = "unrestricted"
	// PassFallback searches the configured fallback vocabularies only.
	PassFallback Pass = "fallback"
)

// Resolver turns a search term into candidate concept identifiers.
type Resolver struct {
	search          umls.SearchService
	logger          *slog.Logger
	passLimit       int
	maxPages        int
	fallbackSources []string
	inputType       string
	searchType      string
}

// Option configures a Resolver.
type Option func(*Resolver) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithPassLimit caps how many identifiers each pass contributes.
// Default is 10.
func WithPassLimit(n int) Option {
	return func(r *Resolver) error {
		if n <= 0 {
			return ErrInvalidPassLimit
		}
		r.passLimit = n
		return nil
	}
}

// WithMaxPages bounds how many pages the unrestricted pass requests.
// Default is 1.
func WithMaxPages(n int) Option {
	return func(r *Resolver) error {
		if n <= 0 {
			return ErrInvalidMaxPages
		}
		r.maxPages = n
		return nil
	}
}

// WithFallbackSources sets the vocabularies of the restricted pass.
// No sources disables the restricted pass.
func WithFallbackSources(sources ...string) Option {
	return func(r *Resolver) error {
		for _, s := range sources {
			if err := core.ValidateSource(s); err != nil {
				return fmt.Errorf("fallback sources: %w", err)
			}
		}
		r.fallbackSources = append([]string(nil), sources...)
		return nil
	}
}

// WithInputType overrides the search inputType. Default is "atom".
func WithInputType(inputType string) Option {
	return func(r *Resolver) error {
		r.inputType = inputType
		return nil
	}
}

// WithSearchType overrides the search searchType. Default is "words".
func WithSearchType(searchType string) Option {
	return func(r *Resolver) error {
		r.searchType = searchType
		return nil
	}
}

// NewResolver creates a new resolver.
func NewResolver(search umls.SearchService, opts ...Option) (*Resolver, error) {
	if search == nil {
		return nil, ErrSearchServiceRequired
	}

	r := &Resolver{
		search:          search,
		logger:          slog.Default(),
		passLimit:       DefaultPassLimit,
		maxPages:        DefaultMaxPages,
		fallbackSources: DefaultFallbackSources(),
		inputType:       umls.InputTypeAtom,
		searchType:      umls.SearchTypeWords,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Resolve returns the candidate concept identifiers for term.
// See ResolveWithMonitor.
func (r *Resolver) Resolve(ctx context.Context, term string) (core.CandidateList, error) {
	return r.ResolveWithMonitor(ctx, term, nil)
}

// ResolveWithMonitor returns the candidate concept identifiers for term,
// reporting each step to monitor.
//
// The unrestricted pass contributes at most the pass limit of identifiers,
// followed by at most as many from the fallback pass, each in remote order.
// An empty first page ends resolution with an empty list and no fallback
// request. Remote failures end the affected pass without error; the
// returned error is non-nil only for an empty term or a done context.
func (r *Resolver) ResolveWithMonitor(ctx context.Context, term string, monitor Monitor) (core.CandidateList, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	term = core.NormalizeTerm(term)
	if term == "" {
		return nil, core.ErrEmptyTerm
	}
	monitor.Start(term)

	candidates := make(core.CandidateList, 0, 2*r.passLimit)

	// 1. Unrestricted pass
	primary, err := r.runPass(ctx, PassUnrestricted, term, nil, r.maxPages, monitor)
	if err != nil {
		return candidates, err
	}
	if len(primary) == 0 {
		r.logger.Info("no results found", "term", term)
		monitor.AfterResolve(candidates)
		return candidates, nil
	}
	candidates = append(candidates, primary...)

	// 2. Restricted pass, a single page
	if len(r.fallbackSources) > 0 {
		fallback, err := r.runPass(ctx, PassFallback, term, r.fallbackSources, 1, monitor)
		candidates = append(candidates, fallback...)
		if err != nil {
			return candidates, err
		}
	}

	r.logger.Debug("resolved candidates",
		"term", term,
		"unrestricted", len(primary),
		"total", len(candidates))
	monitor.AfterResolve(candidates)
	return candidates, nil
}

// runPass pages through one search pass until a page is empty, maxPages
// pages were requested or the pass limit is reached.
func (r *Resolver) runPass(ctx context.Context, pass Pass, term string, sources []string, maxPages int, monitor Monitor) ([]string, error) {
	ids := make([]string, 0, r.passLimit)

	for page := 1; page <= maxPages && len(ids) < r.passLimit; page++ {
		if err := ctx.Err(); err != nil {
			return ids, err
		}

		hits, err := r.search.Search(ctx, r.searchParams(term, page, sources))
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ids, ctxErr
			}
			if umls.IsNotFound(err) {
				r.logger.Debug("search page not found", "pass", pass, "page", page, "term", term)
			} else {
				r.logger.Warn("search page failed, ending pass",
					"pass", pass, "page", page, "term", term, "err", err)
			}
			monitor.PassFailed(pass, page, err)
			break
		}
		monitor.PageFetched(pass, page, hits)

		if len(hits) == 0 {
			break
		}
		for _, hit := range hits {
			if len(ids) == r.passLimit {
				break
			}
			ids = append(ids, hit.UI)
		}
	}

	return ids, nil
}

// searchParams builds the parameters of one page request.
func (r *Resolver) searchParams(term string, page int, sources []string) umls.SearchParams {
	params := umls.UnrestrictedSearch(term, page)
	params.InputType = r.inputType
	params.SearchType = r.searchType
	if len(sources) > 0 {
		params = params.Restricted(sources...)
	}
	return params
}

// FallbackSources returns the vocabularies of the restricted pass.
func (r *Resolver) FallbackSources() string {
	return strings.Join(r.fallbackSources, ",")
}
