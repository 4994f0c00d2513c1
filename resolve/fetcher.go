package resolve

import (
	"context"
	"log/slog"
	"slices"

	"github.com/poiesic/termfinder/core"
	"github.com/poiesic/termfinder/umls"
)

// Fetcher returns the atoms of the first candidate that has any.
type Fetcher struct {
	content   umls.ContentService
	logger    *slog.Logger
	termTypes []string
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher) error

// WithFetcherLogger sets a custom logger.
// Default is slog.Default().
func WithFetcherLogger(logger *slog.Logger) FetcherOption {
	return func(f *Fetcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		f.logger = logger
		return nil
	}
}

// WithTermTypes sets the term types requested for each candidate.
// Default is preferred terms ("PT") only.
func WithTermTypes(ttys ...string) FetcherOption {
	return func(f *Fetcher) error {
		if len(ttys) == 0 {
			return ErrNoTermTypes
		}
		f.termTypes = append([]string(nil), ttys...)
		return nil
	}
}

// NewFetcher creates a new fetcher.
func NewFetcher(content umls.ContentService, opts ...FetcherOption) (*Fetcher, error) {
	if content == nil {
		return nil, ErrContentServiceRequired
	}

	f := &Fetcher{
		content:   content,
		logger:    slog.Default(),
		termTypes: []string{umls.TermTypePreferred},
	}

	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Fetch returns the atoms of the first candidate with atoms from sources.
// See FetchWithMonitor.
func (f *Fetcher) Fetch(ctx context.Context, candidates core.CandidateList, sources []string) (string, []core.Atom, error) {
	return f.FetchWithMonitor(ctx, candidates, sources, nil)
}

// FetchWithMonitor walks candidates in order and returns the identifier and
// atoms of the first one whose atoms request yields a non-empty list.
// Later candidates are never requested. Empty sources select
// core.DefaultSources.
//
// A failed request (including 404) counts as "no atoms" for that candidate.
// A candidate that already appeared earlier in the list is not requested
// again. When no candidate yields atoms the result is empty; the returned
// error is non-nil only when ctx is done.
func (f *Fetcher) FetchWithMonitor(ctx context.Context, candidates core.CandidateList, sources []string, monitor Monitor) (string, []core.Atom, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if len(sources) == 0 {
		sources = core.DefaultSources()
	}

	tried := make(map[string]bool, len(candidates))
	for _, cui := range candidates {
		if tried[cui] {
			continue
		}
		tried[cui] = true

		if err := ctx.Err(); err != nil {
			return "", nil, err
		}

		params := umls.AtomParams{
			TermTypes: slices.Clone(f.termTypes),
			Sources:   slices.Clone(sources),
		}
		atoms, err := f.content.Atoms(ctx, cui, params)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return "", nil, ctxErr
			}
			if umls.IsNotFound(err) {
				f.logger.Debug("no matching atoms", "cui", cui)
			} else {
				f.logger.Warn("atoms request failed, trying next candidate", "cui", cui, "err", err)
			}
			monitor.CandidateTried(cui, nil, err)
			continue
		}

		monitor.CandidateTried(cui, atoms, nil)
		if len(atoms) > 0 {
			f.logger.Debug("candidate matched", "cui", cui, "atoms", len(atoms))
			return cui, atoms, nil
		}
	}

	f.logger.Info("no terminology entry found", "candidates", len(candidates))
	return "", nil, nil
}
