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

package termfinder

import (
	"context"
	"log/slog"

	"github.com/poiesic/termfinder/core"
	"github.com/poiesic/termfinder/resolve"
	"github.com/poiesic/termfinder/umls"
	"github.com/poiesic/termfinder/umls/rest"
)

// Finder resolves search terms into terminology atoms. It holds the UTS
// client and the configured resolver and fetcher for its whole lifetime.
type Finder struct {
	client   umls.Client
	resolver *resolve.Resolver
	fetcher  *resolve.Fetcher
	monitor  resolve.Monitor
	logger   *slog.Logger
}

// FinderOption configures a Finder.
type FinderOption func(*finderOptions)

type finderOptions struct {
	client          umls.Client
	resolverOptions []resolve.Option
	fetcherOptions  []resolve.FetcherOption
	monitor         resolve.Monitor
	logger          *slog.Logger
}

// WithClient uses client instead of building a REST client from the config.
func WithClient(client umls.Client) FinderOption {
	return func(o *finderOptions) {
		o.client = client
	}
}

// WithResolverOptions passes options through to the resolver.
func WithResolverOptions(opts ...resolve.Option) FinderOption {
	return func(o *finderOptions) {
		o.resolverOptions = append(o.resolverOptions, opts...)
	}
}

// WithFetcherOptions passes options through to the fetcher.
func WithFetcherOptions(opts ...resolve.FetcherOption) FinderOption {
	return func(o *finderOptions) {
		o.fetcherOptions = append(o.fetcherOptions, opts...)
	}
}

// WithMonitor reports every lookup to monitor.
func WithMonitor(monitor resolve.Monitor) FinderOption {
	return func(o *finderOptions) {
		o.monitor = monitor
	}
}

// WithLogger sets the logger of the finder, resolver and fetcher.
func WithLogger(logger *slog.Logger) FinderOption {
	return func(o *finderOptions) {
		o.logger = logger
	}
}

// NewFinder creates a Finder. Unless WithClient is given, a REST client is
// built from cfg, which must carry an API key.
func NewFinder(cfg *umls.Config, opts ...FinderOption) (*Finder, error) {
	options := &finderOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	client := options.client
	if client == nil {
		c, err := rest.NewClient(cfg, rest.WithLogger(options.logger.With("component", "umls-rest")))
		if err != nil {
			return nil, err
		}
		client = c
	}

	resolverOpts := append([]resolve.Option{resolve.WithLogger(options.logger.With("component", "resolver"))},
		options.resolverOptions...)
	resolver, err := resolve.NewResolver(client, resolverOpts...)
	if err != nil {
		client.Close()
		return nil, err
	}

	fetcherOpts := append([]resolve.FetcherOption{resolve.WithFetcherLogger(options.logger.With("component", "fetcher"))},
		options.fetcherOptions...)
	fetcher, err := resolve.NewFetcher(client, fetcherOpts...)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Finder{
		client:   client,
		resolver: resolver,
		fetcher:  fetcher,
		monitor:  options.monitor,
		logger:   options.logger,
	}, nil
}

// Lookup resolves req into the atoms of the first matching concept.
//
// A lookup that finds nothing is not an error: the returned Resolution has
// no atoms and Found reports false. Errors are returned for invalid requests
// and a done context.
func (f *Finder) Lookup(ctx context.Context, req core.ResolutionRequest) (*core.Resolution, error) {
	if err := core.ValidateResolutionRequest(req); err != nil {
		return nil, err
	}

	logger := f.logger.With("lookup", uint64(req.ID()))
	res := &core.Resolution{Request: req}

	candidates, err := f.resolver.ResolveWithMonitor(ctx, req.Term(), f.monitor)
	res.Candidates = candidates
	if err != nil {
		logger.Error("error resolving candidates", "term", req.Term(), "err", err)
		return res, err
	}
	if len(candidates) == 0 {
		logger.Debug("no candidates", "term", req.Term())
		f.finish(res)
		return res, nil
	}

	cui, atoms, err := f.fetcher.FetchWithMonitor(ctx, candidates, req.Sources(), f.monitor)
	if err != nil {
		logger.Error("error fetching atoms", "term", req.Term(), "err", err)
		return res, err
	}
	res.ConceptUI = cui
	res.Atoms = atoms

	logger.Debug("lookup finished", "term", req.Term(), "candidates", len(candidates), "concept", cui, "atoms", len(atoms))
	f.finish(res)
	return res, nil
}

func (f *Finder) finish(res *core.Resolution) {
	if f.monitor != nil {
		f.monitor.Finish(res)
	}
}

// Resolver returns the search stage.
func (f *Finder) Resolver() *resolve.Resolver {
	return f.resolver
}

// Fetcher returns the atom stage.
func (f *Finder) Fetcher() *resolve.Fetcher {
	return f.fetcher
}

// Close releases the UTS client.
func (f *Finder) Close() error {
	if err := f.client.Close(); err != nil {
		f.logger.Error("error closing UTS client", "err", err)
		return err
	}
	return nil
}
