package umls

import (
	"context"

	"github.com/poiesic/termfinder/core"
)

// SearchService searches the UTS concept index.
type SearchService interface {
	// Search returns one page of hits for the given parameters, in the
	// relevance order reported by the service.
	// Returns an empty slice when the page has no hits.
	// Returns ErrNotFound (possibly wrapped) on 404.
	Search(ctx context.Context, params SearchParams) ([]core.SearchResult, error)
}

// ContentService retrieves concept content.
type ContentService interface {
	// Atoms returns the atoms of concept cui matching params.
	// Returns ErrNotFound (possibly wrapped) when the concept has no atoms
	// matching the filter; the service reports that case as 404.
	Atoms(ctx context.Context, cui string, params AtomParams) ([]core.Atom, error)
}

// Client aggregates the UTS services used by termfinder.
// Implementations are not required to be safe for concurrent use.
type Client interface {
	SearchService
	ContentService

	// Close releases resources held by the client.
	// After Close is called, the client should not be used.
	Close() error
}
