package mock

import (
	"context"

	"github.com/poiesic/termfinder/core"
	"github.com/poiesic/termfinder/umls"
)

// AtomCall records one Atoms invocation.
type AtomCall struct {
	CUI    string
	Params umls.AtomParams
}

// MockClient is a test double for umls.Client.
//
// Default behavior: Search answers from Pages keyed by the comma-joined
// sources filter ("" for unrestricted) and 1-based page number; a missing
// page is empty. Atoms answers from AtomErrs, then AtomsByCUI; a missing CUI
// yields umls.ErrNotFound, matching the service's 404.
type MockClient struct {
	// SearchFunc is called by Search if set.
	SearchFunc func(ctx context.Context, params umls.SearchParams) ([]core.SearchResult, error)

	// AtomsFunc is called by Atoms if set.
	AtomsFunc func(ctx context.Context, cui string, params umls.AtomParams) ([]core.Atom, error)

	Pages      map[string][][]core.SearchResult
	SearchErrs map[string]map[int]error
	AtomsByCUI map[string][]core.Atom
	AtomErrs   map[string]error

	searchCalls []umls.SearchParams
	atomCalls   []AtomCall
	closed      bool
}

var _ umls.Client = (*MockClient)(nil)

// NewMockClient creates an empty mock client.
// Note: Returns concrete type to allow test assertions.
func NewMockClient() *MockClient {
	return &MockClient{
		Pages:      make(map[string][][]core.SearchResult),
		SearchErrs: make(map[string]map[int]error),
		AtomsByCUI: make(map[string][]core.Atom),
		AtomErrs:   make(map[string]error),
	}
}

// WithPages scripts the pages returned for the given sources filter.
// Page 1 is pages[0].
func (m *MockClient) WithPages(sources string, pages ...[]core.SearchResult) *MockClient {
	m.Pages[sources] = pages
	return m
}

// WithSearchError makes the given page of the given sources filter fail.
func (m *MockClient) WithSearchError(sources string, page int, err error) *MockClient {
	if m.SearchErrs[sources] == nil {
		m.SearchErrs[sources] = make(map[int]error)
	}
	m.SearchErrs[sources][page] = err
	return m
}

// WithAtoms scripts the atoms returned for cui.
func (m *MockClient) WithAtoms(cui string, atoms ...core.Atom) *MockClient {
	m.AtomsByCUI[cui] = atoms
	return m
}

// WithAtomError makes the atoms request for cui fail.
func (m *MockClient) WithAtomError(cui string, err error) *MockClient {
	m.AtomErrs[cui] = err
	return m
}

// Search returns the scripted page for params.
func (m *MockClient) Search(ctx context.Context, params umls.SearchParams) ([]core.SearchResult, error) {
	m.searchCalls = append(m.searchCalls, params)

	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, params)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := params.SourcesParam()
	if err := m.SearchErrs[key][params.PageNumber]; err != nil {
		return nil, err
	}

	pages := m.Pages[key]
	idx := params.PageNumber - 1
	if idx < 0 || idx >= len(pages) {
		return []core.SearchResult{}, nil
	}
	return append([]core.SearchResult(nil), pages[idx]...), nil
}

// Atoms returns the scripted atoms for cui.
func (m *MockClient) Atoms(ctx context.Context, cui string, params umls.AtomParams) ([]core.Atom, error) {
	m.atomCalls = append(m.atomCalls, AtomCall{CUI: cui, Params: params})

	if m.AtomsFunc != nil {
		return m.AtomsFunc(ctx, cui, params)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := m.AtomErrs[cui]; err != nil {
		return nil, err
	}
	atoms, ok := m.AtomsByCUI[cui]
	if !ok {
		return nil, &umls.StatusError{Endpoint: "atoms", StatusCode: 404}
	}
	return append([]core.Atom(nil), atoms...), nil
}

// Close marks the client closed.
func (m *MockClient) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockClient) Closed() bool {
	return m.closed
}

// SearchCalls returns the recorded Search parameters in call order.
func (m *MockClient) SearchCalls() []umls.SearchParams {
	return append([]umls.SearchParams(nil), m.searchCalls...)
}

// AtomCalls returns the recorded Atoms calls in call order.
func (m *MockClient) AtomCalls() []AtomCall {
	return append([]AtomCall(nil), m.atomCalls...)
}

// CallCount returns the number of times any method was called.
func (m *MockClient) CallCount() int {
	return len(m.searchCalls) + len(m.atomCalls)
}

// Reset clears recorded calls and hooks. Scripted data is kept.
func (m *MockClient) Reset() {
	m.searchCalls = nil
	m.atomCalls = nil
	m.closed = false
	m.SearchFunc = nil
	m.AtomsFunc = nil
}
