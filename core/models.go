package core

import (
	"encoding/binary"
	"net/url"
	"slices"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// LookupID is a deterministic identifier for a single lookup.
// It is used to correlate the log lines of one resolution.
type LookupID uint64

// Default source vocabularies used when a request carries no filter.
const (
	SourceHPO        = "HPO"
	SourceSNOMEDCTUS = "SNOMEDCT_US"
)

// DefaultSources returns the source vocabularies atoms are restricted to
// when a request does not name any.
func DefaultSources() []string {
	return []string{SourceHPO, SourceSNOMEDCTUS}
}

// SearchResult is a single hit of the remote search index.
type SearchResult struct {
	UI         string // Concept identifier (CUI)
	Name       string
	RootSource string // Empty when the remote omits it
	URI        string
}

// CandidateList is an ordered list of concept identifiers.
// Order is the relevance order returned by the remote service.
// Duplicates across search passes are kept.
type CandidateList []string

// Unique returns a copy of the list with later duplicates removed.
func (c CandidateList) Unique() CandidateList {
	seen := make(map[string]bool, len(c))
	out := make(CandidateList, 0, len(c))
	for _, ui := range c {
		if seen[ui] {
			continue
		}
		seen[ui] = true
		out = append(out, ui)
	}
	return out
}

// Atom is one source-vocabulary specific term of a concept.
type Atom struct {
	Name       string
	CodeURL    string // URL whose final path segment is the code
	RootSource string
	TermType   string
	Language   string
}

// Code returns the human-usable code value of the atom.
func (a Atom) Code() string {
	return CodeFromURL(a.CodeURL)
}

// CodeFromURL returns the last non-empty path segment of a URL.
// "https://host/x/HP:0001519" and "https://host/x/HP:0001519/" both yield
// "HP:0001519". Input that does not parse as a URL is split on '/'.
func CodeFromURL(raw string) string {
	path := raw
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		path = u.Path
	}
	path = strings.TrimRight(path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

// ResolutionRequest is the input to a lookup. Construct it with
// NewResolutionRequest; it is not modified afterwards.
type ResolutionRequest struct {
	term    string
	sources []string
}

// NewResolutionRequest creates a request for term restricted to the given
// source vocabularies. The term is normalized and the sources slice is copied.
func NewResolutionRequest(term string, sources ...string) ResolutionRequest {
	var filter []string
	for _, s := range sources {
		s = strings.TrimSpace(s)
		if s != "" {
			filter = append(filter, s)
		}
	}
	return ResolutionRequest{
		term:    NormalizeTerm(term),
		sources: filter,
	}
}

// Term returns the normalized search term.
func (r ResolutionRequest) Term() string {
	return r.term
}

// Sources returns a copy of the source filter, or DefaultSources when the
// request has none.
func (r ResolutionRequest) Sources() []string {
	if len(r.sources) == 0 {
		return DefaultSources()
	}
	return slices.Clone(r.sources)
}

// HasSourceFilter reports whether the caller supplied an explicit filter.
func (r ResolutionRequest) HasSourceFilter() bool {
	return len(r.sources) > 0
}

// ID returns a deterministic identifier for the request. Requests with the
// same term and the same set of sources share an ID.
func (r ResolutionRequest) ID() LookupID {
	sources := r.Sources()
	slices.Sort(sources)

	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(strings.ToLower(r.term)))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(sources, ",")))
	sum := h.Sum(nil)
	return LookupID(binary.LittleEndian.Uint64(sum))
}

// Resolution is the outcome of one lookup.
type Resolution struct {
	Request    ResolutionRequest
	Candidates CandidateList
	ConceptUI  string // Candidate the atoms belong to; empty when nothing matched
	Atoms      []Atom
}

// Found reports whether the lookup produced any terminology entry.
func (r *Resolution) Found() bool {
	return r != nil && len(r.Atoms) > 0
}
