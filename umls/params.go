package umls

import (
	"net/url"
	"strconv"
	"strings"
)

// Search parameter values understood by UTS.
const (
	InputTypeAtom     = "atom"
	InputTypeCode     = "code"
	SearchTypeWords   = "words"
	SearchTypeExact   = "exact"
	TermTypePreferred = "PT"
)

// SearchParams describes a single search request. It is a value type;
// build a new one for every call.
type SearchParams struct {
	Term          string
	PageNumber    int
	InputType     string
	SearchType    string
	PartialSearch bool
	Sources       []string // Empty means unrestricted
}

// UnrestrictedSearch returns the parameters of an unrestricted words search
// over atoms for the given page.
func UnrestrictedSearch(term string, page int) SearchParams {
	return SearchParams{
		Term:          term,
		PageNumber:    page,
		InputType:     InputTypeAtom,
		SearchType:    SearchTypeWords,
		PartialSearch: true,
	}
}

// Restricted returns a copy of p limited to the given source vocabularies.
func (p SearchParams) Restricted(sources ...string) SearchParams {
	p.Sources = append([]string(nil), sources...)
	return p
}

// SourcesParam renders the sabs query value.
func (p SearchParams) SourcesParam() string {
	return strings.Join(p.Sources, ",")
}

// Values renders the parameters into a fresh url.Values carrying apiKey.
func (p SearchParams) Values(apiKey string) url.Values {
	v := url.Values{}
	v.Set("string", p.Term)
	if p.PageNumber > 0 {
		v.Set("pageNumber", strconv.Itoa(p.PageNumber))
	}
	if p.InputType != "" {
		v.Set("inputType", p.InputType)
	}
	if p.SearchType != "" {
		v.Set("searchType", p.SearchType)
	}
	v.Set("partialSearch", strconv.FormatBool(p.PartialSearch))
	v.Set("sabs", p.SourcesParam())
	v.Set("apiKey", apiKey)
	return v
}

// AtomParams describes a single atoms request.
type AtomParams struct {
	TermTypes []string
	Sources   []string
}

// PreferredTerms returns parameters selecting preferred-term atoms from the
// given source vocabularies.
func PreferredTerms(sources ...string) AtomParams {
	return AtomParams{
		TermTypes: []string{TermTypePreferred},
		Sources:   append([]string(nil), sources...),
	}
}

// Values renders the parameters into a fresh url.Values carrying apiKey.
func (p AtomParams) Values(apiKey string) url.Values {
	v := url.Values{}
	if len(p.TermTypes) > 0 {
		v.Set("ttys", strings.Join(p.TermTypes, ","))
	}
	if len(p.Sources) > 0 {
		v.Set("sabs", strings.Join(p.Sources, ","))
	}
	v.Set("apiKey", apiKey)
	return v
}
