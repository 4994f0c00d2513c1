package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/poiesic/termfinder/core"
)

type jsonDocument struct {
	Term       string     `json:"term"`
	LookupID   string     `json:"lookupId"`
	Sources    []string   `json:"sources"`
	Candidates []string   `json:"candidates"`
	Concept    string     `json:"concept,omitempty"`
	Found      bool       `json:"found"`
	Atoms      []jsonAtom `json:"atoms"`
}

type jsonAtom struct {
	Name       string `json:"name"`
	Code       string `json:"code"`
	RootSource string `json:"rootSource"`
	TermType   string `json:"termType,omitempty"`
	Language   string `json:"language,omitempty"`
}

// WriteJSON writes res as an indented JSON document.
func WriteJSON(w io.Writer, res *core.Resolution) error {
	if res == nil {
		res = &core.Resolution{}
	}

	doc := jsonDocument{
		Term:       res.Request.Term(),
		LookupID:   fmt.Sprintf("%016x", uint64(res.Request.ID())),
		Sources:    res.Request.Sources(),
		Candidates: append([]string{}, res.Candidates...),
		Concept:    res.ConceptUI,
		Found:      res.Found(),
		Atoms:      make([]jsonAtom, 0, len(res.Atoms)),
	}
	for _, a := range res.Atoms {
		doc.Atoms = append(doc.Atoms, jsonAtom{
			Name:       a.Name,
			Code:       a.Code(),
			RootSource: a.RootSource,
			TermType:   a.TermType,
			Language:   a.Language,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
