package export

import (
	"encoding/json"
	"io"

	"github.com/gofhir/fhir/r4"

	"github.com/poiesic/termfinder/core"
)

// Canonical code system URIs of common source vocabularies.
var systemURIs = map[string]string{
	"HPO":         "http://human-phenotype-ontology.org",
	"SNOMEDCT_US": "http://snomed.info/sct",
	"MSH":         "http://id.nlm.nih.gov/mesh",
	"LNC":         "http://loinc.org",
	"RXNORM":      "http://www.nlm.nih.gov/research/umls/rxnorm",
	"ICD10CM":     "http://hl7.org/fhir/sid/icd-10-cm",
	"OMIM":        "http://www.omim.org",
}

// umlsSystemPrefix is used for vocabularies without a canonical URI.
const umlsSystemPrefix = "http://www.nlm.nih.gov/research/umls/"

// SystemURI returns the FHIR code system URI of a source vocabulary.
func SystemURI(rootSource string) string {
	if uri, ok := systemURIs[rootSource]; ok {
		return uri
	}
	return umlsSystemPrefix + rootSource
}

// ToCodeableConcept converts the atoms of res into a CodeableConcept whose
// text is the search term. Returns nil when res holds no atoms.
func ToCodeableConcept(res *core.Resolution) *r4.CodeableConcept {
	if !res.Found() {
		return nil
	}

	text := res.Request.Term()
	cc := &r4.CodeableConcept{
		Coding: make([]r4.Coding, 0, len(res.Atoms)),
		Text:   &text,
	}
	for _, atom := range res.Atoms {
		system := SystemURI(atom.RootSource)
		code := atom.Code()
		display := atom.Name
		cc.Coding = append(cc.Coding, r4.Coding{
			System:  &system,
			Code:    &code,
			Display: &display,
		})
	}
	return cc
}

// WriteFHIR writes res as an indented FHIR R4 CodeableConcept, or a JSON
// null when res holds no atoms.
func WriteFHIR(w io.Writer, res *core.Resolution) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToCodeableConcept(res))
}
