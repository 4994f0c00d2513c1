package rest

// searchResponse is the raw body of /rest/search/{version}.
type searchResponse struct {
	PageSize   int `json:"pageSize"`
	PageNumber int `json:"pageNumber"`
	Result     struct {
		ClassType string      `json:"classType"`
		Results   []searchHit `json:"results"`
	} `json:"result"`
}

type searchHit struct {
	UI         string `json:"ui"`
	Name       string `json:"name"`
	RootSource string `json:"rootSource"`
	URI        string `json:"uri"`
}

// atomsResponse is the raw body of /rest/content/{version}/CUI/{cui}/atoms.
type atomsResponse struct {
	PageSize   int       `json:"pageSize"`
	PageNumber int       `json:"pageNumber"`
	PageCount  int       `json:"pageCount"`
	Result     []apiAtom `json:"result"`
}

type apiAtom struct {
	UI         string `json:"ui"`
	Name       string `json:"name"`
	Code       string `json:"code"`
	RootSource string `json:"rootSource"`
	TermType   string `json:"termType"`
	Language   string `json:"language"`
}

// noResultsUI is the placeholder hit UTS returns for an exhausted search.
const noResultsUI = "NONE"
