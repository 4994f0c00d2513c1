package umls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnrestrictedSearchValues(t *testing.T) {
	params := UnrestrictedSearch("Marfan syndrome", 1)

	v := params.Values("key")

	assert.Equal(t, "Marfan syndrome", v.Get("string"))
	assert.Equal(t, "1", v.Get("pageNumber"))
	assert.Equal(t, "atom", v.Get("inputType"))
	assert.Equal(t, "words", v.Get("searchType"))
	assert.Equal(t, "true", v.Get("partialSearch"))
	assert.Equal(t, "key", v.Get("apiKey"))
	assert.True(t, v.Has("sabs"))
	assert.Empty(t, v.Get("sabs"))
}

func TestSearchParamsRestricted(t *testing.T) {
	base := UnrestrictedSearch("Marfan syndrome", 1)
	sources := []string{"MTH", "MSH"}

	restricted := base.Restricted(sources...)
	sources[0] = "LNC"

	assert.Equal(t, "MTH,MSH", restricted.Values("key").Get("sabs"))
	assert.Empty(t, base.Sources, "original params are untouched")
	assert.Equal(t, base.Term, restricted.Term)
}

func TestSearchValuesAreFreshPerCall(t *testing.T) {
	params := UnrestrictedSearch("fever", 2)

	first := params.Values("key")
	first.Set("string", "mutated")
	first.Set("extra", "x")

	second := params.Values("key")
	assert.Equal(t, "fever", second.Get("string"))
	assert.False(t, second.Has("extra"))
}

func TestPreferredTermsValues(t *testing.T) {
	t.Run("with sources", func(t *testing.T) {
		v := PreferredTerms("HPO", "SNOMEDCT_US").Values("key")

		assert.Equal(t, "PT", v.Get("ttys"))
		assert.Equal(t, "HPO,SNOMEDCT_US", v.Get("sabs"))
		assert.Equal(t, "key", v.Get("apiKey"))
	})

	t.Run("without sources", func(t *testing.T) {
		v := PreferredTerms().Values("key")

		assert.Equal(t, "PT", v.Get("ttys"))
		assert.False(t, v.Has("sabs"))
	})
}
