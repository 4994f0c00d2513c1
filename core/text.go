package core

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeTerm applies NFKC normalization, drops control characters and
// collapses runs of whitespace into single spaces.
func NormalizeTerm(term string) string {
	normed := norm.NFKC.String(term)
	normed = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, normed)
	return strings.Join(strings.Fields(normed), " ")
}
