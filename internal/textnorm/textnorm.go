// Package textnorm implements the case- and accent-insensitive text matching
// used by the dashboard search boxes.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases text and strips diacritics ("Dívida" -> "divida").
func Normalize(value string) string {
	out, _, err := transform.String(stripMarks, value)
	if err != nil {
		out = value
	}
	return strings.ToLower(out)
}

// Tokens splits a query into normalized whitespace-separated tokens,
// dropping empties.
func Tokens(query string) []string {
	return strings.Fields(Normalize(query))
}

// Matches reports whether every query token is a substring of the normalized
// haystack. AND semantics: precision over recall. An empty query matches
// everything.
func Matches(query, haystack string) bool {
	tokens := Tokens(query)
	if len(tokens) == 0 {
		return true
	}
	blob := Normalize(haystack)
	for _, token := range tokens {
		if !strings.Contains(blob, token) {
			return false
		}
	}
	return true
}
