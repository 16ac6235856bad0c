// Package search implements the indexing and query-evaluation engine: an
// inverted index over a record collection, a query-term parser, and the
// evaluator that resolves a free-text query to a sorted set of record
// positions.
package search

import (
	"strings"
	"unicode"
)

// minTokenLen is the shortest token admitted to the word index.
const minTokenLen = 2

// isTokenRune reports whether r belongs inside a token. Everything else is a
// split boundary.
func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-'
}

// tokenize lower-cases text and splits it into tokens on any rune that is
// not alphanumeric, '_', or '-'. Tokens shorter than minTokenLen are
// dropped. The result may contain duplicates; callers dedupe per record.
func tokenize(text string) []string {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isTokenRune(r)
	})
	out := words[:0]
	for _, w := range words {
		if len(w) >= minTokenLen {
			out = append(out, w)
		}
	}
	return out
}

// tokenizeInto tokenizes text and adds each token to set, deduplicating
// across all strings accumulated for one record.
func tokenizeInto(set map[string]struct{}, text string) {
	for _, w := range tokenize(text) {
		set[w] = struct{}{}
	}
}
