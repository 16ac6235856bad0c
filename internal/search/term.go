package search

import "strings"

// Term is one parsed query token. Terms are ephemeral: built by the parser,
// consumed immediately by the evaluator, never stored.
type Term struct {
	// Classifier is the field selector before the first ':', e.g. "id",
	// "type", or a dot path like "bash.str_min". Empty when the token has
	// no ':'.
	Classifier string

	// Pattern is the text to match.
	Pattern string

	// Exact is true when the pattern was wrapped in single quotes,
	// requiring equality rather than substring containment.
	Exact bool
}

// ParseTerm parses one whitespace-free query token. It is total: every
// input produces a Term, never an error.
func ParseTerm(token string) Term {
	var t Term
	value := token
	if i := strings.IndexByte(token, ':'); i >= 0 {
		t.Classifier = token[:i]
		value = token[i+1:]
	}
	t.Pattern, t.Exact = stripQuotes(value)
	return t
}

// ParseQuery splits a free-text query on whitespace and parses each token
// independently. An empty or all-whitespace query yields no terms.
func ParseQuery(query string) []Term {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return nil
	}
	terms := make([]Term, len(fields))
	for i, f := range fields {
		terms[i] = ParseTerm(f)
	}
	return terms
}

// stripQuotes unwraps a matching pair of single quotes. A value counts as
// quoted only when it both starts and ends with ' and is at least two bytes
// long, so a lone "'" stays literal.
func stripQuotes(value string) (pattern string, exact bool) {
	if len(value) >= 2 && value[0] == '\'' && value[len(value)-1] == '\'' {
		return value[1 : len(value)-1], true
	}
	return value, false
}
