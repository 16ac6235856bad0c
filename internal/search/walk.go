package search

import (
	"strings"

	"github.com/jdhollis/grimoire/internal/model"
)

// matchValue applies the value-matching rule to one tree node.
//
// Strings: exact means byte equality, inexact means case-insensitive
// substring containment. Numbers, booleans, and null are compared through
// their canonical string forms ("30", "true", "null") with the same
// exact/substring rule. Arrays match if any element matches; objects match
// if any field value matches. Field names are never matched, only values.
func matchValue(value any, pattern string, exact bool) bool {
	switch v := value.(type) {
	case string:
		if exact {
			return v == pattern
		}
		return strings.Contains(strings.ToLower(v), strings.ToLower(pattern))
	case float64:
		return matchScalar(model.FormatNumber(v), pattern, exact)
	case bool:
		if v {
			return matchScalar("true", pattern, exact)
		}
		return matchScalar("false", pattern, exact)
	case nil:
		return matchScalar("null", pattern, exact)
	case []any:
		for _, el := range v {
			if matchValue(el, pattern, exact) {
				return true
			}
		}
	case map[string]any:
		for _, el := range v {
			if matchValue(el, pattern, exact) {
				return true
			}
		}
	}
	return false
}

// matchScalar compares the canonical string form of a non-string scalar.
// Case only matters for the pattern side: the canonical forms are already
// lower-case.
func matchScalar(canonical, pattern string, exact bool) bool {
	if exact {
		return canonical == pattern
	}
	return strings.Contains(canonical, strings.ToLower(pattern))
}

// matchPath navigates value along a dot-separated field path and applies
// matchValue at the destination. At an object, navigation descends into the
// named field and fails for this node if the field is absent. At an array,
// the remaining path is tried against every element independently, so a
// path like "bash.items.count" reaches into an array of objects. An empty
// path means the destination has been reached.
func matchPath(value any, path []string, pattern string, exact bool) bool {
	if len(path) == 0 {
		return matchValue(value, pattern, exact)
	}
	switch v := value.(type) {
	case map[string]any:
		child, ok := v[path[0]]
		if !ok {
			return false
		}
		return matchPath(child, path[1:], pattern, exact)
	case []any:
		for _, el := range v {
			if matchPath(el, path, pattern, exact) {
				return true
			}
		}
	}
	return false
}
