package search

import (
	"sort"
	"strings"

	"github.com/jdhollis/grimoire/internal/model"
)

// Evaluate resolves query against one record collection and the index built
// from it. The result is the ascending, deduplicated list of positions of
// records matching every term (implicit AND). An empty query matches all
// records.
//
// The caller must pass the exact collection the index was built from;
// positions in the index are meaningless against any other slice. Catalog
// enforces this pairing.
func Evaluate(idx *Index, records []model.Record, query string) []int {
	terms := ParseQuery(query)
	if len(terms) == 0 {
		all := make([]int, len(records))
		for i := range records {
			all[i] = i
		}
		return all
	}

	var result map[int]struct{}
	for _, term := range terms {
		matched := resolveTerm(idx, records, term)
		if result == nil {
			result = matched
		} else {
			result = intersect(result, matched)
		}
		// AND over an empty set stays empty; later terms cannot add.
		if len(result) == 0 {
			return []int{}
		}
	}

	out := make([]int, 0, len(result))
	for i := range result {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// resolveTerm produces the set of record positions matching one term.
//
// Classifiers id/abstract/i, type/t, and category/c are served by the fast
// indices. Any other classifier is treated as a dot-separated field path
// and resolved by walking every record's tree. A bare inexact term is a
// substring scan over the word-index keys; a bare exact term falls back to
// comparing every value in every record.
func resolveTerm(idx *Index, records []model.Record, term Term) map[int]struct{} {
	switch term.Classifier {
	case "":
		if term.Exact {
			return scanRecords(records, func(r model.Record) bool {
				return matchValue(r.Value, term.Pattern, true)
			})
		}
		return lookup(idx.words, term.Pattern, false)
	case "id", "abstract", "i":
		return lookup(idx.byID, term.Pattern, term.Exact)
	case "type", "t":
		return lookup(idx.byType, term.Pattern, term.Exact)
	case "category", "c":
		return lookup(idx.byCategory, term.Pattern, term.Exact)
	default:
		path := strings.Split(term.Classifier, ".")
		return scanRecords(records, func(r model.Record) bool {
			return matchPath(r.Value, path, term.Pattern, term.Exact)
		})
	}
}

// scanRecords is the slow path: apply match to every record in turn.
func scanRecords(records []model.Record, match func(model.Record) bool) map[int]struct{} {
	out := make(map[int]struct{})
	for i, rec := range records {
		if match(rec) {
			out[i] = struct{}{}
		}
	}
	return out
}

// intersect returns a AND b, iterating the smaller side.
func intersect(a, b map[int]struct{}) map[int]struct{} {
	if len(b) < len(a) {
		a, b = b, a
	}
	out := make(map[int]struct{}, len(a))
	for i := range a {
		if _, ok := b[i]; ok {
			out[i] = struct{}{}
		}
	}
	return out
}
