package search

import (
	"strings"

	"github.com/jdhollis/grimoire/internal/model"
)

// progressEvery is how many records are processed between progress
// callbacks during a build.
const progressEvery = 500

// ProgressFunc receives build progress: processed records so far out of
// total. Invoked every progressEvery records and once on the final record.
type ProgressFunc func(processed, total int)

// Index holds four inverted mappings over one record collection, all keyed
// by lower-cased strings. Values are ascending slices of record positions.
// Positions are indices into the collection the index was built from, not
// stable identifiers: an Index must only ever be queried against that exact
// collection, and both are replaced together on reload (see Catalog).
type Index struct {
	byID       map[string][]int
	byType     map[string][]int
	byCategory map[string][]int

	// words maps every token (length >= 2, lower-cased, split on
	// non-alphanumeric/_/- boundaries) found in any string anywhere in a
	// record's tree, plus tokens from the id, type, and category fields.
	words map[string][]int
}

// Build constructs the index for records in one pass.
func Build(records []model.Record) *Index {
	return BuildProgress(records, nil)
}

// BuildProgress constructs the index, invoking progress at a bounded
// cadence so a caller can render an indicator during large builds. A nil
// progress function is allowed.
//
// Building is deterministic: two builds over the same collection produce
// identical key sets and identical posting lists per key.
func BuildProgress(records []model.Record, progress ProgressFunc) *Index {
	idx := &Index{
		byID:       make(map[string][]int),
		byType:     make(map[string][]int),
		byCategory: make(map[string][]int),
		words:      make(map[string][]int),
	}

	total := len(records)
	wordSet := make(map[string]struct{})

	for i, rec := range records {
		clear(wordSet)

		if rec.ID != "" {
			key := strings.ToLower(rec.ID)
			idx.byID[key] = append(idx.byID[key], i)
			tokenizeInto(wordSet, rec.ID)
		}
		if rec.Type != "" {
			key := strings.ToLower(rec.Type)
			idx.byType[key] = append(idx.byType[key], i)
			tokenizeInto(wordSet, rec.Type)
		}
		if cat := rec.Category(); cat != "" {
			key := strings.ToLower(cat)
			idx.byCategory[key] = append(idx.byCategory[key], i)
			tokenizeInto(wordSet, cat)
		}

		collectWords(wordSet, rec.Value)

		for w := range wordSet {
			idx.words[w] = append(idx.words[w], i)
		}

		if progress != nil && ((i+1)%progressEvery == 0 || i+1 == total) {
			progress(i+1, total)
		}
	}

	return idx
}

// collectWords walks value and tokenizes every string it finds, recursing
// through arrays and object values. Numbers, booleans, and null contribute
// nothing to the word index.
func collectWords(set map[string]struct{}, value any) {
	switch v := value.(type) {
	case string:
		tokenizeInto(set, v)
	case []any:
		for _, el := range v {
			collectWords(set, el)
		}
	case map[string]any:
		for _, el := range v {
			collectWords(set, el)
		}
	}
}

// lookup resolves one keyed mapping per the fast-index rule: exact terms do
// a direct lookup of the lower-cased pattern; inexact terms scan every key
// and union the posting lists of keys containing the pattern as a
// substring. The scan is O(distinct keys), which stays cheap because key
// cardinality is far below record count.
func lookup(m map[string][]int, pattern string, exact bool) map[int]struct{} {
	pattern = strings.ToLower(pattern)
	out := make(map[int]struct{})
	if exact {
		for _, i := range m[pattern] {
			out[i] = struct{}{}
		}
		return out
	}
	for key, postings := range m {
		if strings.Contains(key, pattern) {
			for _, i := range postings {
				out[i] = struct{}{}
			}
		}
	}
	return out
}
