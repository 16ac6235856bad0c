// Package model defines the record type indexed and returned by the search
// engine: one game-entity definition, normalized to a resolved id/type pair
// plus its full JSON tree.
package model

import "strconv"

// Record represents one entry of the browsed dataset.
//
// Value is the decoded JSON tree (map[string]any, []any, string, float64,
// bool, nil) and is immutable after load. ID and Type are resolved once at
// construction and cached; they must never diverge from what Value would
// yield if re-read, which holds because Value is never mutated post-load.
type Record struct {
	// Value is the full tree-structured definition.
	Value any `json:"value"`

	// ID is the resolved identifier: the top-level "id" field if it is a
	// non-empty string, else the "abstract" field, else "".
	ID string `json:"id"`

	// Type is the top-level "type" field, or "" if absent.
	Type string `json:"type"`
}

// NewRecord builds a Record from a decoded JSON value, resolving the
// identifier and type fields.
func NewRecord(value any) Record {
	return Record{
		Value: value,
		ID:    resolveID(value),
		Type:  StringField(value, "type"),
	}
}

// Category returns the record's top-level "category" field, or "" if absent.
// Kept as a method rather than a cached field because only the index builder
// reads it.
func (r Record) Category() string {
	return StringField(r.Value, "category")
}

// StringField returns the named top-level field of value if value is an
// object and the field holds a string. Returns "" otherwise.
func StringField(value any, name string) string {
	obj, ok := value.(map[string]any)
	if !ok {
		return ""
	}
	s, _ := obj[name].(string)
	return s
}

func resolveID(value any) string {
	if id := StringField(value, "id"); id != "" {
		return id
	}
	return StringField(value, "abstract")
}

// FormatNumber renders a JSON number the way the matcher and display layers
// compare it: the shortest decimal string that round-trips the float64.
// Integral values render without a fractional part ("30", not "30.000000").
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
