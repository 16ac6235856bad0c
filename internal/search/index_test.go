package search

import (
	"fmt"
	"reflect"
	"sort"
	"testing"

	"github.com/jdhollis/grimoire/internal/model"
)

func rec(value any) model.Record {
	return model.NewRecord(value)
}

func testRecords() []model.Record {
	return []model.Record{
		rec(map[string]any{
			"id":    "f_alien_gasper",
			"type":  "furniture",
			"flags": []any{"EMITTER"},
		}),
		rec(map[string]any{
			"id":       "rock",
			"type":     "GENERIC",
			"category": "spare_parts",
			"name":     map[string]any{"str": "rock", "str_pl": "rocks"},
		}),
		rec(map[string]any{
			"abstract": "base_gun",
			"type":     "GUN",
			"bash":     map[string]any{"str_min": 4.0},
		}),
	}
}

func TestBuildKeyedIndices(t *testing.T) {
	idx := Build(testRecords())

	if got := idx.byID["f_alien_gasper"]; !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("byID[f_alien_gasper] = %v, want [0]", got)
	}
	// Abstract fallback lands in the id index.
	if got := idx.byID["base_gun"]; !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("byID[base_gun] = %v, want [2]", got)
	}
	// Keys are lower-cased.
	if got := idx.byType["generic"]; !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("byType[generic] = %v, want [1]", got)
	}
	if _, ok := idx.byType["GENERIC"]; ok {
		t.Error("byType contains non-lowercased key GENERIC")
	}
	if got := idx.byCategory["spare_parts"]; !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("byCategory[spare_parts] = %v, want [1]", got)
	}
}

func TestBuildWordIndex(t *testing.T) {
	idx := Build(testRecords())

	tests := []struct {
		word string
		want []int
	}{
		{"emitter", []int{0}},        // nested array string, lower-cased
		{"f_alien_gasper", []int{0}}, // id contributes to words
		{"furniture", []int{0}},      // type contributes to words
		{"spare_parts", []int{1}},    // category contributes to words
		{"rocks", []int{1}},          // nested object value
		{"base_gun", []int{2}},       // abstract contributes via id resolution
	}
	for _, tt := range tests {
		if got := idx.words[tt.word]; !reflect.DeepEqual(got, tt.want) {
			t.Errorf("words[%q] = %v, want %v", tt.word, got, tt.want)
		}
	}

	// "rock" appears as id, name.str, and inside "rocks"-adjacent values;
	// per-record dedupe must leave a single posting.
	if got := idx.words["rock"]; !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("words[rock] = %v, want [1]", got)
	}
	// Numbers are not word-indexed.
	if _, ok := idx.words["4"]; ok {
		t.Error("words contains numeric value token")
	}
}

func TestBuildEmptyCollection(t *testing.T) {
	idx := Build(nil)
	if len(idx.byID) != 0 || len(idx.byType) != 0 || len(idx.byCategory) != 0 || len(idx.words) != 0 {
		t.Error("index over empty collection is not empty")
	}
}

func TestBuildDeterministic(t *testing.T) {
	records := testRecords()
	a := Build(records)
	b := Build(records)

	for name, pair := range map[string][2]map[string][]int{
		"byID":       {a.byID, b.byID},
		"byType":     {a.byType, b.byType},
		"byCategory": {a.byCategory, b.byCategory},
		"words":      {a.words, b.words},
	} {
		if !reflect.DeepEqual(pair[0], pair[1]) {
			t.Errorf("%s differs between two builds of the same collection", name)
		}
	}
}

func TestBuildPostingsAscending(t *testing.T) {
	var records []model.Record
	for i := 0; i < 50; i++ {
		records = append(records, rec(map[string]any{
			"id":   fmt.Sprintf("item_%02d", i),
			"type": "GENERIC",
			"name": "widget",
		}))
	}
	idx := Build(records)
	for _, m := range []map[string][]int{idx.byType, idx.words} {
		for key, postings := range m {
			if !sort.IntsAreSorted(postings) {
				t.Errorf("postings for %q not ascending: %v", key, postings)
			}
		}
	}
	if got := len(idx.words["widget"]); got != 50 {
		t.Errorf("words[widget] has %d postings, want 50", got)
	}
}

func TestBuildProgressCadence(t *testing.T) {
	records := make([]model.Record, 1250)
	for i := range records {
		records[i] = rec(map[string]any{"id": fmt.Sprintf("e%d", i), "type": "X1"})
	}

	var calls [][2]int
	BuildProgress(records, func(processed, total int) {
		calls = append(calls, [2]int{processed, total})
	})

	want := [][2]int{{500, 1250}, {1000, 1250}, {1250, 1250}}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("progress calls = %v, want %v", calls, want)
	}
}

func TestBuildProgressFinalRecordAlwaysReported(t *testing.T) {
	records := []model.Record{rec(map[string]any{"id": "only", "type": "X1"})}
	var last [2]int
	BuildProgress(records, func(processed, total int) {
		last = [2]int{processed, total}
	})
	if last != [2]int{1, 1} {
		t.Errorf("final progress = %v, want [1 1]", last)
	}
}
