package history

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state", "history.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndRecent(t *testing.T) {
	s := openTestStore(t)

	queries := []struct {
		query   string
		matches int
	}{
		{"type:furniture", 42},
		{"id:f_alien EMITTER", 1},
		{"'EMITT'", 0},
	}
	for _, q := range queries {
		if err := s.Append(q.query, q.matches); err != nil {
			t.Fatalf("Append(%q) error: %v", q.query, err)
		}
	}

	entries, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	// Newest first.
	if entries[0].Query != "'EMITT'" || entries[0].Matches != 0 {
		t.Errorf("entries[0] = %+v, want 'EMITT' with 0 matches", entries[0])
	}
	if entries[2].Query != "type:furniture" {
		t.Errorf("entries[2].Query = %q, want type:furniture", entries[2].Query)
	}
	if entries[0].ExecutedAt.IsZero() {
		t.Error("ExecutedAt not recorded")
	}
}

func TestRecentLimit(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 5; i++ {
		if err := s.Append("q", i); err != nil {
			t.Fatal(err)
		}
	}
	entries, err := s.Recent(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("len(entries) = %d, want 2", len(entries))
	}
}

func TestClear(t *testing.T) {
	s := openTestStore(t)
	if err := s.Append("type:TOOL", 7); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	entries, err := s.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d after Clear, want 0", len(entries))
	}
}

func TestReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Append("rock", 2); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	entries, err := s.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Query != "rock" {
		t.Errorf("entries = %+v, want persisted rock query", entries)
	}
}
