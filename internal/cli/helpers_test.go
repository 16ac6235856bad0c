package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jdhollis/grimoire/internal/config"
)

func withConfig(t *testing.T, c *config.Config) {
	t.Helper()
	prev := cfg
	cfg = c
	t.Cleanup(func() { cfg = prev })
}

func TestResolveDatasetPathLocal(t *testing.T) {
	withConfig(t, &config.Config{
		DefaultDataset: "stable",
		Datasets: map[string]config.Source{
			"stable": {Path: "/data/stable"},
		},
	})
	datasetFlag = ""

	path, err := resolveDatasetPath()
	if err != nil {
		t.Fatalf("resolveDatasetPath() error: %v", err)
	}
	if path != "/data/stable" {
		t.Errorf("path = %q, want /data/stable", path)
	}
}

func TestResolveDatasetPathUnknown(t *testing.T) {
	withConfig(t, &config.Config{})
	datasetFlag = "nope"
	t.Cleanup(func() { datasetFlag = "" })

	if _, err := resolveDatasetPath(); err == nil {
		t.Error("expected error for unknown dataset")
	}
}

func TestResolveDatasetPathUnfetchedURL(t *testing.T) {
	withConfig(t, &config.Config{
		DefaultDataset: "nightly",
		CacheDir:       t.TempDir(),
		Datasets: map[string]config.Source{
			"nightly": {URL: "https://example.com/all.json.gz"},
		},
	})
	datasetFlag = ""

	_, err := resolveDatasetPath()
	if err == nil {
		t.Fatal("expected error for unfetched url-backed dataset")
	}
	if !strings.Contains(err.Error(), "grim data fetch") {
		t.Errorf("error lacks fetch hint: %v", err)
	}
}

func TestResolveDatasetPathFetchedURL(t *testing.T) {
	cacheDir := t.TempDir()
	dumpDir := filepath.Join(cacheDir, "nightly")
	if err := os.MkdirAll(dumpDir, 0o755); err != nil {
		t.Fatal(err)
	}
	dump := filepath.Join(dumpDir, "abc123.json")
	if err := os.WriteFile(dump, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}

	withConfig(t, &config.Config{
		DefaultDataset: "nightly",
		CacheDir:       cacheDir,
		Datasets: map[string]config.Source{
			"nightly": {URL: "https://example.com/all.json.gz"},
		},
	})
	datasetFlag = ""

	path, err := resolveDatasetPath()
	if err != nil {
		t.Fatalf("resolveDatasetPath() error: %v", err)
	}
	if path != dump {
		t.Errorf("path = %q, want %q", path, dump)
	}
}
