package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
default_dataset = "stable"
cache_dir = "/tmp/grim-cache"

[datasets.stable]
path = "/data/game/json"

[datasets.nightly]
url = "https://example.com/all.json.gz"

[ui]
accent = "#A78BFA"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.DefaultDataset != "stable" {
		t.Errorf("DefaultDataset = %q, want stable", cfg.DefaultDataset)
	}
	if cfg.Datasets["stable"].Path != "/data/game/json" {
		t.Errorf("stable path = %q", cfg.Datasets["stable"].Path)
	}
	if cfg.Datasets["nightly"].URL != "https://example.com/all.json.gz" {
		t.Errorf("nightly url = %q", cfg.Datasets["nightly"].URL)
	}
	if cfg.UI.Accent != "#A78BFA" {
		t.Errorf("UI.Accent = %q", cfg.UI.Accent)
	}
	if got := cfg.ResolveCacheDir(); got != "/tmp/grim-cache" {
		t.Errorf("ResolveCacheDir() = %q", got)
	}
	if got := cfg.ResolveHistoryPath(); got != filepath.Join("/tmp/grim-cache", "history.db") {
		t.Errorf("ResolveHistoryPath() = %q", got)
	}
}

func TestLoadFromInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [ valid toml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error for invalid toml")
	}
}

func TestGetDataset(t *testing.T) {
	cfg := &Config{
		DefaultDataset: "stable",
		Datasets: map[string]Source{
			"stable":  {Path: "/data/stable"},
			"nightly": {URL: "https://example.com/n.json"},
		},
	}

	name, src, err := cfg.GetDataset("")
	if err != nil {
		t.Fatalf("GetDataset(\"\") error: %v", err)
	}
	if name != "stable" || src.Path != "/data/stable" {
		t.Errorf("default dataset = %q %+v", name, src)
	}

	if _, _, err := cfg.GetDataset("missing"); err == nil {
		t.Error("expected error for unknown dataset")
	}

	empty := &Config{}
	if _, _, err := empty.GetDataset(""); err == nil {
		t.Error("expected error with no default dataset")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := &Config{
		DefaultDataset: "stable",
		Datasets: map[string]Source{
			"stable": {Path: "/data/stable"},
		},
		UI: UIConfig{Accent: "141"},
	}

	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if loaded.DefaultDataset != "stable" || loaded.UI.Accent != "141" {
		t.Errorf("reloaded config = %+v", loaded)
	}
	if loaded.Datasets["stable"].Path != "/data/stable" {
		t.Errorf("reloaded datasets = %+v", loaded.Datasets)
	}

	// Empty optional fields are omitted from the file entirely.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), "history_path") {
		t.Error("empty history_path persisted")
	}
}

func TestSaveToEmptyPath(t *testing.T) {
	if err := SaveTo("  ", &Config{}); err == nil {
		t.Error("expected error for empty path")
	}
}
