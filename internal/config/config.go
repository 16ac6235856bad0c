// Package config handles global Grimoire configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global Grimoire configuration.
type Config struct {
	// DefaultDataset is the name of the dataset used when no --dataset
	// flag is given (a key of Datasets).
	DefaultDataset string `toml:"default_dataset"`

	// Datasets maps dataset names to their sources.
	Datasets map[string]Source `toml:"datasets"`

	// CacheDir overrides the download cache location
	// (default: <user cache dir>/grimoire).
	CacheDir string `toml:"cache_dir"`

	// HistoryPath overrides the query-history database location
	// (default: <user cache dir>/grimoire/history.db).
	HistoryPath string `toml:"history_path"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// Source describes where one dataset's records come from: a local path
// (directory of .json files or a single dump) or a URL to fetch.
type Source struct {
	// Path is a local dataset directory or dump file.
	Path string `toml:"path,omitempty"`

	// URL is a remote dump to fetch into the cache ('grim data fetch').
	URL string `toml:"url,omitempty"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output and rendered
	// docs. Supported values are ANSI color codes ("0" to "255") or hex
	// colors ("#RRGGBB").
	Accent string `toml:"accent"`

	// CodeTheme sets the Glamour/Chroma theme used for code blocks in
	// rendered docs. Example values: "monokai", "dracula", "github".
	CodeTheme string `toml:"code_theme"`
}

// GetDataset returns the source for the named dataset. If name is empty,
// the default dataset is used.
func (c *Config) GetDataset(name string) (string, Source, error) {
	if name == "" {
		name = c.DefaultDataset
	}
	if name == "" {
		return "", Source{}, fmt.Errorf("no dataset specified and no default_dataset configured")
	}
	src, ok := c.Datasets[name]
	if !ok {
		return "", Source{}, fmt.Errorf("dataset '%s' not found in config", name)
	}
	return name, src, nil
}

// ResolveCacheDir returns the download cache directory.
func (c *Config) ResolveCacheDir() string {
	if c.CacheDir != "" {
		return c.CacheDir
	}
	base, err := os.UserCacheDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "grimoire")
}

// ResolveHistoryPath returns the query-history database path.
func (c *Config) ResolveHistoryPath() string {
	if c.HistoryPath != "" {
		return c.HistoryPath
	}
	return filepath.Join(c.ResolveCacheDir(), "history.db")
}

// Load loads the configuration from the default location.
// Returns a zero-value config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, "grimoire", "config.toml")
}
