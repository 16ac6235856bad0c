// Package dataset loads game-entity definitions into the record collection
// the search engine indexes, and fetches dataset dumps into a local cache.
//
// A dataset on disk is either a directory tree of .json files, each holding
// an array of entity objects (the layout game data ships in), or a single
// .json/.json.gz dump containing one array.
package dataset

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"

	"github.com/jdhollis/grimoire/internal/model"
)

// Result holds one loaded record collection and its load statistics.
type Result struct {
	// Records in deterministic order: files sorted lexicographically,
	// entries in file order. The search index depends on this order being
	// reproducible across loads of the same data.
	Records []model.Record

	// Files is the number of JSON files read.
	Files int

	// Skipped counts entries that were not JSON objects and therefore
	// cannot be records. Skipping is not an error.
	Skipped int
}

// Load reads a dataset from path, which may be a directory or a single
// .json / .json.gz file.
func Load(path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("dataset not found: %w", err)
	}

	res := &Result{}
	if !info.IsDir() {
		if err := loadFile(path, res); err != nil {
			return nil, err
		}
		return res, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".json") {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan dataset directory: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		if err := loadFile(f, res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// loadFile decodes one JSON file into res. A file holding a single object
// is accepted as a one-element collection.
func loadFile(path string, res *Result) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("failed to read gzip %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	var root any
	if err := json.NewDecoder(r).Decode(&root); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	res.Files++

	switch v := root.(type) {
	case []any:
		for _, entry := range v {
			if obj, ok := entry.(map[string]any); ok {
				res.Records = append(res.Records, model.NewRecord(obj))
			} else {
				res.Skipped++
			}
		}
	case map[string]any:
		res.Records = append(res.Records, model.NewRecord(v))
	default:
		res.Skipped++
	}
	return nil
}
