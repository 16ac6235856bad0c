package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
)

// LatestCached returns the most recently fetched dump for the named
// dataset, the one a search should load when the dataset is URL-backed.
func LatestCached(cacheDir, name string) (string, error) {
	dir := filepath.Join(cacheDir, slug.Make(name))
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("dataset '%s' has not been fetched yet: %w", name, err)
	}

	var newest string
	var newestMod int64
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if mod := info.ModTime().UnixNano(); newest == "" || mod > newestMod {
			newest = filepath.Join(dir, e.Name())
			newestMod = mod
		}
	}
	if newest == "" {
		return "", fmt.Errorf("dataset '%s' has no cached dumps in %s", name, dir)
	}
	return newest, nil
}
