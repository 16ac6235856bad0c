package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/jdhollis/grimoire/internal/config"
	"github.com/jdhollis/grimoire/internal/dataset"
	"github.com/jdhollis/grimoire/internal/search"
)

// resolveDatasetPath maps the active dataset (--dataset flag or config
// default) to the path its records load from. URL-backed datasets resolve
// to their most recently fetched cache entry.
func resolveDatasetPath() (string, error) {
	name, src, err := cfg.GetDataset(datasetFlag)
	if err != nil {
		return "", fmt.Errorf("%w\n\nAdd datasets to %s or pass --dataset", err, config.DefaultPath())
	}

	if src.Path != "" {
		return src.Path, nil
	}
	if src.URL != "" {
		path, err := dataset.LatestCached(cfg.ResolveCacheDir(), name)
		if err != nil {
			return "", fmt.Errorf("%w\n\nRun 'grim data fetch %s' first", err, name)
		}
		return path, nil
	}
	return "", fmt.Errorf("dataset '%s' has neither path nor url configured", name)
}

// loadCatalog loads the active dataset and builds its search index,
// reporting progress on stderr when attached to a terminal.
func loadCatalog() (*search.Catalog, *dataset.Result, error) {
	path, err := resolveDatasetPath()
	if err != nil {
		return nil, nil, err
	}

	res, err := dataset.Load(path)
	if err != nil {
		return nil, nil, err
	}

	var progress search.ProgressFunc
	showProgress := !jsonOutput && isatty.IsTerminal(os.Stderr.Fd())
	if showProgress {
		progress = func(processed, total int) {
			fmt.Fprintf(os.Stderr, "\rIndexing %d/%d records...", processed, total)
		}
	}

	catalog := search.NewCatalog(res.Records, progress)
	if showProgress && len(res.Records) > 0 {
		// Clear the progress line.
		fmt.Fprintf(os.Stderr, "\r%*s\r", 40, "")
	}
	return catalog, res, nil
}
