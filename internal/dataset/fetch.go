package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/klauspost/compress/gzip"
	"github.com/zeebo/xxh3"

	"github.com/jdhollis/grimoire/internal/atomicfile"
)

// fetchClient is the HTTP client used for dataset downloads. Overridable in
// tests.
var fetchClient = &http.Client{Timeout: 5 * time.Minute}

// Fetch downloads a dataset dump and stores it in the local cache,
// returning the path of the cached file.
//
// The cache is content-addressed: the decompressed payload is fingerprinted
// with xxh3 and stored as cache/<slug(version)>/<fingerprint>.json, so
// re-fetching unchanged data rewrites nothing and older fingerprints remain
// usable until pruned. version is a human dataset label (e.g. a game
// release tag) and is slugified into a safe directory component.
func Fetch(ctx context.Context, url, version, cacheDir string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("invalid dataset URL: %w", err)
	}

	resp, err := fetchClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("dataset download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("dataset download failed: %s returned %s", url, resp.Status)
	}

	var body io.Reader = resp.Body
	if strings.HasSuffix(url, ".gz") && resp.Header.Get("Content-Encoding") == "" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return "", fmt.Errorf("dataset is not valid gzip: %w", err)
		}
		defer gz.Close()
		body = gz
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("dataset download failed: %w", err)
	}

	dir := filepath.Join(cacheDir, slug.Make(version))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%016x.json", xxh3.Hash(data)))
	if _, err := os.Stat(path); err == nil {
		// Fingerprint hit: identical payload already cached. Touch it so
		// LatestCached treats it as the current dump.
		now := time.Now()
		_ = os.Chtimes(path, now, now)
		return path, nil
	}

	if err := atomicfile.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write cache entry: %w", err)
	}
	return path, nil
}
