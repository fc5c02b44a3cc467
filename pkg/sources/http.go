package sources

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agentstation/skymap/pkg/constants"
	"github.com/agentstation/skymap/pkg/errors"
	"github.com/agentstation/skymap/pkg/logging"
)

// DefaultURLs maps each logical source to its download location.
// URLs ending in .gz are decompressed transparently after download.
var DefaultURLs = map[Name]string{
	Primary:          "https://cdsarc.cds.unistra.fr/ftp/I/149A/fk5.dat.gz",
	BrightStars:      "https://cdsarc.cds.unistra.fr/ftp/V/50/catalog.gz",
	BrightStarNotes:  "https://cdsarc.cds.unistra.fr/ftp/V/50/notes.gz",
	Astrometry:       "https://cdsarc.cds.unistra.fr/ftp/I/239/hip_main.dat.gz",
	DeepSkyNames:     "https://cdsarc.cds.unistra.fr/ftp/VII/118/names.dat.gz",
	DeepSkyPositions: "https://cdsarc.cds.unistra.fr/ftp/VII/118/ngc2000.dat.gz",
}

// HTTPProvider downloads catalog sources over HTTP with an on-disk cache.
// A cached file younger than TTL is served without touching the network.
type HTTPProvider struct {
	CacheDir string
	URLs     map[Name]string
	TTL      time.Duration
	Client   *http.Client
}

// NewHTTPProvider creates a provider caching downloads under cacheDir.
func NewHTTPProvider(cacheDir string) *HTTPProvider {
	return &HTTPProvider{
		CacheDir: cacheDir,
		URLs:     DefaultURLs,
		TTL:      constants.DefaultCacheTTL,
		Client:   &http.Client{Timeout: constants.DefaultHTTPTimeout},
	}
}

// Fetch returns the decompressed text of the named source, downloading and
// caching it if the cache is missing or stale.
func (p *HTTPProvider) Fetch(ctx context.Context, name Name) (string, error) {
	url, ok := p.URLs[name]
	if !ok {
		return "", errors.WrapSource(string(name), "", errors.ErrNotFound)
	}

	if err := os.MkdirAll(p.CacheDir, constants.DirPermissions); err != nil {
		return "", errors.WrapIO("create", p.CacheDir, err)
	}

	path := p.cachePath(name)
	if !p.cacheValid(path) {
		if err := p.download(ctx, name, url, path); err != nil {
			return "", err
		}
	} else {
		logging.Ctx(ctx).Debug().Str("source", string(name)).Msg("Using cached source")
	}

	// A read failure on an already-cached source is fatal to the build.
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WrapIO("read", path, err)
	}
	return string(data), nil
}

// download fetches url and atomically installs the decompressed text at path.
func (p *HTTPProvider) download(ctx context.Context, name Name, url, path string) error {
	logging.Ctx(ctx).Info().Str("source", string(name)).Str("url", url).Msg("Downloading source")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.WrapSource(string(name), url, err)
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return &errors.SourceError{
			Source:  string(name),
			URL:     url,
			Message: "download failed",
			Err:     err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &errors.SourceError{
			Source:     string(name),
			URL:        url,
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
		}
	}

	var body io.Reader = resp.Body
	if strings.HasSuffix(url, ".gz") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return errors.WrapSource(string(name), url, err)
		}
		defer func() { _ = gz.Close() }()
		body = gz
	}

	tempFile, err := os.CreateTemp(p.CacheDir, string(name)+"_*.tmp")
	if err != nil {
		return errors.WrapIO("create", "temp file", err)
	}
	defer func() { _ = tempFile.Close() }()
	tempPath := tempFile.Name()

	if _, err := io.Copy(tempFile, body); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("write", path, err)
	}

	// Atomically move temp file to final location
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return errors.WrapIO("move", path, err)
	}

	return nil
}

// cachePath returns the on-disk location of a source's cached text.
func (p *HTTPProvider) cachePath(name Name) string {
	return filepath.Join(p.CacheDir, string(name)+".dat")
}

// cacheValid reports whether the cached file exists and is fresh.
func (p *HTTPProvider) cacheValid(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return time.Since(info.ModTime()) < p.TTL
}
