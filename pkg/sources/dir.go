package sources

import (
	"context"
	"os"
	"path/filepath"

	"github.com/agentstation/skymap/pkg/errors"
)

// DirProvider serves sources from plain files in a local directory,
// named <source>.dat. Used for offline builds and tests.
type DirProvider struct {
	Dir string
}

// NewDirProvider creates a provider reading from dir.
func NewDirProvider(dir string) *DirProvider {
	return &DirProvider{Dir: dir}
}

// Fetch reads the named source file from the directory.
func (p *DirProvider) Fetch(_ context.Context, name Name) (string, error) {
	path := filepath.Join(p.Dir, string(name)+".dat")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.WrapSource(string(name), path, errors.ErrNotFound)
		}
		return "", errors.WrapIO("read", path, err)
	}
	return string(data), nil
}
