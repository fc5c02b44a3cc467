package build

import (
	"os"
	"path/filepath"

	"github.com/agentstation/skymap/pkg/binfile"
	"github.com/agentstation/skymap/pkg/catalog"
	"github.com/agentstation/skymap/pkg/constants"
	"github.com/agentstation/skymap/pkg/errors"
)

// WriteCatalog serializes the reconciled registry to path. The file is
// written to a temporary sibling and renamed into place only on success,
// so a failed run leaves no output at all rather than a half-written
// catalog with broken block boundaries.
func WriteCatalog(path string, reg *catalog.Registry, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	tmpPath := tmp.Name()

	writeErr := binfile.Write(tmp, reg, binfile.Options{DoublePrecision: cfg.DoublePrecision})
	closeErr := tmp.Close()
	if writeErr == nil {
		writeErr = errors.WrapIO("close", tmpPath, closeErr)
	}
	if writeErr == nil {
		writeErr = errors.WrapIO("chmod", tmpPath, os.Chmod(tmpPath, constants.FilePermissions))
	}
	if writeErr != nil {
		_ = os.Remove(tmpPath)
		return writeErr
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("move", path, err)
	}
	return nil
}
