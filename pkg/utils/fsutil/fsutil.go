// Package fsutil provides the directory helpers used around dataset
// downloads: idempotent directory creation and non-recursive file clearing.
package fsutil

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
)

// EnsureDir creates path and all missing ancestor directories. Calling it on
// an existing directory is a no-op; a regular file occupying path is an error.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return goerr.Wrap(err, "failed to create directory", goerr.V("path", path))
	}
	return nil
}

// ClearDir removes every regular file directly inside path. Subdirectories
// and their contents are left untouched.
func ClearDir(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read directory", goerr.V("path", path))
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := filepath.Join(path, entry.Name())
		if err := os.Remove(name); err != nil {
			return goerr.Wrap(err, "failed to remove file", goerr.V("path", name))
		}
	}

	return nil
}
