// Package fs provides filesystem adapters: project root location and
// structural verification.
package fs

import (
	"os"
	"path/filepath"

	"go.anops.dev/ao/internal/core/domain"
	"go.anops.dev/ao/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Locator = (*Locator)(nil)

// Locator implements ports.Locator by walking parent directories.
type Locator struct {
	logger ports.Logger
}

// NewLocator creates a new Locator.
func NewLocator(logger ports.Logger) *Locator {
	return &Locator{logger: logger}
}

// Locate resolves startPath (following symlinks, removing relative segments)
// and ascends until it finds a directory directly containing the marker
// configuration file. The loop terminates when a directory equals its own
// parent, i.e. at the filesystem root.
func (l *Locator) Locate(startPath string) (string, error) {
	abs, err := filepath.Abs(startPath)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve start path"), "path", startPath)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve start path"), "path", startPath)
	}

	currentDir := resolved
	for {
		markerPath := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(markerPath); err == nil && info.Mode().IsRegular() {
			l.logger.Info("found project root at " + currentDir)
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrRootNotFound, "start", startPath)
}
