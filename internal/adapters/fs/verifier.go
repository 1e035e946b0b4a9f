package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"go.anops.dev/ao/internal/core/domain"
	"go.anops.dev/ao/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier checks the structural layout of a project root against the fixed
// required-directory and required-file lists.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Verify checks required directories first, then required files, in declared
// order, and fails on the first violation. Only presence and file-type are
// inspected.
func (v *Verifier) Verify(root string) error {
	for _, dir := range domain.RequiredDirs {
		path := filepath.Join(root, dir)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return zerr.With(zerr.Wrap(domain.ErrMissingDirectory,
					fmt.Sprintf("required directory %q not found in project root", dir)), "path", path)
			}
			return zerr.With(zerr.Wrap(err, "failed to stat required directory"), "path", path)
		}
		if !info.IsDir() {
			return zerr.With(zerr.Wrap(domain.ErrNotADirectory,
				fmt.Sprintf("path %q is not a directory", dir)), "path", path)
		}
	}

	for _, f := range domain.RequiredFiles {
		path := filepath.Join(root, f.Dir, f.Name)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return zerr.With(zerr.With(zerr.Wrap(domain.ErrMissingFile,
					fmt.Sprintf("required file %q not found in directory %q", f.Name, f.Dir)),
					"file", f.Name), "dir", f.Dir)
			}
			return zerr.With(zerr.Wrap(err, "failed to stat required file"), "path", path)
		}
		if !info.Mode().IsRegular() {
			return zerr.With(zerr.Wrap(domain.ErrNotAFile,
				fmt.Sprintf("path %q in directory %q is not a file", f.Name, f.Dir)), "path", path)
		}
	}

	return nil
}
