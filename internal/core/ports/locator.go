// Package ports defines the core interfaces for the application.
package ports

// Locator resolves an arbitrary starting path to a project root.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type Locator interface {
	// Locate canonicalizes startPath and walks upward until it finds a
	// directory directly containing the marker configuration file.
	// It returns the absolute, symlink-resolved root directory.
	Locate(startPath string) (string, error)
}
