package ports

import "go.anops.dev/ao/internal/core/domain"

// ConfigLoader loads the project configuration from a resolved root.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads and parses the marker file directly inside root.
	// It re-verifies the file's existence so it can be used independently
	// of the Locator.
	Load(root string) (*domain.ProjectConfig, error)
}
