// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.anops.dev/ao/internal/adapters/config"
	_ "go.anops.dev/ao/internal/adapters/docker"
	_ "go.anops.dev/ao/internal/adapters/fs"
	_ "go.anops.dev/ao/internal/adapters/logger"
	_ "go.anops.dev/ao/internal/adapters/protoc"
	_ "go.anops.dev/ao/internal/adapters/scaffold"
	_ "go.anops.dev/ao/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.anops.dev/ao/internal/app"
	_ "go.anops.dev/ao/internal/engine/runner"
)
