package ports

import (
	"context"

	"go.anops.dev/ao/internal/core/domain"
)

// Executor runs a tokenized command inside a working directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute spawns the command with workdir as its current directory,
	// streaming stdout and stderr live, and waits for completion.
	// A non-zero exit status is returned as an error carrying the exit
	// code; it is an expected failure mode for callers to contextualize.
	Execute(ctx context.Context, cmd domain.Command, workdir string) error
}
