// Package docker invokes the external container image builder.
package docker

import (
	"context"

	"go.anops.dev/ao/internal/core/domain"
	"go.anops.dev/ao/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ImageBuilder = (*Builder)(nil)

// Builder implements ports.ImageBuilder by shelling out to `docker build`.
type Builder struct {
	executor ports.Executor
	logger   ports.Logger
}

// NewBuilder creates a new Builder.
func NewBuilder(executor ports.Executor, logger ports.Logger) *Builder {
	return &Builder{executor: executor, logger: logger}
}

// Build builds a container image using contextDir as the build context.
func (b *Builder) Build(ctx context.Context, contextDir, tag string) error {
	b.logger.Info("building image " + tag)

	cmd := domain.NewCommand("docker", "build", "-t", tag, ".")
	if err := b.executor.Execute(ctx, cmd, contextDir); err != nil {
		return zerr.With(zerr.Wrap(err, "container image build failed"), "tag", tag)
	}

	b.logger.Info("built image " + tag)
	return nil
}
