package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.anops.dev/ao/internal/adapters/config"
	"go.anops.dev/ao/internal/adapters/docker"
	"go.anops.dev/ao/internal/adapters/fs"
	"go.anops.dev/ao/internal/adapters/logger"
	"go.anops.dev/ao/internal/adapters/protoc"
	"go.anops.dev/ao/internal/adapters/scaffold"
	"go.anops.dev/ao/internal/core/ports"
	"go.anops.dev/ao/internal/engine/runner"
)

// NodeID identifies the main App node.
const NodeID graft.ID = "app.main"

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.LocatorNodeID,
			fs.VerifierNodeID,
			config.NodeID,
			runner.NodeID,
			protoc.NodeID,
			docker.NodeID,
			scaffold.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	locator, err := graft.Dep[ports.Locator](ctx)
	if err != nil {
		return nil, err
	}
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	verifier, err := graft.Dep[ports.Verifier](ctx)
	if err != nil {
		return nil, err
	}
	run, err := graft.Dep[*runner.Runner](ctx)
	if err != nil {
		return nil, err
	}
	generator, err := graft.Dep[ports.Generator](ctx)
	if err != nil {
		return nil, err
	}
	builder, err := graft.Dep[ports.ImageBuilder](ctx)
	if err != nil {
		return nil, err
	}
	scaffolder, err := graft.Dep[ports.Scaffolder](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(locator, loader, verifier, run, generator, builder, scaffolder, log), nil
}
