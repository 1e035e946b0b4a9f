package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.anops.dev/ao/internal/adapters/logger"
	"go.anops.dev/ao/internal/core/ports"
)

const (
	// LocatorNodeID identifies the project locator node.
	LocatorNodeID graft.ID = "adapter.locator"
	// VerifierNodeID identifies the structural verifier node.
	VerifierNodeID graft.ID = "adapter.verifier"
)

func init() {
	graft.Register(graft.Node[ports.Locator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Locator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(log), nil
		},
	})

	graft.Register(graft.Node[ports.Verifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Verifier, error) {
			return NewVerifier(), nil
		},
	})
}
