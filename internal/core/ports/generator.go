package ports

import "context"

// Generator invokes the external gRPC code generator for a project.
//
//go:generate go run go.uber.org/mock/mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks
type Generator interface {
	// Generate produces gRPC stubs from the interface-definition directory
	// into both service directories. A zero return means the generated
	// artifacts now exist on disk.
	Generate(ctx context.Context, root string) error
}
