package ports

import "context"

// ImageBuilder invokes the external container image builder.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type ImageBuilder interface {
	// Build builds a container image with contextDir as the build context,
	// tagged with tag.
	Build(ctx context.Context, contextDir, tag string) error
}
