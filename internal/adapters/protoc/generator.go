// Package protoc invokes the external gRPC code generator.
package protoc

import (
	"context"
	"os"
	"path/filepath"

	"go.anops.dev/ao/internal/core/domain"
	"go.anops.dev/ao/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Generator = (*Generator)(nil)

// Generator produces python gRPC stubs for both services from the proto
// contract in the interface-definition directory. The generator binary is
// assumed to be available as `python -m grpc_tools.protoc`.
type Generator struct {
	executor ports.Executor
	logger   ports.Logger
}

// NewGenerator creates a new Generator.
func NewGenerator(executor ports.Executor, logger ports.Logger) *Generator {
	return &Generator{executor: executor, logger: logger}
}

// Generate runs the code generator with root as the working directory,
// emitting stubs into both service directories. A zero return means the
// generated artifacts now exist on disk.
func (g *Generator) Generate(ctx context.Context, root string) error {
	interfaceDir := filepath.Join(root, domain.InterfaceDir)
	apiDir := filepath.Join(root, domain.APIServiceDir)
	modelDir := filepath.Join(root, domain.ModelServiceDir)
	protoPath := filepath.Join(interfaceDir, domain.ProtoFileName)

	if _, err := os.Stat(protoPath); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrMissingFile, "proto file not found"), "path", protoPath)
	}

	// Output directories must exist before protoc writes into them.
	for _, dir := range []string{apiDir, modelDir} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", dir)
		}
	}

	g.logger.Info("generating gRPC stubs from " + protoPath)

	cmd := domain.NewCommand(
		"python", "-m", "grpc_tools.protoc",
		"-I"+interfaceDir,
		"--python_out="+apiDir,
		"--pyi_out="+apiDir,
		"--grpc_python_out="+apiDir,
		"--python_out="+modelDir,
		"--pyi_out="+modelDir,
		"--grpc_python_out="+modelDir,
		domain.ProtoFileName,
	)

	if err := g.executor.Execute(ctx, cmd, root); err != nil {
		return zerr.Wrap(err, "gRPC code generation failed")
	}

	g.logger.Info("gRPC stubs generated")
	return nil
}
