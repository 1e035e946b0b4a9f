// Package scaffold creates the on-disk layout for new projects.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"go.anops.dev/ao/internal/core/domain"
	"go.anops.dev/ao/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Scaffolder = (*Scaffolder)(nil)

// Scaffolder implements ports.Scaffolder.
type Scaffolder struct {
	logger ports.Logger
}

// NewScaffolder creates a new Scaffolder.
func NewScaffolder(logger ports.Logger) *Scaffolder {
	return &Scaffolder{logger: logger}
}

// Create scaffolds a new project at the given path and returns the created
// project directory. Re-running on an existing directory overwrites files
// without confirmation.
func (s *Scaffolder) Create(name string) (string, error) {
	projectPath := filepath.Clean(name)
	projectName := filepath.Base(projectPath)

	s.logger.Info("initializing project " + projectName + " at " + projectPath)

	subdirs := []string{
		domain.APIServiceDir,
		domain.ModelServiceDir,
		domain.InterfaceDir,
		"tests",
		"notebooks",
		filepath.Join(domain.APIServiceDir, "tests"),
		filepath.Join(domain.ModelServiceDir, "tests"),
	}
	for _, subdir := range subdirs {
		dir := filepath.Join(projectPath, subdir)
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to create project directory"), "path", dir)
		}
	}

	compose, err := renderCompose()
	if err != nil {
		return "", err
	}

	files := []struct {
		path    string
		content []byte
	}{
		{domain.ConfigFileName, fmt.Appendf(nil, configTemplate, projectName)},
		{".gitignore", []byte(gitignoreTemplate)},
		{"docker-compose.yml", compose},
		{filepath.Join(domain.APIServiceDir, "Dockerfile"), []byte(apiDockerfileTemplate)},
		{filepath.Join(domain.APIServiceDir, "requirements.txt"), []byte(apiRequirementsTemplate)},
		{filepath.Join(domain.APIServiceDir, "main.py"), []byte(apiMainTemplate)},
		{filepath.Join(domain.APIServiceDir, "README.md"), []byte(apiReadmeTemplate)},
		{filepath.Join(domain.ModelServiceDir, "Dockerfile"), []byte(modelDockerfileTemplate)},
		{filepath.Join(domain.ModelServiceDir, "requirements.txt"), []byte(modelRequirementsTemplate)},
		{filepath.Join(domain.ModelServiceDir, "server.py"), []byte(modelServerTemplate)},
		{filepath.Join(domain.ModelServiceDir, "README.md"), []byte(modelReadmeTemplate)},
		{filepath.Join(domain.InterfaceDir, domain.ProtoFileName), []byte(protoTemplate)},
		{filepath.Join(domain.InterfaceDir, "README.md"), []byte(interfaceReadmeTemplate)},
	}
	for _, f := range files {
		path := filepath.Join(projectPath, f.path)
		if err := os.WriteFile(path, f.content, 0o600); err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to write project file"), "path", path)
		}
	}

	return projectPath, nil
}
