package scaffold_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.anops.dev/ao/internal/adapters/config"
	"go.anops.dev/ao/internal/adapters/scaffold"
	"go.anops.dev/ao/internal/core/domain"
	"go.anops.dev/ao/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

func newScaffolder(t *testing.T) *scaffold.Scaffolder {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return scaffold.NewScaffolder(log)
}

func TestCreate_Layout(t *testing.T) {
	base := t.TempDir()
	projectPath := filepath.Join(base, "demo")

	created, err := newScaffolder(t).Create(projectPath)
	require.NoError(t, err)
	assert.Equal(t, projectPath, created)

	for _, dir := range []string{
		domain.APIServiceDir,
		domain.ModelServiceDir,
		domain.InterfaceDir,
		"tests",
		"notebooks",
		filepath.Join(domain.APIServiceDir, "tests"),
		filepath.Join(domain.ModelServiceDir, "tests"),
	} {
		assert.DirExists(t, filepath.Join(created, dir))
	}

	for _, file := range []string{
		domain.ConfigFileName,
		".gitignore",
		"docker-compose.yml",
		filepath.Join(domain.APIServiceDir, "Dockerfile"),
		filepath.Join(domain.APIServiceDir, "requirements.txt"),
		filepath.Join(domain.APIServiceDir, "main.py"),
		filepath.Join(domain.ModelServiceDir, "Dockerfile"),
		filepath.Join(domain.ModelServiceDir, "requirements.txt"),
		filepath.Join(domain.ModelServiceDir, "server.py"),
		filepath.Join(domain.InterfaceDir, domain.ProtoFileName),
	} {
		assert.FileExists(t, filepath.Join(created, file))
	}
}

func TestCreate_ConfigIsLoadable(t *testing.T) {
	base := t.TempDir()
	created, err := newScaffolder(t).Create(filepath.Join(base, "demo"))
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	cfg, err := config.NewLoader(log).Load(created)
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Project.Name)
}

func TestCreate_ComposeIsValidYAML(t *testing.T) {
	base := t.TempDir()
	created, err := newScaffolder(t).Create(filepath.Join(base, "demo"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(created, "docker-compose.yml"))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))

	services, ok := doc["services"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, services, domain.APIServiceDir)
	assert.Contains(t, services, domain.ModelServiceDir)
}

func TestCreate_IsIdempotent(t *testing.T) {
	base := t.TempDir()
	projectPath := filepath.Join(base, "demo")
	sc := newScaffolder(t)

	_, err := sc.Create(projectPath)
	require.NoError(t, err)

	// Re-running overwrites without error.
	_, err = sc.Create(projectPath)
	require.NoError(t, err)
}

func TestCreate_NestedPathUsesBaseName(t *testing.T) {
	base := t.TempDir()
	projectPath := filepath.Join(base, "team", "demo")
	require.NoError(t, os.MkdirAll(filepath.Dir(projectPath), 0o750))

	created, err := newScaffolder(t).Create(projectPath)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(created, domain.ConfigFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `name = "demo"`)
}
