package runner_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.anops.dev/ao/internal/adapters/shell"
	"go.anops.dev/ao/internal/core/domain"
	"go.anops.dev/ao/internal/core/ports/mocks"
	"go.anops.dev/ao/internal/engine/runner"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return log
}

// realRunner wires the runner to the real shell executor so fail-fast
// behavior is observed through actual filesystem effects.
func realRunner(t *testing.T) *runner.Runner {
	t.Helper()
	log := quietLogger(t)
	exec := shell.NewExecutor(log).WithOutput(&bytes.Buffer{}, &bytes.Buffer{})
	return runner.New(exec, log)
}

func TestRunTask_SequentialOrder(t *testing.T) {
	root := t.TempDir()
	cfg := &domain.ProjectConfig{
		Tasks: map[string][]string{
			"setup": {"mkdir outdir", "touch outdir/marker"},
		},
	}

	require.NoError(t, realRunner(t).RunTask(context.Background(), cfg, "setup", root))
	assert.FileExists(t, filepath.Join(root, "outdir", "marker"))
}

func TestRunTask_FailFast(t *testing.T) {
	root := t.TempDir()
	cfg := &domain.ProjectConfig{
		Tasks: map[string][]string{
			"build": {"mkdir outdir", "ls missing_file", "mkdir unreachable"},
		},
	}

	err := realRunner(t).RunTask(context.Background(), cfg, "build", root)
	require.Error(t, err)

	// The first command ran, the one after the failure did not.
	assert.DirExists(t, filepath.Join(root, "outdir"))
	assert.NoDirExists(t, filepath.Join(root, "unreachable"))

	assert.Contains(t, err.Error(), `command "ls missing_file" in task "build" failed`)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "build", zErr.Metadata()["task"])
}

func TestRunTask_NotFound(t *testing.T) {
	cfg := &domain.ProjectConfig{Tasks: map[string][]string{}}

	err := realRunner(t).RunTask(context.Background(), cfg, "deploy", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTaskNotFound))
	assert.Contains(t, err.Error(), `task "deploy" not found`)
}

func TestRunTask_EmptyTaskSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).Times(1)

	cfg := &domain.ProjectConfig{Tasks: map[string][]string{"noop": {}}}

	// No Execute expectation: an empty task must not spawn anything.
	r := runner.New(exec, log)
	require.NoError(t, r.RunTask(context.Background(), cfg, "noop", t.TempDir()))
}

func TestRunTask_UnparsableCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)
	log := quietLogger(t)

	cfg := &domain.ProjectConfig{Tasks: map[string][]string{"bad": {`echo "unbalanced`}}}

	err := runner.New(exec, log).RunTask(context.Background(), cfg, "bad", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `in task "bad" failed`)
}

func TestRunCommands_FailFastWithStage(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "present"), []byte("x"), 0o600))

	err := realRunner(t).RunCommands(context.Background(),
		[]string{"ls present", "ls absent", "mkdir unreachable"}, root, "linter")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `linter command "ls absent" failed`)
	assert.NoDirExists(t, filepath.Join(root, "unreachable"))
}

func TestRunCommands_EmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)

	r := runner.New(exec, quietLogger(t))
	require.NoError(t, r.RunCommands(context.Background(), nil, t.TempDir(), "tester"))
}
