package shell_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.anops.dev/ao/internal/adapters/shell"
	"go.anops.dev/ao/internal/core/domain"
	"go.anops.dev/ao/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newExecutor(t *testing.T, stdout, stderr *bytes.Buffer) *shell.Executor {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return shell.NewExecutor(log).WithOutput(stdout, stderr)
}

func TestExecute_StreamsStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	exec := newExecutor(t, &stdout, &stderr)

	cmd, err := domain.ParseCommand(`echo "hello world"`)
	require.NoError(t, err)

	require.NoError(t, exec.Execute(context.Background(), cmd, t.TempDir()))
	assert.Equal(t, "hello world\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestExecute_RunsInWorkdir(t *testing.T) {
	var stdout, stderr bytes.Buffer
	exec := newExecutor(t, &stdout, &stderr)
	workdir := t.TempDir()

	cmd := domain.NewCommand("pwd")
	require.NoError(t, exec.Execute(context.Background(), cmd, workdir))
	assert.Contains(t, stdout.String(), workdir)
}

func TestExecute_NonZeroExit(t *testing.T) {
	var stdout, stderr bytes.Buffer
	exec := newExecutor(t, &stdout, &stderr)

	cmd := domain.NewCommand("sh", "-c", "exit 3")
	err := exec.Execute(context.Background(), cmd, t.TempDir())
	require.Error(t, err)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, 3, zErr.Metadata()["exit_code"])
	assert.Equal(t, cmd.Raw, zErr.Metadata()["command"])
}

func TestExecute_SpawnFailure(t *testing.T) {
	var stdout, stderr bytes.Buffer
	exec := newExecutor(t, &stdout, &stderr)

	cmd := domain.NewCommand("definitely-not-a-real-binary-ao")
	err := exec.Execute(context.Background(), cmd, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start command")
}

func TestExecute_NoShellInterpretation(t *testing.T) {
	var stdout, stderr bytes.Buffer
	exec := newExecutor(t, &stdout, &stderr)

	// The argv goes straight to exec: $HOME must not be expanded.
	cmd := domain.NewCommand("echo", "$HOME")
	require.NoError(t, exec.Execute(context.Background(), cmd, t.TempDir()))
	assert.Equal(t, "$HOME\n", stdout.String())
}
