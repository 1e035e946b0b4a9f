package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.anops.dev/ao/cmd/ao/commands"
	"go.anops.dev/ao/internal/app"
	"go.anops.dev/ao/internal/build"
	"go.anops.dev/ao/internal/core/ports/mocks"
	"go.anops.dev/ao/internal/engine/runner"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// testMocks holds the mocked ports behind a real App so the tests exercise
// the full command wiring.
type testMocks struct {
	locator    *mocks.MockLocator
	loader     *mocks.MockConfigLoader
	verifier   *mocks.MockVerifier
	generator  *mocks.MockGenerator
	builder    *mocks.MockImageBuilder
	scaffolder *mocks.MockScaffolder
}

func newCLI(t *testing.T) (*commands.CLI, *testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &testMocks{
		locator:    mocks.NewMockLocator(ctrl),
		loader:     mocks.NewMockConfigLoader(ctrl),
		verifier:   mocks.NewMockVerifier(ctrl),
		generator:  mocks.NewMockGenerator(ctrl),
		builder:    mocks.NewMockImageBuilder(ctrl),
		scaffolder: mocks.NewMockScaffolder(ctrl),
	}
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	application := app.New(
		m.locator,
		m.loader,
		m.verifier,
		runner.New(mocks.NewMockExecutor(ctrl), logger),
		m.generator,
		m.builder,
		m.scaffolder,
		logger,
	)

	cli := commands.New(application)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	return cli, m
}

func TestCommands_Init(t *testing.T) {
	cli, m := newCLI(t)
	m.scaffolder.EXPECT().Create("demo").Return("demo", nil)

	cli.SetArgs([]string{"init", "demo"})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestCommands_Init_RequiresName(t *testing.T) {
	cli, _ := newCLI(t)

	cli.SetArgs([]string{"init"})
	err := cli.Execute(context.Background())
	require.Error(t, err)
}

func TestCommands_Check_DefaultsToCwd(t *testing.T) {
	cli, m := newCLI(t)
	m.locator.EXPECT().Locate(".").Return("", zerr.New("stop here"))

	cli.SetArgs([]string{"check"})
	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stop here")
}

func TestCommands_Check_ExplicitPath(t *testing.T) {
	cli, m := newCLI(t)
	m.locator.EXPECT().Locate("some/dir").Return("", zerr.New("stop here"))

	cli.SetArgs([]string{"check", "some/dir"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestCommands_Run_PassesTaskAndPath(t *testing.T) {
	cli, m := newCLI(t)
	m.locator.EXPECT().Locate("proj").Return("", zerr.New("stop here"))

	cli.SetArgs([]string{"run", "deploy", "proj"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestCommands_Run_RequiresTask(t *testing.T) {
	cli, _ := newCLI(t)

	cli.SetArgs([]string{"run"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestCommands_Build_DefaultsToCwd(t *testing.T) {
	cli, m := newCLI(t)
	m.locator.EXPECT().Locate(".").Return("", zerr.New("stop here"))

	cli.SetArgs([]string{"build"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestCommands_UnknownCommand(t *testing.T) {
	cli, _ := newCLI(t)

	cli.SetArgs([]string{"frobnicate"})
	require.Error(t, cli.Execute(context.Background()))
}

func TestCommands_Version(t *testing.T) {
	cli, _ := newCLI(t)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Version)
}
