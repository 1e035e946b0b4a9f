// Package shell provides the command executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"go.anops.dev/ao/internal/core/domain"
	"go.anops.dev/ao/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec. Child stdout and stderr
// are streamed live to the executor's writers, never buffered or captured.
type Executor struct {
	logger ports.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates an Executor streaming to the process's own
// stdout/stderr.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithOutput redirects the child process streams. Used by tests.
func (e *Executor) WithOutput(stdout, stderr io.Writer) *Executor {
	e.stdout = stdout
	e.stderr = stderr
	return e
}

// Execute spawns the command with workdir as its current directory and waits
// for completion. The argv is executed directly; no shell is involved.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command, workdir string) error {
	e.logger.Info("running: " + cmd.Raw)

	proc := exec.CommandContext(ctx, cmd.Name(), cmd.Args()...) //nolint:gosec // user provided command
	proc.Dir = workdir
	proc.Stdout = e.stdout
	proc.Stderr = e.stderr

	if err := proc.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Expected failure mode: the tool ran and reported failure.
			return zerr.With(zerr.With(zerr.Wrap(err, "command exited with non-zero status"),
				"command", cmd.Raw), "exit_code", exitErr.ExitCode())
		}
		return zerr.With(zerr.Wrap(err, "failed to start command"), "command", cmd.Raw)
	}

	return nil
}
