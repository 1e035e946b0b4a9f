// Package runner executes named tasks and check command lists sequentially.
package runner

import (
	"context"
	"fmt"

	"go.anops.dev/ao/internal/core/domain"
	"go.anops.dev/ao/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner executes ordered command lists from the project configuration.
// Execution is strictly sequential and fail-fast: the first failing command
// aborts the remainder of the list.
type Runner struct {
	executor ports.Executor
	logger   ports.Logger
}

// New creates a new Runner.
func New(executor ports.Executor, logger ports.Logger) *Runner {
	return &Runner{executor: executor, logger: logger}
}

// RunTask looks up taskName in the configuration's task table and executes
// its commands in declared order with root as the working directory. A task
// defined with an empty command list succeeds without spawning anything; an
// absent task name is an error.
func (r *Runner) RunTask(ctx context.Context, cfg *domain.ProjectConfig, taskName, root string) error {
	commands, ok := cfg.Task(taskName)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrTaskNotFound,
			fmt.Sprintf("task %q not found in %s", taskName, domain.ConfigFileName)), "task", taskName)
	}

	if len(commands) == 0 {
		r.logger.Info("task " + taskName + " has no commands defined")
		return nil
	}

	for _, raw := range commands {
		if err := r.runCommand(ctx, raw, root); err != nil {
			return zerr.With(zerr.With(zerr.Wrap(err,
				fmt.Sprintf("command %q in task %q failed", raw, taskName)),
				"command", raw), "task", taskName)
		}
	}

	return nil
}

// RunCommands executes a command list in declared order, fail-fast. The
// stage label names the list in error context (e.g. "linter", "tester").
func (r *Runner) RunCommands(ctx context.Context, commands []string, root, stage string) error {
	for _, raw := range commands {
		if err := r.runCommand(ctx, raw, root); err != nil {
			return zerr.With(zerr.Wrap(err,
				fmt.Sprintf("%s command %q failed", stage, raw)), "command", raw)
		}
	}
	return nil
}

func (r *Runner) runCommand(ctx context.Context, raw, root string) error {
	cmd, err := domain.ParseCommand(raw)
	if err != nil {
		return err
	}
	return r.executor.Execute(ctx, cmd, root)
}
