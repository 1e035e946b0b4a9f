// Package app implements the orchestration flows for ao.
package app

import (
	"context"
	"os"
	"path/filepath"

	"go.anops.dev/ao/internal/core/domain"
	"go.anops.dev/ao/internal/core/ports"
	"go.anops.dev/ao/internal/engine/runner"
	"go.anops.dev/ao/internal/ui/style"
	"go.trai.ch/zerr"
)

// App composes the locator, loader, verifier, runner and external
// collaborators into the user-visible init/check/run/build flows. Every flow
// is a strictly ordered pipeline; any stage failure aborts the whole flow.
type App struct {
	locator    ports.Locator
	loader     ports.ConfigLoader
	verifier   ports.Verifier
	runner     *runner.Runner
	generator  ports.Generator
	builder    ports.ImageBuilder
	scaffolder ports.Scaffolder
	logger     ports.Logger
}

// New creates a new App instance.
func New(
	locator ports.Locator,
	loader ports.ConfigLoader,
	verifier ports.Verifier,
	run *runner.Runner,
	generator ports.Generator,
	builder ports.ImageBuilder,
	scaffolder ports.Scaffolder,
	logger ports.Logger,
) *App {
	return &App{
		locator:    locator,
		loader:     loader,
		verifier:   verifier,
		runner:     run,
		generator:  generator,
		builder:    builder,
		scaffolder: scaffolder,
		logger:     logger,
	}
}

// Init scaffolds a new project at the given path.
func (a *App) Init(name string) error {
	projectPath, err := a.scaffolder.Create(name)
	if err != nil {
		return zerr.Wrap(err, "failed to initialize project")
	}

	a.logger.Info(style.Success.Render(style.Check) + " project initialized at " + projectPath)
	a.logger.Info(style.Muted.Render(style.Arrow) + " next: cd " + projectPath + ", implement your model, then run `ao build`")
	return nil
}

// Check resolves the project from path, validates its structure and runs the
// configured linters then testers, in declared order, fail-fast.
func (a *App) Check(ctx context.Context, path string) error {
	root, cfg, err := a.resolve(path)
	if err != nil {
		return err
	}
	if err := a.checkProject(ctx, root, cfg); err != nil {
		return err
	}

	a.logger.Info(style.Success.Render(style.Check) + " all checks passed")
	return nil
}

// RunTask resolves the project from path and executes the named task.
func (a *App) RunTask(ctx context.Context, path, taskName string) error {
	root, cfg, err := a.resolve(path)
	if err != nil {
		return err
	}
	if err := a.runner.RunTask(ctx, cfg, taskName, root); err != nil {
		return err
	}

	a.logger.Info(style.Success.Render(style.Check) + " task " + taskName + " finished")
	return nil
}

// Build resolves the project, generates gRPC stubs, re-runs the full check
// pipeline, then builds a container image for each service directory that
// exists. An absent service directory is skipped with a warning; every other
// failure is fatal.
func (a *App) Build(ctx context.Context, path string) error {
	root, cfg, err := a.resolve(path)
	if err != nil {
		return err
	}

	if err := a.generator.Generate(ctx, root); err != nil {
		return zerr.Wrap(err, "build aborted")
	}

	if err := a.checkProject(ctx, root, cfg); err != nil {
		return zerr.Wrap(err, "pre-build checks failed")
	}

	for _, service := range domain.ServiceDirs {
		serviceDir := filepath.Join(root, service)
		if info, err := os.Stat(serviceDir); err != nil || !info.IsDir() {
			a.logger.Warn(style.Notice.Render(style.Warning) +
				" skipping " + service + " build: directory not found")
			continue
		}

		tag := domain.ImageTag(cfg.Project.Name, service)
		if err := a.builder.Build(ctx, serviceDir, tag); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to build service image"), "service", service)
		}
	}

	a.logger.Info(style.Success.Render(style.Check) + " build finished")
	return nil
}

// resolve locates the project root from path and loads its configuration.
func (a *App) resolve(path string) (string, *domain.ProjectConfig, error) {
	root, err := a.locator.Locate(path)
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to locate project root")
	}

	cfg, err := a.loader.Load(root)
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to load project configuration")
	}

	return root, cfg, nil
}

// checkProject runs the check pipeline against an already-resolved root:
// structural validation, then linters, then testers.
func (a *App) checkProject(ctx context.Context, root string, cfg *domain.ProjectConfig) error {
	if err := a.verifier.Verify(root); err != nil {
		return zerr.Wrap(err, "project structure validation failed")
	}

	if len(cfg.Check.Linters) == 0 {
		a.logger.Info("no linters configured")
	} else if err := a.runner.RunCommands(ctx, cfg.Check.Linters, root, "linter"); err != nil {
		return err
	}

	if len(cfg.Check.Testers) == 0 {
		a.logger.Info("no testers configured")
	} else if err := a.runner.RunCommands(ctx, cfg.Check.Testers, root, "tester"); err != nil {
		return err
	}

	return nil
}
