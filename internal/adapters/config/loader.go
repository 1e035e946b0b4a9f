// Package config provides the TOML configuration loader for ao.
package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"go.anops.dev/ao/internal/core/domain"
	"go.anops.dev/ao/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using the ao.toml marker file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// projectFile mirrors the on-disk TOML structure. The project table is a
// pointer so an absent table can be told apart from an empty one.
type projectFile struct {
	Project *projectDTO         `toml:"project"`
	Check   checkDTO            `toml:"check"`
	Tasks   map[string][]string `toml:"tasks"`
}

type projectDTO struct {
	Name string `toml:"name"`
}

type checkDTO struct {
	Linters []string `toml:"linters"`
	Testers []string `toml:"testers"`
}

// Load reads and parses the marker file directly inside root. The file's
// existence is re-verified so Load can be called independently of the
// Locator.
func (l *Loader) Load(root string) (*domain.ProjectConfig, error) {
	path := filepath.Join(root, domain.ConfigFileName)
	l.logger.Info("loading configuration from " + path)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, zerr.With(domain.ErrConfigNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to stat config file"), "path", path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path derives from the located project root
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file projectFile
	if err := toml.Unmarshal(data, &file); err != nil {
		// go-toml decode errors carry the offending field and position.
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if file.Project == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingField, "missing field `project`"), "field", "project")
	}
	if file.Project.Name == "" {
		return nil, zerr.With(zerr.Wrap(domain.ErrMissingField, "missing field `name` in [project]"), "field", "project.name")
	}

	tasks := file.Tasks
	if tasks == nil {
		tasks = map[string][]string{}
	}

	return &domain.ProjectConfig{
		Project: domain.ProjectMeta{Name: file.Project.Name},
		Check: domain.CheckConfig{
			Linters: file.Check.Linters,
			Testers: file.Check.Testers,
		},
		Tasks: tasks,
	}, nil
}
