// Package domain contains the core types for the ao orchestrator.
package domain

// ProjectConfig is the parsed representation of the ao.toml marker file.
// It is loaded once per invocation and never written back.
type ProjectConfig struct {
	Project ProjectMeta
	Check   CheckConfig
	Tasks   map[string][]string
}

// ProjectMeta holds the [project] table. Name is mandatory and non-empty.
type ProjectMeta struct {
	Name string
}

// CheckConfig holds the [check] table. Both lists default to empty and are
// executed in declared order.
type CheckConfig struct {
	Linters []string
	Testers []string
}

// Task returns the ordered command list for the named task. The second
// return value distinguishes an absent task from a present task with an
// empty command list.
func (c *ProjectConfig) Task(name string) ([]string, bool) {
	cmds, ok := c.Tasks[name]
	return cmds, ok
}
