package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <task> [path]",
		Short: "Run a task defined in ao.toml",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.RunTask(cmd.Context(), pathArg(args, 1), args[0])
		},
	}
}
