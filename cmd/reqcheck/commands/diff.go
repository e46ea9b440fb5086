package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff OLD NEW",
		Short: "Show requirement changes between two manifests",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Diff(cmd.Context(), args[0], args[1])
		},
	}
}
