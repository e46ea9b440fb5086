package commands

import (
	"github.com/reqwell/reqcheck/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list FILE",
		Short: "Print the flattened name -> constraint mapping of a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			return c.app.List(cmd.Context(), args, app.ListOptions{JSON: asJSON})
		},
	}
	cmd.Flags().Bool("json", false, "Emit the mapping as JSON")
	return cmd
}
