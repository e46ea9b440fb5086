package commands

import (
	"github.com/reqwell/reqcheck/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Format requirements manifests canonically",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"requirements.txt"}
			}
			write, _ := cmd.Flags().GetBool("write")
			check, _ := cmd.Flags().GetBool("check")

			return c.app.Format(cmd.Context(), args, app.FormatOptions{
				Write: write,
				Check: check,
			})
		},
	}
	cmd.Flags().BoolP("write", "w", false, "Rewrite files in place instead of printing")
	cmd.Flags().Bool("check", false, "List files whose formatting differs and exit non-zero")
	return cmd
}
