package commands

import (
	"github.com/reqwell/reqcheck/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Lint requirements manifests",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"requirements.txt"}
			}
			strict, _ := cmd.Flags().GetBool("strict")
			watch, _ := cmd.Flags().GetBool("watch")
			format, _ := cmd.Flags().GetString("format")
			noCache, _ := cmd.Flags().GetBool("no-cache")

			return c.app.Check(cmd.Context(), args, app.CheckOptions{
				Strict:  strict,
				Watch:   watch,
				Format:  format,
				NoCache: noCache,
			})
		},
	}
	cmd.Flags().BoolP("strict", "s", false, "Fail on warnings as well as errors")
	cmd.Flags().BoolP("watch", "w", false, "Re-check on file changes until interrupted")
	cmd.Flags().StringP("format", "o", "text", "Output format: text or json")
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the result cache and re-check every file")
	return cmd
}
