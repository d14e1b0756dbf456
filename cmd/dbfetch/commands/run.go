package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/dbfetch/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the configured query and deliver the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noCache, _ := cmd.Flags().GetBool("no-cache")

			return c.app.Run(cmd.Context(), app.RunOptions{
				ConfigPath: configPath(cmd),
				NoCache:    noCache,
			})
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the result cache and force a database query")
	return cmd
}
