package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/dbfetch/internal/app"
)

func (c *CLI) newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export the query result to the configured store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Export(cmd.Context(), app.ExportOptions{
				ConfigPath: configPath(cmd),
			})
		},
	}
}
