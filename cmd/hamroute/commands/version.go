package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is stamped at build time with
// -ldflags "-X github.com/katalvlaran/hamroute/cmd/hamroute/commands.Version=v1.2.3".
var Version = "dev"

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}
