package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/restkit/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "restkit %s (%s)\n", info, info.GoVersion)
			return err
		},
	}
}
