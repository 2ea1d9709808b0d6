package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ehsaniara/botvisor/pkg/version"
)

func newVersionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), version.GetBuildInfo())
			}
			fmt.Fprint(cmd.OutOrStdout(), version.GetLongVersion())
			return nil
		},
	}
}
