package commands

import (
	"github.com/spf13/cobra"
)

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the walking graph as an adjacency grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nav, err := a.navigator()
			if err != nil {
				return err
			}
			return nav.Graph().Dump(cmd.OutOrStdout())
		},
	}
}
