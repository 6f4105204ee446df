package commands

import (
	"github.com/spf13/cobra"
)

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print node, footway, building, vertex and edge counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nav, err := a.navigator()
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), nav.Stats())
			return nil
		},
	}
}
