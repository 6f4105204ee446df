package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/footpath/dijkstra"
	"github.com/katalvlaran/footpath/geo"
)

func newRouteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "route START DEST",
		Short: "Print the shortest walk between two buildings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nav, err := a.navigator()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			r, err := nav.Navigate(args[0], args[1])
			if errors.Is(err, dijkstra.ErrUnreachable) {
				fmt.Fprintf(out, "%s -> %s: unreachable\n", r.Start.Abbrev, r.Dest.Abbrev)
				return nil
			}
			if err != nil {
				return err
			}

			ids := make([]string, len(r.Path))
			for i, id := range r.Path {
				ids[i] = strconv.FormatInt(id, 10)
			}
			fmt.Fprintf(out, "%s -> %s: %s miles\n", r.Start.Abbrev, r.Dest.Abbrev, geo.FormatFloat(r.Miles))
			fmt.Fprintf(out, "Path: %s\n", strings.Join(ids, "->"))
			return nil
		},
	}
}
