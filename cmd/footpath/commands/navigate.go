package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/footpath/campus"
	"github.com/katalvlaran/footpath/console"
)

func newNavigateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "navigate",
		Short: "Interactive building-to-building navigation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			nav, err := a.navigator()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("** Navigating campus walking map **"))
			printStats(out, nav.Stats())

			// The first Ctrl-C cancels the session; stop restores the
			// default handler so a second one kills the process.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			context.AfterFunc(ctx, stop)

			s := &console.Session{
				In:     cmd.InOrStdin(),
				Out:    out,
				Router: nav,
				Logger: a.logger,
				Color:  a.cfg.Color && !color.NoColor,
			}
			return s.Run(ctx)
		},
	}
}

// printStats writes the map summary framed by blank lines.
func printStats(w io.Writer, s campus.Stats) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "# of nodes: %d\n", s.Nodes)
	fmt.Fprintf(w, "# of footways: %d\n", s.Footways)
	fmt.Fprintf(w, "# of buildings: %d\n", s.Buildings)
	fmt.Fprintf(w, "# of vertices: %d\n", s.Vertices)
	fmt.Fprintf(w, "# of edges: %d\n", s.Edges)
	fmt.Fprintln(w)
}
