package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/footpath/campus"
	"github.com/katalvlaran/footpath/internal/config"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#00FF99"))

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd assembles the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "footpath",
		Short:         "Walk between campus buildings along footways",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = cfg.Logger(cmd.ErrOrStderr())
			if cfg.File != "" {
				a.logger.Debug("config loaded", "file", cfg.File)
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "footpath.yaml", "Path to config file")
	pf.String("map", config.DefaultMapPath, "Path to the YAML walking map")
	pf.String("log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	pf.String("log-format", config.DefaultLogFormat, "Log format (text, json)")
	pf.Bool("color", true, "Colorize status lines")

	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		renderHelp(cmd)
	})

	root.AddCommand(newNavigateCmd(a), newRouteCmd(a), newDumpCmd(a), newStatsCmd(a))

	return root
}

// navigator loads the configured map and builds its graph.
func (a *app) navigator() (*campus.Navigator, error) {
	m, err := campus.Load(a.cfg.MapPath)
	if err != nil {
		return nil, err
	}
	a.logger.Info("map loaded", "path", a.cfg.MapPath,
		"nodes", len(m.Nodes), "footways", len(m.Footways), "buildings", len(m.Buildings))

	return campus.NewNavigator(m, a.logger)
}

func renderHelp(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("FOOTPATH"))
	fmt.Fprintln(out, cmd.Short)
	fmt.Fprintln(out)

	fmt.Fprintln(out, titleStyle.Render("USAGE"))
	fmt.Fprintf(out, "  %s\n\n", cmd.UseLine())

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintln(out, titleStyle.Render("COMMANDS"))
		for _, c := range cmd.Commands() {
			if c.IsAvailableCommand() {
				fmt.Fprintf(out, "  %-12s %s\n", c.Name(), c.Short)
			}
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, titleStyle.Render("FLAGS"))
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		line := fmt.Sprintf("  --%-12s %s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" {
			line += fmt.Sprintf(" (default %s)", f.DefValue)
		}
		fmt.Fprintln(out, line)
	})
}
