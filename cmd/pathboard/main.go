// SPDX-License-Identifier: MIT

// Command pathboard edits weighted graphs and solves single-source shortest
// paths over them, interactively or from scripts.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathboard/builder"
	"github.com/katalvlaran/pathboard/dijkstra"
	"github.com/katalvlaran/pathboard/internal/config"
	"github.com/katalvlaran/pathboard/internal/editor"
	"github.com/katalvlaran/pathboard/internal/logging"
	"github.com/katalvlaran/pathboard/internal/metrics"
	"github.com/katalvlaran/pathboard/internal/tui"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// app carries what every subcommand needs once flags are resolved.
type app struct {
	configPath  string
	logLevel    string
	logFormat   string
	metricsAddr string

	cfg     config.Config
	log     *zap.Logger
	metrics *metrics.Collector
	stop    context.CancelFunc
}

func main() {
	a := &app{}
	root := a.rootCmd()
	err := root.Execute()
	a.close()
	if err != nil {
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pathboard",
		Short:         "Pathboard - weighted graph editor with shortest paths",
		Long:          `Pathboard edits an undirected weighted graph one command at a time and computes shortest paths from a source node with Dijkstra's algorithm.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: json|console")
	pf.StringVar(&a.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")

	root.AddCommand(a.tuiCmd(), a.execCmd(), a.demoCmd(), a.versionCmd())

	return root
}

// setup decodes config, applies flag overrides, validates the result once, and
// starts logging and metrics.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Decode(a.configPath)
	if err != nil {
		return a.fail(cmd, err)
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Addr = a.metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return a.fail(cmd, err)
	}
	a.cfg = cfg

	if a.log, err = logging.New(cfg.Log); err != nil {
		return a.fail(cmd, err)
	}

	if cfg.Metrics.Addr != "" {
		a.metrics = metrics.NewCollector()
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		a.stop = stop
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.Addr, a.metrics, a.log); err != nil {
				a.log.Error("metrics endpoint stopped", zap.Error(err))
			}
		}()
	}

	return nil
}

func (a *app) close() {
	if a.stop != nil {
		a.stop()
	}
	if a.log != nil {
		_ = a.log.Sync()
	}
}

// fail prints err in the error style and returns it for the exit code.
func (a *app) fail(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("error: "+err.Error()))

	return err
}

func (a *app) session() *editor.Session {
	opts := []editor.Option{
		editor.WithLogger(a.log),
		editor.WithNodeRadius(a.cfg.Editor.NodeRadius),
	}
	if a.metrics != nil {
		opts = append(opts, editor.WithRecorder(a.metrics))
	}

	return editor.NewSession(opts...)
}

func (a *app) tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Edit a graph interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := tui.Run(a.session(), a.cfg.Editor); err != nil {
				return a.fail(cmd, err)
			}
			return nil
		},
	}
}

func (a *app) execCmd() *cobra.Command {
	var keepGoing bool
	cmd := &cobra.Command{
		Use:   "exec [file|-]",
		Short: "Replay editor commands from a file or stdin",
		Long: `Replay editor commands, one per line, from a file or stdin.

Examples:
  pathboard exec graph.pb          # stop at the first failing line
  cat graph.pb | pathboard exec -  # read from stdin
  pathboard exec --keep-going x.pb # report every failing line`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return a.fail(cmd, err)
				}
				defer f.Close()
				in = f
			}
			if err := a.session().Replay(in, cmd.OutOrStdout(), keepGoing); err != nil {
				return a.fail(cmd, err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "continue after a failing line")

	return cmd
}

func (a *app) demoCmd() *cobra.Command {
	var (
		shape string
		size  int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build a generated graph and solve it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := a.cfg.Demo
			if cmd.Flags().Changed("shape") {
				d.Shape = shape
			}
			if cmd.Flags().Changed("size") {
				d.Size = size
			}
			if cmd.Flags().Changed("seed") {
				d.Seed = seed
			}
			if err := a.demo(cmd.OutOrStdout(), d); err != nil {
				return a.fail(cmd, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&shape, "shape", "", "one of: path, cycle, star, grid, complete, wheel")
	cmd.Flags().IntVar(&size, "size", 0, "node count (grid: side length)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "weight RNG seed")

	return cmd
}

func (a *app) demo(w io.Writer, d config.DemoConfig) error {
	cons, err := builder.FromShape(d.Shape, d.Size)
	if err != nil {
		return err
	}
	g, err := builder.BuildGraph([]builder.Option{
		builder.WithSeed(d.Seed),
		builder.WithWeightFn(builder.UniformWeightFn(d.MinWeight, d.MaxWeight)),
	}, cons)
	if err != nil {
		return err
	}

	opts := []dijkstra.Option{dijkstra.WithLogger(a.log)}
	if a.metrics != nil {
		opts = append(opts, dijkstra.WithRecorder(a.metrics))
	}
	e, err := dijkstra.New(g, opts...)
	if err != nil {
		return err
	}
	if err := e.Run(); err != nil {
		return err
	}

	s := editor.NewSession(editor.WithGraph(g), editor.WithLogger(a.log))
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s(%d) seed=%d", d.Shape, d.Size, d.Seed)))
	for _, line := range []string{"status", "edges"} {
		out, err := s.Execute(line)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
	}

	dist, ok := e.DestinationDistance()
	if !ok {
		return errors.New("demo: destination unreachable")
	}
	fmt.Fprintf(w, "distance %d to Node %d\n", dist, e.Destination())
	for _, n := range e.DestinationPath() {
		fmt.Fprintf(w, "  %s (%d, %d)\n", n, n.Coord.X, n.Coord.Y)
	}

	return nil
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "pathboard", version)
			return nil
		},
	}
}
