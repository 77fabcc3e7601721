package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/san-kum/numlab/internal/config"
	"github.com/san-kum/numlab/internal/experiment"
	"github.com/san-kum/numlab/internal/storage"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	debug   bool
	logger  = logrus.New()

	method     string
	a, b       float64
	step       float64
	y0         float64
	nodes      int
	points     int
	configFile string
	preset     string
	halvings   int
	sweepParam string
	sweepFrom  float64
	sweepTo    float64
	sweepN     int
	workers    int
	outFile    string
	maxRows    int
	theme      string
	noSave     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "numlab",
		Short:        "numerical integration, ODE and interpolation lab",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				logger.SetLevel(logrus.DebugLevel)
			}
			logger.Debugf("log level %s", logger.Level)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".numlab", "data directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "use debug log level")

	integrateCmd := &cobra.Command{
		Use:   "integrate [function]",
		Short: "integrate a function and compare with its antiderivative",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runKind(experiment.KindIntegral),
	}
	addRunFlags(integrateCmd, config.DefaultFor("integral"))

	solveCmd := &cobra.Command{
		Use:   "solve [problem]",
		Short: "solve a Cauchy problem and compare with its exact solution",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runKind(experiment.KindODE),
	}
	addRunFlags(solveCmd, config.DefaultFor("ode"))
	solveCmd.Flags().Float64Var(&y0, "y0", 0, "initial value y(a)")

	interpolateCmd := &cobra.Command{
		Use:   "interpolate [function]",
		Short: "interpolate a function on equidistant nodes",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runKind(experiment.KindInterpolation),
	}
	addRunFlags(interpolateCmd, config.DefaultFor("interpolation"))
	interpolateCmd.Flags().IntVar(&nodes, "nodes", config.DefaultNodes, "number of node segments N")
	interpolateCmd.Flags().IntVar(&points, "points", 0, "number of query segments (default 3N)")

	convergeCmd := &cobra.Command{
		Use:   "converge [kind] [function]",
		Short: "halve the step repeatedly and report the observed order",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  convergeRun,
	}
	addRunFlags(convergeCmd, config.DefaultConfig())
	convergeCmd.Flags().Float64Var(&y0, "y0", 0, "initial value y(a)")
	convergeCmd.Flags().IntVar(&halvings, "halvings", 4, "number of step halvings")

	compareCmd := &cobra.Command{
		Use:   "compare [kind] [function] [method...]",
		Short: "compare methods on the same problem",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareMethods,
	}
	addRunFlags(compareCmd, config.DefaultConfig())
	compareCmd.Flags().Float64Var(&y0, "y0", 0, "initial value y(a)")
	compareCmd.Flags().IntVar(&nodes, "nodes", config.DefaultNodes, "number of node segments N")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run table to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export a run as an SVG chart",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets [kind]",
		Short: "list available presets for a kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for kind: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	exploreCmd := &cobra.Command{
		Use:   "explore [kind] [function]",
		Short: "explore step and method interactively",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  explore,
	}
	addRunFlags(exploreCmd, config.DefaultConfig())
	exploreCmd.Flags().Float64Var(&y0, "y0", 0, "initial value y(a)")
	exploreCmd.Flags().IntVar(&nodes, "nodes", config.DefaultNodes, "number of node segments N")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run every step of a yaml scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	scenarioCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the runs")

	sweepCmd := &cobra.Command{
		Use:   "sweep [kind] [function]",
		Short: "vary one parameter and tabulate the error",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runSweep,
	}
	addRunFlags(sweepCmd, config.DefaultConfig())
	sweepCmd.Flags().Float64Var(&y0, "y0", 0, "initial value y(a)")
	sweepCmd.Flags().IntVar(&nodes, "nodes", config.DefaultNodes, "number of node segments N")
	sweepCmd.Flags().StringVar(&sweepParam, "param", "step", "parameter to vary (step, nodes, b, y0)")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0.01, "first parameter value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0.1, "last parameter value")
	sweepCmd.Flags().IntVar(&sweepN, "n", 10, "number of values")
	sweepCmd.Flags().IntVar(&workers, "workers", 4, "concurrent runs")

	rootCmd.AddCommand(integrateCmd, solveCmd, interpolateCmd, convergeCmd, compareCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, exploreCmd, scenarioCmd, sweepCmd)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command, def *config.Config) {
	cmd.Flags().StringVar(&method, "method", def.Method, "numerical method")
	cmd.Flags().Float64Var(&a, "a", def.A, "left bound")
	cmd.Flags().Float64Var(&b, "b", def.B, "right bound")
	cmd.Flags().Float64Var(&step, "step", def.Step, "step size")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().IntVar(&maxRows, "rows", 20, "maximum table rows to print (0 for all)")
	cmd.Flags().StringVar(&theme, "theme", "terminal", "color theme")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order. A function argument wins over all of them.
func resolveConfig(cmd *cobra.Command, kind experiment.Kind, function string) (*config.Config, error) {
	cfg := config.DefaultFor(string(kind))

	if preset != "" {
		p := config.GetPreset(string(kind), preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(string(kind)))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.LoadOnto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if loaded.Kind != string(kind) {
			return nil, fmt.Errorf("config file is for %s, not %s", loaded.Kind, kind)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("method") {
		cfg.Method = method
	}
	if flags.Changed("a") {
		cfg.A = a
	}
	if flags.Changed("b") {
		cfg.B = b
	}
	if flags.Changed("step") {
		cfg.Step = step
	}
	if flags.Changed("y0") {
		cfg.Y0 = y0
	}
	if flags.Changed("nodes") {
		cfg.Nodes = nodes
	}
	if flags.Changed("points") {
		cfg.Points = points
	}
	if function != "" {
		cfg.Function = function
	}

	cfg.Kind = string(kind)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.WithField("config", fmt.Sprintf("%+v", *cfg)).Debug("resolved config")
	return cfg, nil
}

func newRunner() *experiment.Runner {
	return experiment.NewRunner(experiment.NewRegistry()).WithLogger(logger)
}

func newStore() *storage.Store {
	return storage.New(dataDir).WithLogger(logger)
}

func parseKind(s string) (experiment.Kind, error) {
	for _, k := range experiment.Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown kind: %s (available: %v)", s, experiment.Kinds)
}
