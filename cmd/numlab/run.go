package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/numlab/internal/automation"
	"github.com/san-kum/numlab/internal/experiment"
	"github.com/san-kum/numlab/internal/export"
	"github.com/san-kum/numlab/internal/storage"
	"github.com/san-kum/numlab/internal/viz"
	"github.com/spf13/cobra"
)

func runKind(kind experiment.Kind) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		function := ""
		if len(args) > 0 {
			function = args[0]
		}
		cfg, err := resolveConfig(cmd, kind, function)
		if err != nil {
			return err
		}

		result, err := newRunner().Run(cmd.Context(), cfg.Experiment())
		if err != nil {
			return err
		}

		th := viz.GetTheme(theme)
		fmt.Printf("%s %s on %s [%g, %g]\n", kind, result.Config.Method, result.Config.Function, result.Config.A, result.Config.B)
		fmt.Println(viz.RenderTable(th, result.Columns, result.Rows, maxRows))
		fmt.Printf("\ncompleted in %v\n", result.Elapsed)
		fmt.Println("\nmetrics:")
		fmt.Print(viz.RenderMetrics(th, result.Metrics))

		if noSave {
			return nil
		}
		runID, err := newStore().Save(result)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
		return nil
	}
}

func convergeRun(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	function := ""
	if len(args) > 1 {
		function = args[1]
	}
	cfg, err := resolveConfig(cmd, kind, function)
	if err != nil {
		return err
	}

	conv, err := newRunner().Converge(cmd.Context(), cfg.Experiment(), halvings)
	if err != nil {
		return err
	}

	rows := make([][]float64, len(conv.Steps))
	for i := range conv.Steps {
		order := math.NaN()
		if i > 0 {
			order = conv.Orders[i-1]
		}
		rows[i] = []float64{conv.Steps[i], conv.Errors[i], order}
	}

	fmt.Printf("convergence of %s on %s\n", cfg.Method, cfg.Function)
	fmt.Println(viz.RenderTable(viz.GetTheme(theme), []string{"step", "max_abs_error", "order"}, rows, 0))
	fmt.Printf("monotone: %v\n", conv.Monotone)
	return nil
}

func compareMethods(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd, kind, args[1])
	if err != nil {
		return err
	}

	runner := newRunner()
	methods := args[2:]
	if len(methods) == 0 {
		methods = runner.Registry().Methods(kind)
	}

	fmt.Printf("comparing methods for %s on %s [%g, %g]\n\n", kind, cfg.Function, cfg.A, cfg.B)
	fmt.Printf("%-16s  %-14s  %-14s  %-10s\n", "method", "max_abs_error", "rms_error", "time_ms")
	fmt.Println(strings.Repeat("-", 60))

	for _, name := range methods {
		exp := cfg.Experiment()
		exp.Method = name

		result, err := runner.Run(cmd.Context(), exp)
		if err != nil {
			fmt.Printf("%-16s  error: %v\n", name, err)
			continue
		}
		fmt.Printf("%-16s  %14.6e  %14.6e  %10.3f\n", name,
			result.Metrics["max_abs_error"], result.Metrics["rms_error"],
			float64(result.Elapsed.Microseconds())/1000)
	}
	return nil
}

func explore(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	function := ""
	if len(args) > 1 {
		function = args[1]
	}
	cfg, err := resolveConfig(cmd, kind, function)
	if err != nil {
		return err
	}
	return viz.RunExplorer(newRunner(), cfg.Experiment())
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := newStore().List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tMETHOD\tFUNCTION\tTIME\tRANGE\tMAX_ERR")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t[%g, %g]\t%.3e\n",
			run.ID,
			run.Kind,
			run.Method,
			run.Function,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.A, run.B,
			run.Metrics["max_abs_error"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	result, err := newStore().LoadResult(args[0])
	if err != nil {
		return err
	}
	if len(result.Rows) < 2 {
		return fmt.Errorf("no data to plot: run %s has %d row(s)", args[0], len(result.Rows))
	}

	fmt.Printf("run: %s\n", args[0])
	fmt.Printf("%s %s on %s\n", result.Config.Kind, result.Config.Method, result.Config.Function)
	fmt.Printf("samples: %d\n\n", len(result.Rows))

	cols := result.Columns
	graph, err := viz.PlotSeries(fmt.Sprintf("%s vs %s", cols[1], cols[2]), 80, 12,
		viz.Column(result.Rows, 1), viz.Column(result.Rows, 2))
	if err != nil {
		return err
	}
	fmt.Println(graph)
	fmt.Println()

	graph, err = viz.PlotSeries("delta", 80, 8, viz.Column(result.Rows, len(cols)-1))
	if err != nil {
		return err
	}
	fmt.Println(graph)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	table, err := newStore().LoadTable(args[0])
	if err != nil {
		return err
	}
	if len(table.Rows) == 0 {
		return fmt.Errorf("no data to export")
	}
	return storage.WriteCSV(os.Stdout, table.Columns, table.Rows)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	result, err := newStore().LoadResult(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON("-", result)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	table, err := newStore().LoadTable(args[0])
	if err != nil {
		return err
	}
	xs, series, err := export.TableSeries(table.Columns, table.Rows)
	if err != nil {
		return fmt.Errorf("run %s: %w", args[0], err)
	}
	svg, err := export.ChartToSVG(xs, series, 800, 400)
	if err != nil {
		return err
	}

	if outFile == "" {
		_, err = fmt.Print(svg)
		return err
	}
	return os.WriteFile(outFile, []byte(svg), 0644)
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	if scenario.Name != "" {
		fmt.Printf("scenario: %s\n", scenario.Name)
	}

	results, err := automation.RunScenario(cmd.Context(), scenario, newRunner(), logger)
	st := newStore()
	for _, result := range results {
		fmt.Printf("%-14s %-16s %-10s max_abs_error=%.6e\n",
			result.Config.Kind, result.Config.Method, result.Config.Function, result.Metrics["max_abs_error"])
		if noSave {
			continue
		}
		runID, saveErr := st.Save(result)
		if saveErr != nil {
			return saveErr
		}
		fmt.Printf("  run id: %s\n", runID)
	}
	return err
}

func runSweep(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}
	function := ""
	if len(args) > 1 {
		function = args[1]
	}
	cfg, err := resolveConfig(cmd, kind, function)
	if err != nil {
		return err
	}

	sweep := &automation.Sweep{
		Base:     cfg.Experiment(),
		Param:    sweepParam,
		Min:      sweepFrom,
		Max:      sweepTo,
		NumSteps: sweepN,
		Workers:  workers,
	}
	results, err := automation.RunSweep(cmd.Context(), sweep, newRunner())
	if err != nil {
		return err
	}

	rows := make([][]float64, len(results))
	errs := make([]float64, len(results))
	for i, r := range results {
		rows[i] = []float64{r.ParamValue, r.MaxAbsError, r.RMSError}
		errs[i] = r.MaxAbsError
	}
	fmt.Printf("sweep of %s for %s on %s\n", sweepParam, cfg.Method, cfg.Function)
	fmt.Println(viz.RenderTable(viz.GetTheme(theme), []string{sweepParam, "max_abs_error", "rms_error"}, rows, maxRows))

	graph, err := viz.PlotSeries("max_abs_error vs "+sweepParam, 80, 10, errs)
	if err != nil {
		return err
	}
	fmt.Println(graph)
	return nil
}
