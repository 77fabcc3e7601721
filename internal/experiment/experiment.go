// Package experiment runs the numerical routines against reference
// solutions and tabulates the deviation, the way the classic
// "approximate vs analytical" driver programs do.
package experiment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/san-kum/numlab/internal/metrics"
	"github.com/san-kum/numlab/internal/numeric"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

type Kind string

const (
	KindIntegral      Kind = "integral"
	KindODE           Kind = "ode"
	KindInterpolation Kind = "interpolation"
)

// Kinds lists every experiment kind.
var Kinds = []Kind{KindIntegral, KindODE, KindInterpolation}

var (
	ErrUnknownKind = errors.New("experiment: unknown kind")
	ErrNoNodes     = errors.New("experiment: interpolation needs at least one segment")
)

// Config describes one run. Step and Y0 apply to integrals and ODEs;
// Nodes and Points to interpolation.
type Config struct {
	Kind     Kind
	Method   string
	Function string
	A, B     float64
	Step     float64
	Y0       float64
	// Nodes is the number of equal segments the sample nodes split [A, B] into.
	Nodes int
	// Points is the number of equal segments for the query grid; 0 means 3*Nodes.
	Points int
}

func (c Config) Validate() error {
	switch c.Kind {
	case KindIntegral, KindODE:
		return nil
	case KindInterpolation:
		if c.Nodes < 1 {
			return ErrNoNodes
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, c.Kind)
}

func (c Config) querySegments() int {
	if c.Points > 0 {
		return c.Points
	}
	return 3 * c.Nodes
}

// Result is one comparison table plus summary error metrics.
type Result struct {
	Config  Config
	Columns []string
	Rows    [][]float64
	Metrics map[string]float64
	Elapsed time.Duration
}

type Runner struct {
	registry *Registry
	logger   logrus.FieldLogger
}

func NewRunner(registry *Registry) *Runner {
	return &Runner{
		registry: registry,
		logger:   logrus.StandardLogger(),
	}
}

func (r *Runner) WithLogger(logger logrus.FieldLogger) *Runner {
	r.logger = logger
	return r
}

func (r *Runner) Registry() *Registry {
	return r.registry
}

// Run executes cfg and tabulates approximation against reference.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := r.logger.WithFields(logrus.Fields{
		"kind":     cfg.Kind,
		"method":   cfg.Method,
		"function": cfg.Function,
	})
	log.Debugf("running on [%g, %g] step=%g", cfg.A, cfg.B, cfg.Step)

	start := time.Now()
	var (
		res *Result
		err error
	)
	switch cfg.Kind {
	case KindIntegral:
		res, err = r.runIntegral(cfg)
	case KindODE:
		res, err = r.runODE(cfg)
	case KindInterpolation:
		res, err = r.runInterpolation(cfg)
	}
	if err != nil {
		log.WithError(err).Debug("run failed")
		return nil, err
	}

	res.Config = cfg
	res.Elapsed = time.Since(start)
	log.Debugf("completed %d rows in %v", len(res.Rows), res.Elapsed)
	return res, nil
}

func (r *Runner) runIntegral(cfg Config) (*Result, error) {
	in, err := r.registry.GetIntegrand(cfg.Function)
	if err != nil {
		return nil, err
	}
	rule, err := r.registry.GetRule(cfg.Method)
	if err != nil {
		return nil, err
	}

	approx, err := rule(in.F, cfg.A, cfg.B, numeric.WithStep(cfg.Step))
	if err != nil {
		return nil, err
	}
	exact := in.Exact(cfg.A, cfg.B)

	return tabulate([]string{"approx_I", "analytical_I", "delta"}, [][2]float64{{approx, exact}}, nil), nil
}

func (r *Runner) runODE(cfg Config) (*Result, error) {
	p, err := r.registry.GetProblem(cfg.Function)
	if err != nil {
		return nil, err
	}
	solve, err := r.registry.GetSolver(cfg.Method)
	if err != nil {
		return nil, err
	}

	y, err := solve(p.F, cfg.Y0, cfg.A, cfg.B, numeric.WithStep(cfg.Step))
	if err != nil {
		return nil, err
	}

	xs := y.Nodes(cfg.A, cfg.Step)
	pairs := make([][2]float64, len(y))
	for i := range y {
		pairs[i] = [2]float64{y[i], p.Exact(xs[i], cfg.A, cfg.Y0)}
	}
	return tabulate([]string{"x", "approx_y", "analytical_y", "delta"}, pairs, xs), nil
}

func (r *Runner) runInterpolation(cfg Config) (*Result, error) {
	target, err := r.registry.GetTarget(cfg.Function)
	if err != nil {
		return nil, err
	}
	factory, err := r.registry.GetInterpolator(cfg.Method)
	if err != nil {
		return nil, err
	}
	if err := numeric.CheckRange(cfg.A, cfg.B); err != nil {
		return nil, err
	}

	nodes := Segments(cfg.A, cfg.B, cfg.Nodes)
	values := make([]float64, len(nodes))
	for i, x := range nodes {
		values[i] = target.F(x)
	}

	eval, err := factory(nodes, values)
	if err != nil {
		return nil, err
	}

	query := Segments(cfg.A, cfg.B, cfg.querySegments())
	pairs := make([][2]float64, len(query))
	for i, x := range query {
		pairs[i] = [2]float64{target.F(x), eval(x)}
	}
	return tabulate([]string{"x", "f(x)", "P_n(x)", "delta"}, pairs, query), nil
}

// Segments returns n+1 nodes dividing [a, b] into n equal parts; the
// endpoints are exact.
func Segments(a, b float64, n int) []float64 {
	if n < 1 {
		return []float64{a}
	}
	return floats.Span(make([]float64, n+1), a, b)
}

// tabulate builds rows of (x, p[0], p[1], |p[0]-p[1]|), dropping the x
// column when xs is nil.
func tabulate(columns []string, pairs [][2]float64, xs []float64) *Result {
	ms := metrics.Defaults()
	rows := make([][]float64, len(pairs))
	for i, p := range pairs {
		delta := math.Abs(p[0] - p[1])
		if xs != nil {
			rows[i] = []float64{xs[i], p[0], p[1], delta}
		} else {
			rows[i] = []float64{p[0], p[1], delta}
		}
		for _, m := range ms {
			m.Observe(p[0], p[1])
		}
	}

	values := make(map[string]float64, len(ms))
	for _, m := range ms {
		values[m.Name()] = m.Value()
	}
	return &Result{Columns: columns, Rows: rows, Metrics: values}
}
