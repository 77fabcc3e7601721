package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/numlab/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// Convergence is the outcome of repeating a run while halving the step.
type Convergence struct {
	Config   Config
	Steps    []float64
	Errors   []float64
	Orders   []float64
	Monotone bool
}

// Converge runs cfg at Step, Step/2, ..., Step/2^halvings concurrently and
// records the maximum absolute error of each run. Interpolation has no
// step and is rejected.
func (r *Runner) Converge(ctx context.Context, cfg Config, halvings int) (*Convergence, error) {
	if cfg.Kind == KindInterpolation {
		return nil, fmt.Errorf("experiment: convergence study needs a step, not supported for %s", cfg.Kind)
	}
	if halvings < 1 {
		return nil, fmt.Errorf("experiment: need at least one halving, got %d", halvings)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	steps := make([]float64, halvings+1)
	steps[0] = cfg.Step
	for i := 1; i < len(steps); i++ {
		steps[i] = steps[i-1] / 2
	}

	errs := make([]float64, len(steps))
	g, ctx := errgroup.WithContext(ctx)
	for i, step := range steps {
		c := cfg
		c.Step = step
		g.Go(func() error {
			res, err := r.Run(ctx, c)
			if err != nil {
				return fmt.Errorf("step %g: %w", c.Step, err)
			}
			errs[i] = res.Metrics[metrics.NewMaxAbsError().Name()]
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.logger.WithField("method", cfg.Method).Debugf("convergence errors %v", errs)
	return &Convergence{
		Config:   cfg,
		Steps:    steps,
		Errors:   errs,
		Orders:   metrics.ObservedOrder(errs),
		Monotone: metrics.Monotone(errs),
	}, nil
}
