// Package integrators solves scalar Cauchy problems y' = f(y, x), y(a) = y0
// on a uniform grid.
//
// A [Stepper] advances the solution by one step; [Solve] drives a stepper
// across [a, b] and returns the whole trajectory. [EulerMethod] and
// [RungeKutta] are the two named solvers; [RungeKutta4] is the classical
// four-stage method, kept separate because RungeKutta is the two-stage
// Heun form.
package integrators

import "github.com/san-kum/numlab/internal/numeric"

type Stepper[T numeric.Float] interface {
	Step(f numeric.ODEFunc[T], y, x, h T) T
}

// Solver is the common signature of the named solvers.
type Solver[T numeric.Float] func(f numeric.ODEFunc[T], y0, a, b T, opts ...numeric.Option[T]) (numeric.Trajectory[T], error)

// Segments returns the trajectory length for [a, b] at the given step:
// floor((b-a)/step) + 1. The arguments must already have passed
// numeric.CheckInterval.
func Segments[T numeric.Float](a, b, step T) int {
	return int((b-a)/step) + 1
}

// Solve integrates from a with y(a) = y0 and returns Segments(a, b, step)
// values; y[i] belongs to x = a + i*step. Nothing is evaluated when the
// interval or step is invalid.
func Solve[T numeric.Float](s Stepper[T], f numeric.ODEFunc[T], y0, a, b T, opts ...numeric.Option[T]) (numeric.Trajectory[T], error) {
	step := numeric.Resolve(opts...).Step
	if err := numeric.CheckInterval(a, b, step); err != nil {
		return nil, err
	}

	n := Segments(a, b, step)
	y := make(numeric.Trajectory[T], n)
	y[0] = y0
	for i := 1; i < n; i++ {
		x := a + T(i-1)*step
		y[i] = s.Step(f, y[i-1], x, step)
	}
	return y, nil
}
