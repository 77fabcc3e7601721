package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// DefaultStep is the step used when no WithStep option is given.
const DefaultStep = 0.01

// Float is any IEEE floating-point type.
type Float interface {
	constraints.Float
}

// Func is a real function of one variable.
type Func[T Float] func(x T) T

// ODEFunc describes the Cauchy problem y' = f(y, x).
type ODEFunc[T Float] func(y, x T) T

// Trajectory holds solver output; element i belongs to x = a + i*step.
type Trajectory[T Float] []T

func (tr Trajectory[T]) Clone() Trajectory[T] {
	c := make(Trajectory[T], len(tr))
	copy(c, tr)
	return c
}

func (tr Trajectory[T]) IsValid() bool {
	for _, v := range tr {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Last returns the final value, or zero for an empty trajectory.
func (tr Trajectory[T]) Last() T {
	if len(tr) == 0 {
		return 0
	}
	return tr[len(tr)-1]
}

// Nodes returns the x-values the trajectory was sampled at.
func (tr Trajectory[T]) Nodes(a, step T) []T {
	xs := make([]T, len(tr))
	for i := range xs {
		xs[i] = a + T(i)*step
	}
	return xs
}

// Settings are the resolved options of one call.
type Settings[T Float] struct {
	Step T
}

type Option[T Float] func(*Settings[T])

// WithStep sets the sample spacing.
func WithStep[T Float](step T) Option[T] {
	return func(s *Settings[T]) {
		s.Step = step
	}
}

// Resolve applies opts over the defaults.
func Resolve[T Float](opts ...Option[T]) Settings[T] {
	s := Settings[T]{Step: DefaultStep}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
