package integrators

import "github.com/san-kum/numlab/internal/numeric"

type Euler[T numeric.Float] struct{}

func NewEuler[T numeric.Float]() *Euler[T] {
	return &Euler[T]{}
}

func (e *Euler[T]) Step(f numeric.ODEFunc[T], y, x, h T) T {
	return y + h*f(y, x)
}

// EulerMethod solves y' = f(y, x) with the explicit first-order Euler
// method: y[i] = y[i-1] + step*f(y[i-1], x[i-1]).
func EulerMethod[T numeric.Float](f numeric.ODEFunc[T], y0, a, b T, opts ...numeric.Option[T]) (numeric.Trajectory[T], error) {
	return Solve[T](NewEuler[T](), f, y0, a, b, opts...)
}
