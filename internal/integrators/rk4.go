package integrators

import "github.com/san-kum/numlab/internal/numeric"

// RK4 is the classical four-stage Runge–Kutta stepper.
type RK4[T numeric.Float] struct{}

func NewRK4[T numeric.Float]() *RK4[T] {
	return &RK4[T]{}
}

func (r *RK4[T]) Step(f numeric.ODEFunc[T], y, x, h T) T {
	half := h / 2

	k1 := f(y, x)
	k2 := f(y+half*k1, x+half)
	k3 := f(y+half*k2, x+half)
	k4 := f(y+h*k3, x+h)

	return y + h/6*(k1+2*k2+2*k3+k4)
}

// RungeKutta4 solves y' = f(y, x) with the classical fourth-order method.
func RungeKutta4[T numeric.Float](f numeric.ODEFunc[T], y0, a, b T, opts ...numeric.Option[T]) (numeric.Trajectory[T], error) {
	return Solve[T](NewRK4[T](), f, y0, a, b, opts...)
}
