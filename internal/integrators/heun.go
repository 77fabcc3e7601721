package integrators

import "github.com/san-kum/numlab/internal/numeric"

// Heun is the explicit trapezoidal predictor-corrector:
//
//	y~     = y + h*f(y, x)
//	y[i+1] = y + h/2 * (f(y, x) + f(y~, x+h))
type Heun[T numeric.Float] struct{}

func NewHeun[T numeric.Float]() *Heun[T] {
	return &Heun[T]{}
}

func (r *Heun[T]) Step(f numeric.ODEFunc[T], y, x, h T) T {
	k1 := f(y, x)
	predicted := y + h*k1
	k2 := f(predicted, x+h)
	return y + (k1+k2)/2*h
}

// RungeKutta solves y' = f(y, x) with the second-order Runge–Kutta method
// in Heun form. It is not RK4; see RungeKutta4.
func RungeKutta[T numeric.Float](f numeric.ODEFunc[T], y0, a, b T, opts ...numeric.Option[T]) (numeric.Trajectory[T], error) {
	return Solve[T](NewHeun[T](), f, y0, a, b, opts...)
}
