// Package quadrature approximates definite integrals with fixed-step
// composite rules.
//
// All rules sample the integrand at x_i = a + i*step while x_i < b and share
// one signature, [Rule]:
//
//	I, err := quadrature.Simpson(math.Sin, 0, math.Pi/2, quadrature.WithStep(0.001))
//
// The step defaults to numeric.DefaultStep. An interval with a >= b or a
// non-positive step returns an error before the integrand is evaluated.
//
// The trapezoidal and Simpson rules close the interval with f(b-step)
// instead of f(b). Results are therefore not the textbook values; they
// converge to the integral as the step shrinks but must not be compared to
// other libraries sample for sample.
package quadrature
