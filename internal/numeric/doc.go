// Package numeric provides the shared primitives of the numlab routines.
//
// The package defines the types every integrator, solver and interpolator
// is written against:
//
//   - [Float]: constraint over float32 and float64 (and named types of them)
//   - [Func]: integrand f(x)
//   - [ODEFunc]: right-hand side of the Cauchy problem y' = f(y, x)
//   - [Trajectory]: ordered solution values of an ODE solver
//   - [Option]: step-size configuration, defaulting to [DefaultStep]
//
// # Errors
//
// Integrators and ODE solvers reject an interval with a >= b or a
// non-finite bound by returning an error wrapping [ErrInvalidRange] before
// the integrand is evaluated. A step that is not a positive finite number
// is rejected the same way with [ErrInvalidStep], and a grid of more than
// [MaxSteps] steps with [ErrTooManySteps]. Interpolation routines do not check anything; the
// optional validation path reports [ErrLengthMismatch], [ErrEmptySamples]
// and [ErrDuplicateNode].
//
// # Thread Safety
//
// Nothing in this package or the routines built on it holds state between
// calls. Every routine may be called concurrently.
package numeric
