// Package interp evaluates the interpolating polynomial through a set of
// samples (x[i], y[i]).
//
// Two free functions compute the same polynomial in different forms:
//
//   - [Lagrange]: direct Lagrange formula, O(n²) per point
//   - [Newton]: Newton form with divided differences recomputed per point
//
// Neither checks its input. Equal x-values divide by zero and the result
// is ±Inf or NaN; mismatched slice lengths panic. Call [Validate] first, or
// use [NewPolynomial] / [NewLagrange], which validate once and then
// evaluate many points.
//
// [NewtonAppend] raises the degree of an already evaluated Newton
// polynomial by one node. It trusts the caller to pass the value of the
// lower-degree polynomial and is easy to misuse; [Polynomial.Append] is the
// checked alternative.
package interp
