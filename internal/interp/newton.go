package interp

import "github.com/san-kum/numlab/internal/numeric"

// DividedDifference returns the Newton coefficient c_i = f[x0, ..., xi],
// computed directly as
//
//	c_i = Σ_{k=0..i} y[k] / Π_{j=0..i, j≠k} (x[k] - x[j])
//
// without building the divided-difference table.
func DividedDifference[T numeric.Float](x, y []T, i int) T {
	if i == 0 {
		return y[0]
	}

	var c T
	for k := 0; k <= i; k++ {
		c += y[k] / omega(x, k, i)
	}
	return c
}

// omega is Π_{j=0..i, j≠k} (x[k] - x[j]).
func omega[T numeric.Float](x []T, k, i int) T {
	w := T(1)
	for j := 0; j <= i; j++ {
		if j != k {
			w *= x[k] - x[j]
		}
	}
	return w
}

// basis is Π_{k<j} (point - x[k]).
func basis[T numeric.Float](x []T, j int, point T) T {
	v := T(1)
	for k := 0; k < j; k++ {
		v *= point - x[k]
	}
	return v
}

// Newton evaluates the interpolating polynomial in Newton form:
//
//	P(point) = y[0] + Σ_{j=1..n-1} c_j * Π_{k<j} (point - x[k])
//
// Every coefficient is recomputed, so a call costs O(n²) divisions per
// term. An empty sample set yields 0.
func Newton[T numeric.Float](x, y []T, point T) T {
	if len(x) != len(y) {
		panic(badLength)
	}
	if len(x) == 0 {
		return 0
	}

	p := y[0]
	for j := 1; j < len(x); j++ {
		p += DividedDifference(x, y, j) * basis(x, j, point)
	}
	return p
}

// NewtonAppend adds the highest-degree term for the last sample:
//
//	P_n(point) = prev + c_{n-1} * Π_{k<n-1} (point - x[k])
//
// prev must be the value at point of the Newton polynomial through the
// first n-1 samples (0 when n == 1). That is not checked; any other prev
// gives a meaningless result.
func NewtonAppend[T numeric.Float](x, y []T, point, prev T) T {
	if len(x) != len(y) {
		panic(badLength)
	}
	n := len(x)
	if n == 0 {
		return prev
	}
	return prev + DividedDifference(x, y, n-1)*basis(x, n-1, point)
}
