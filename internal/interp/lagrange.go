package interp

import "github.com/san-kum/numlab/internal/numeric"

const badLength = "interp: x and y lengths differ"

// Lagrange evaluates at point the polynomial of degree len(x)-1 through
// (x[i], y[i]):
//
//	L(point) = Σ_i y[i] * Π_{j≠i} (point - x[j]) / (x[i] - x[j])
//
// An empty sample set yields 0.
func Lagrange[T numeric.Float](x, y []T, point T) T {
	if len(x) != len(y) {
		panic(badLength)
	}

	var l T
	for i := range x {
		q := T(1)
		for j := range x {
			if j != i {
				q = q * (point - x[j]) / (x[i] - x[j])
			}
		}
		l += y[i] * q
	}
	return l
}
