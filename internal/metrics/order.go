package metrics

import "math"

// ObservedOrder estimates the convergence order between successive errors
// measured at step, step/2, step/4, ...:
//
//	p_k = log2(errs[k] / errs[k+1])
//
// The result has len(errs)-1 entries. A pair containing a zero or
// non-finite error yields NaN.
func ObservedOrder(errs []float64) []float64 {
	if len(errs) < 2 {
		return nil
	}

	orders := make([]float64, len(errs)-1)
	for k := range orders {
		e0, e1 := math.Abs(errs[k]), math.Abs(errs[k+1])
		if e0 == 0 || e1 == 0 || math.IsInf(e0, 0) || math.IsInf(e1, 0) {
			orders[k] = math.NaN()
			continue
		}
		orders[k] = math.Log2(e0 / e1)
	}
	return orders
}

// Monotone reports whether errs strictly decreases.
func Monotone(errs []float64) bool {
	for k := 1; k < len(errs); k++ {
		if !(math.Abs(errs[k]) < math.Abs(errs[k-1])) {
			return false
		}
	}
	return true
}
