package quadrature

import "github.com/san-kum/numlab/internal/numeric"

// Simpson integrates f over [a, b) with the composite Simpson rule:
//
//	I = step/3 * [ f(a) + f(b-step) + 4·Σ f(x_odd) + 2·Σ f(x_even) ]
//
// Odd points are a+step, a+3·step, ...; even points a+2·step, a+4·step, ...;
// both stop at b. As in Trapezoidal, the closing ordinate is f(b-step).
func Simpson[T numeric.Float](f numeric.Func[T], a, b T, opts ...numeric.Option[T]) (T, error) {
	step, err := prepare(a, b, opts)
	if err != nil {
		return 0, err
	}

	sum := f(a) + f(b-step)
	sum += 4 * strided(f, a, b, step, 1)
	sum += 2 * strided(f, a, b, step, 2)
	return step / 3 * sum, nil
}

// strided sums f(a + i*step) for i = first, first+2, ... while below b.
func strided[T numeric.Float](f numeric.Func[T], a, b, step T, first int) T {
	var sum T
	for i := first; ; i += 2 {
		x := a + T(i)*step
		if !(x < b) {
			break
		}
		sum += f(x)
	}
	return sum
}
