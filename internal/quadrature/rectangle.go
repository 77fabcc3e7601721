package quadrature

import "github.com/san-kum/numlab/internal/numeric"

// LeftRectangle integrates f over [a, b) with left Riemann sums:
//
//	I = step * Σ f(a + i*step),  a + i*step < b
//
// When (b-a) is not a multiple of step the last rectangle still starts
// below b and is counted whole, so the sum covers slightly more than [a, b).
func LeftRectangle[T numeric.Float](f numeric.Func[T], a, b T, opts ...numeric.Option[T]) (T, error) {
	step, err := prepare(a, b, opts)
	if err != nil {
		return 0, err
	}

	var sum T
	for i := 0; ; i++ {
		x := a + T(i)*step
		if !(x < b) {
			break
		}
		sum += f(x)
	}
	return sum * step, nil
}
