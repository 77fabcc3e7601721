package quadrature

import "github.com/san-kum/numlab/internal/numeric"

// Rule is the common signature of every quadrature rule in this package.
type Rule[T numeric.Float] func(f numeric.Func[T], a, b T, opts ...numeric.Option[T]) (T, error)

// WithStep is numeric.WithStep, re-exported for call-site brevity.
func WithStep[T numeric.Float](step T) numeric.Option[T] {
	return numeric.WithStep(step)
}

// prepare resolves the options and validates the interval.
func prepare[T numeric.Float](a, b T, opts []numeric.Option[T]) (T, error) {
	s := numeric.Resolve(opts...)
	if err := numeric.CheckInterval(a, b, s.Step); err != nil {
		return 0, err
	}
	return s.Step, nil
}
