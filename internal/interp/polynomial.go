package interp

import "github.com/san-kum/numlab/internal/numeric"

// Interpolator evaluates a fixed interpolant.
type Interpolator[T numeric.Float] interface {
	// Eval evaluates the interpolant at point.
	Eval(point T) T
	// EvalAll evaluates every point. An optional output slice of the same
	// length avoids the allocation.
	EvalAll(points []T, out ...[]T) []T
}

var (
	_ Interpolator[float64] = &Polynomial[float64]{}
	_ Interpolator[float64] = &LagrangeInterpolator[float64]{}
)

// Polynomial is the Newton form of the interpolating polynomial with its
// coefficients computed once. Eval is safe for concurrent use; Append is
// not.
type Polynomial[T numeric.Float] struct {
	x, y   []T
	coeffs []T
}

// NewPolynomial validates the samples and precomputes the coefficients.
// The slices are copied.
func NewPolynomial[T numeric.Float](x, y []T) (*Polynomial[T], error) {
	if err := Validate(x, y); err != nil {
		return nil, err
	}

	p := &Polynomial[T]{
		x:      append([]T(nil), x...),
		y:      append([]T(nil), y...),
		coeffs: make([]T, len(x)),
	}
	for i := range p.coeffs {
		p.coeffs[i] = DividedDifference(p.x, p.y, i)
	}
	return p, nil
}

// Degree is the number of samples minus one.
func (p *Polynomial[T]) Degree() int {
	return len(p.x) - 1
}

// Coefficients returns a copy of c_0 ... c_n.
func (p *Polynomial[T]) Coefficients() []T {
	return append([]T(nil), p.coeffs...)
}

// Append adds one sample and computes only the new highest coefficient;
// the existing ones do not change.
func (p *Polynomial[T]) Append(x, y T) error {
	for i, v := range p.x {
		if v == x {
			return &numeric.NodeError{I: i, J: len(p.x), Wrapped: numeric.ErrDuplicateNode}
		}
	}

	p.x = append(p.x, x)
	p.y = append(p.y, y)
	p.coeffs = append(p.coeffs, DividedDifference(p.x, p.y, len(p.x)-1))
	return nil
}

// Eval evaluates the polynomial with nested multiplication.
func (p *Polynomial[T]) Eval(point T) T {
	n := len(p.coeffs)
	v := p.coeffs[n-1]
	for j := n - 2; j >= 0; j-- {
		v = v*(point-p.x[j]) + p.coeffs[j]
	}
	return v
}

func (p *Polynomial[T]) EvalAll(points []T, out ...[]T) []T {
	return evalAll(p.Eval, points, out)
}

// LagrangeInterpolator wraps Lagrange over validated samples.
type LagrangeInterpolator[T numeric.Float] struct {
	x, y []T
}

func NewLagrange[T numeric.Float](x, y []T) (*LagrangeInterpolator[T], error) {
	if err := Validate(x, y); err != nil {
		return nil, err
	}
	return &LagrangeInterpolator[T]{
		x: append([]T(nil), x...),
		y: append([]T(nil), y...),
	}, nil
}

func (l *LagrangeInterpolator[T]) Eval(point T) T {
	return Lagrange(l.x, l.y, point)
}

func (l *LagrangeInterpolator[T]) EvalAll(points []T, out ...[]T) []T {
	return evalAll(l.Eval, points, out)
}

func evalAll[T numeric.Float](eval func(T) T, points []T, out [][]T) []T {
	var dst []T
	if len(out) > 0 && len(out[0]) == len(points) {
		dst = out[0]
	} else {
		dst = make([]T, len(points))
	}
	for i, pt := range points {
		dst[i] = eval(pt)
	}
	return dst
}
