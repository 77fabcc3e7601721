package numeric

import (
	"errors"
	"fmt"
	"math"
)

// MaxSteps bounds the number of grid steps a single call may take.
const MaxSteps = 1 << 26

// Domain errors for numerical routines.
var (
	// ErrInvalidRange indicates integration bounds with a >= b, or a
	// bound that is not finite.
	ErrInvalidRange = errors.New("numeric: invalid integration range (a must be less than b)")

	// ErrInvalidStep indicates a step that is not a positive finite number.
	ErrInvalidStep = errors.New("numeric: step must be positive")

	// ErrTooManySteps indicates (b-a)/step above MaxSteps.
	ErrTooManySteps = errors.New("numeric: too many steps for the interval")

	// ErrLengthMismatch indicates x and y sample slices of different length.
	ErrLengthMismatch = errors.New("numeric: x and y sample lengths differ")

	// ErrEmptySamples indicates an interpolation request without samples.
	ErrEmptySamples = errors.New("numeric: no interpolation samples")

	// ErrDuplicateNode indicates two interpolation nodes share an x-value.
	ErrDuplicateNode = errors.New("numeric: duplicate interpolation node")
)

// RangeError wraps an interval error with the offending bounds.
type RangeError struct {
	A, B    float64
	Step    float64
	Wrapped error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: a=%g b=%g step=%g", e.Wrapped.Error(), e.A, e.B, e.Step)
}

func (e *RangeError) Unwrap() error {
	return e.Wrapped
}

// NodeError wraps a sample error with the indices involved.
type NodeError struct {
	I, J    int
	Wrapped error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("%s: x[%d] == x[%d]", e.Wrapped.Error(), e.I, e.J)
}

func (e *NodeError) Unwrap() error {
	return e.Wrapped
}

// CheckRange reports whether [a, b) is a usable interval: both bounds
// finite and a < b.
func CheckRange[T Float](a, b T) error {
	if !finite(a) || !finite(b) || !(a < b) {
		return &RangeError{A: float64(a), B: float64(b), Wrapped: ErrInvalidRange}
	}
	return nil
}

// CheckInterval checks the bounds like CheckRange, then the step, then
// that the grid stays within MaxSteps.
func CheckInterval[T Float](a, b, step T) error {
	if !finite(a) || !finite(b) || !(a < b) {
		return &RangeError{A: float64(a), B: float64(b), Step: float64(step), Wrapped: ErrInvalidRange}
	}
	if !finite(step) || !(step > 0) {
		return &RangeError{A: float64(a), B: float64(b), Step: float64(step), Wrapped: ErrInvalidStep}
	}
	if n := float64(b-a) / float64(step); !(n <= MaxSteps) {
		return &RangeError{A: float64(a), B: float64(b), Step: float64(step), Wrapped: ErrTooManySteps}
	}
	return nil
}

func finite[T Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
