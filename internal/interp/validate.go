package interp

import "github.com/san-kum/numlab/internal/numeric"

// Validate checks the preconditions Lagrange and Newton assume: at least
// one sample, equal lengths and pairwise distinct x-values. A duplicate is
// reported as a *numeric.NodeError wrapping numeric.ErrDuplicateNode.
func Validate[T numeric.Float](x, y []T) error {
	if len(x) != len(y) {
		return numeric.ErrLengthMismatch
	}
	if len(x) == 0 {
		return numeric.ErrEmptySamples
	}

	seen := make(map[T]int, len(x))
	for i, v := range x {
		if j, ok := seen[v]; ok {
			return &numeric.NodeError{I: j, J: i, Wrapped: numeric.ErrDuplicateNode}
		}
		seen[v] = i
	}
	return nil
}
