package hampath

import (
	"fmt"

	"github.com/katalvlaran/hamroute/matrix"
)

// validateMatrix checks the preconditions shared by every entry point:
// non-nil matrix, n within limit, every distance ≤ MaxDistance.
// It returns n on success.
//
// The builder already guarantees symmetry and non-negative distances, so
// only the solver-specific limits are checked here.
//
// Complexity: O(n²).
func validateMatrix(d *matrix.Distance, limit int) (int, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	n := d.N()
	if n > limit {
		return 0, fmt.Errorf("n=%d, limit=%d: %w", n, limit, ErrTooManyLocations)
	}
	for i := 0; i < n; i++ {
		row := d.Row(i)
		for j := i + 1; j < n; j++ {
			if row[j] > MaxDistance {
				return 0, fmt.Errorf("distance(%d,%d)=%d: %w", i, j, row[j], ErrDistanceTooLarge)
			}
		}
	}

	return n, nil
}

// validateStart verifies that start ∈ [0, n).
func validateStart(n, start int) error {
	if start < 0 || start >= n {
		return fmt.Errorf("start=%d, n=%d: %w", start, n, ErrStartOutOfRange)
	}

	return nil
}

// validateDirection rejects directions outside the enum.
func validateDirection(dir Direction) error {
	if !dir.valid() {
		return fmt.Errorf("direction=%d: %w", uint8(dir), ErrUnknownDirection)
	}

	return nil
}
