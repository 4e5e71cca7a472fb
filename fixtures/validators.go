package fixtures

import "fmt"

// validateMin ensures got >= min, returning a "<Method>: ..." wrapped
// ErrTooFewNodes otherwise.
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: parameter must be >= %d, got %d: %w", method, min, got, ErrTooFewNodes)
	}

	return nil
}
