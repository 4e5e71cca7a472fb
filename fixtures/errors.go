package fixtures

import "errors"

// ErrTooFewNodes indicates a generator parameter (source count, feeder
// count, segment count, grid dimension) is smaller than the minimum the
// requested topology needs to be meaningful.
var ErrTooFewNodes = errors.New("fixtures: parameter too small")

// ErrInvalidSpacing indicates a spacing/length option was non-positive.
var ErrInvalidSpacing = errors.New("fixtures: spacing must be positive")
