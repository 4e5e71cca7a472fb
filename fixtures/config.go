package fixtures

import "fmt"

// fixtureConfig holds the parameters every generator resolves before laying
// out coordinates: the segment length between consecutive nodes, and an
// id prefix namespace so multiple datasets can be merged into one store
// without id collisions.
//
// fixtureConfig is not safe for concurrent mutation; each generator call
// builds its own via newFixtureConfig.
type fixtureConfig struct {
	segmentLengthM float64
	idPrefix       string
}

// Option customizes a generator by mutating a fixtureConfig before layout
// begins.
type Option func(*fixtureConfig)

// newFixtureConfig returns a fixtureConfig seeded with defaults, then
// applies opts in order; later options override earlier ones.
// Complexity: O(len(opts)) time, O(1) space.
func newFixtureConfig(opts ...Option) *fixtureConfig {
	cfg := &fixtureConfig{
		segmentLengthM: DefaultSegmentLengthM,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithSegmentLengthM overrides the spacing between consecutive nodes along
// a feeder or grid edge. Values <= 0 are ignored (the default is kept),
// since a generator call should never silently produce degenerate,
// zero-length geometry.
func WithSegmentLengthM(metersPerSegment float64) Option {
	return func(cfg *fixtureConfig) {
		if metersPerSegment > 0 {
			cfg.segmentLengthM = metersPerSegment
		}
	}
}

// WithIDPrefix namespaces every id the generator produces under prefix,
// separated by an underscore, so two datasets can be merged into one Store
// without id collisions.
func WithIDPrefix(prefix string) Option {
	return func(cfg *fixtureConfig) {
		cfg.idPrefix = prefix
	}
}

// id renders a namespaced feature id for the given layer key and ordinal,
// reusing feature.ID2's "<layer>_<n>" shape and prepending the configured
// prefix when set.
func (cfg *fixtureConfig) id(layerKey string, ordinal int) string {
	base := fmt.Sprintf("%s_%d", layerKey, ordinal)
	if cfg.idPrefix == "" {
		return base
	}

	return cfg.idPrefix + "_" + base
}
