package fixtures

// Layer tags mirror the layer keys the connection engine and pathfind
// package key off of (rules.Table entries, pathfind.SourceLayer).
const (
	LayerSource = "postes_source"
	LayerBT     = "reseau_bt"
	LayerPole   = "poteau"
)

// Method name constants, used to prefix validation errors with the
// generator name for context.
const (
	MethodRadialFeeder = "RadialFeeder"
	MethodGridNetwork  = "GridNetwork"
)

// Minimum parameter values accepted by each generator.
const (
	MinSources        = 1
	MinFeedersPerSrc  = 1
	MinSegmentsPerFdr = 1
	MinGridDim        = 2
)

// DefaultSegmentLengthM is the distance, in meters, between consecutive
// poles along a feeder or grid edge when no WithSegmentLengthM option is
// given.
const DefaultSegmentLengthM = 50.0
