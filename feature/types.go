package feature

import (
	"errors"
	"fmt"

	"github.com/gridtopo/gridtopo/geom"
)

var (
	// ErrDuplicateID is returned when two features are loaded under the
	// same id.
	ErrDuplicateID = errors.New("feature: duplicate id")
	// ErrInvalidGeometry is returned when a feature's geometry fails Valid().
	ErrInvalidGeometry = errors.New("feature: invalid geometry")
	// ErrConnectionsAlreadySet is returned by SetConnections on a feature
	// that already has a ConnectionSet recorded.
	ErrConnectionsAlreadySet = errors.New("feature: connections already set")
	// ErrUnknownFeature is returned when a lookup or SetConnections targets
	// an id absent from the store.
	ErrUnknownFeature = errors.New("feature: unknown feature id")
	// ErrSelfReference is returned when a ConnectionSet references its own
	// owning feature.
	ErrSelfReference = errors.New("feature: connection set references its own feature")
)

// Attributes carries the optional commune/EPCI/department/region metadata a
// feature may have been tagged with at ingest. Every field is an optional
// string; absence is represented by the empty string.
type Attributes struct {
	CodeCommune      string
	NomCommune       string
	CodeEPCI         string
	NomEPCI          string
	CodeDepartement  string
	NomDepartement   string
	CodeRegion       string
	NomRegion        string
}

// ConnectionSet is the per-feature output of the connection engine: three
// finite id sets satisfying All ⊇ Start ∪ End, with Start ∪ End == All for
// LineString features and Start == End == nil for Point features.
type ConnectionSet struct {
	All   []string
	Start []string
	End   []string
}

// Feature is one immutable geographic record: a stable id, its source
// layer, its WGS84 geometry, a metric-projected cache computed once at
// load, and optional commune attributes. Its ConnectionSet is attached
// later, at most once, through Store.SetConnections.
type Feature struct {
	ID         string
	Layer      string
	WGS84      geom.Geometry
	Metric     geom.Geometry
	Attributes Attributes

	connections *ConnectionSet
}

// Connections returns the feature's ConnectionSet and whether one has been
// set yet. A feature that never went through Store.SetConnections reports
// an empty ConnectionSet and false; one whose set was attached empty (as
// connect.Run emits for a per-feature failure) reports an empty
// ConnectionSet and true.
func (f *Feature) Connections() (ConnectionSet, bool) {
	if f.connections == nil {
		return ConnectionSet{}, false
	}

	return *f.connections, true
}

// ID2 renders a feature identity (layer_key, ordinal) as the canonical
// "<layer>_<n>" string form used throughout the core.
func ID2(layerKey string, ordinal int) string {
	return fmt.Sprintf("%s_%d", layerKey, ordinal)
}
