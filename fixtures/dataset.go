package fixtures

import (
	"fmt"

	"github.com/gridtopo/gridtopo/feature"
	"github.com/gridtopo/gridtopo/geom"
	"github.com/gridtopo/gridtopo/graph"
)

// FeatureSpec is one generated feature: an id, its layer, and its geometry.
// Both WGS84 and Metric are populated with the same geometry when the spec
// is loaded into a Store, since generators already produce metric
// coordinates (see package doc).
type FeatureSpec struct {
	ID       string
	Layer    string
	Geometry geom.Geometry
}

// Dataset is the output of every generator in this package: a feature set
// plus its precomputed connection sets, ready for either the feature/connect
// layer (via Store) or the graph/pathfind layer (via GraphRefs) without
// re-running the spatial connection engine.
type Dataset struct {
	Features    []FeatureSpec
	Connections map[string]feature.ConnectionSet
}

// Store builds a feature.Store from the dataset: every feature is added with
// WGS84 and Metric both set to its generated geometry, then every recorded
// ConnectionSet is attached.
// Complexity: O(N) for N features plus O(E) for recorded connections.
func (ds *Dataset) Store() (*feature.Store, error) {
	store := feature.NewStore()
	for _, spec := range ds.Features {
		f := &feature.Feature{
			ID:     spec.ID,
			Layer:  spec.Layer,
			WGS84:  spec.Geometry,
			Metric: spec.Geometry,
		}
		if err := store.Add(f); err != nil {
			return nil, fmt.Errorf("fixtures: adding %s: %w", spec.ID, err)
		}
	}

	for id, cs := range ds.Connections {
		if err := store.SetConnections(id, cs); err != nil {
			return nil, fmt.Errorf("fixtures: connecting %s: %w", id, err)
		}
	}

	return store, nil
}

// GraphRefs renders the dataset as graph.Build inputs, for tests that only
// need the graph/pathfind layer and want to skip the spatial index and
// feature store entirely.
// Complexity: O(N + E).
func (ds *Dataset) GraphRefs() ([]graph.FeatureRef, map[string]graph.ConnectionSetRef) {
	refs := make([]graph.FeatureRef, 0, len(ds.Features))
	for _, spec := range ds.Features {
		refs = append(refs, graph.FeatureRef{ID: spec.ID, Layer: spec.Layer})
	}

	conns := make(map[string]graph.ConnectionSetRef, len(ds.Connections))
	for id, cs := range ds.Connections {
		conns[id] = graph.ConnectionSetRef{All: cs.All, Start: cs.Start, End: cs.End}
	}

	return refs, conns
}
