// File: api.go
// Role: Build — the single entry point that folds a feature set's per-feature
// connection sets into a Graph.
package graph

import "fmt"

// FeatureRef is the minimal view of a feature Build needs: its ID and source
// layer. graph intentionally does not import package feature so the graph
// model can be rebuilt from any persisted representation (e.g. a re-read
// GeoJSON mirror) without re-running the connection engine.
type FeatureRef struct {
	ID    string
	Layer string
}

// ConnectionSetRef is the minimal view of a feature.ConnectionSet Build needs.
type ConnectionSetRef struct {
	All   []string
	Start []string
	End   []string
}

// Build constructs a Graph from a feature set and its precomputed connection
// sets. Construction is two-phase: every edge is inserted directed (u -> v
// for each v in conns[u].All), then a second pass symmetrizes — if u -> v
// exists but v -> u does not, v -> u is added. References to ids absent from
// features are skipped rather than treated as an error, since a feature can
// legitimately be dropped at ingest after its neighbors already recorded a
// connection to it.
// Complexity: O(V + E).
func Build(features []FeatureRef, conns map[string]ConnectionSetRef) (*Graph, error) {
	g := New()

	for _, f := range features {
		if err := g.AddNode(f.ID, f.Layer); err != nil {
			return nil, fmt.Errorf("graph.Build: AddNode(%s): %w", f.ID, err)
		}
	}

	g.mu.Lock()
	for u, cs := range conns {
		if _, ok := g.nodes[u]; !ok {
			continue
		}
		for _, v := range cs.All {
			if _, ok := g.nodes[v]; !ok {
				continue
			}
			g.linkAll(u, v)
		}
		for _, v := range cs.Start {
			if _, ok := g.nodes[v]; !ok {
				continue
			}
			g.linkStart(u, v)
		}
		for _, v := range cs.End {
			if _, ok := g.nodes[v]; !ok {
				continue
			}
			g.linkEnd(u, v)
		}
	}
	g.symmetrize()
	g.mu.Unlock()

	return g, nil
}
