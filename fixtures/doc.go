// Package fixtures generates synthetic, fully-wired grid topologies for use
// in integration tests across feature, rules, connect, graph, pathfind, and
// query. It plays the role lvlath's builder package plays for bare graphs:
// a small set of deterministic Constructor-style generators, composed behind
// functional options, except each generator here emits georeferenced
// features (source substations, low-voltage lines, poles) with their
// connection sets already resolved, rather than generic vertices.
//
// A generator returns a *Dataset: the feature specs and their precomputed
// ConnectionSet, ready to be handed either to a Store (via Dataset.Store)
// for connect/query-layer tests, or to graph.Build (via Dataset.GraphRefs)
// for graph/pathfind-layer tests that don't need the spatial machinery.
//
// Coordinates produced by every generator are already in metric units
// (meters on a local planar frame); callers that need WGS84 round-tripping
// project through geom.Projector themselves, as feature.LoadAll does at
// ingest.
package fixtures
