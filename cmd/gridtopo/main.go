// Command gridtopo wires the core pipeline end to end — feature store,
// spatial index, rules, connection engine, graph, path finder, and query
// front-end — against a synthetic demo network, and prints the resulting
// path as JSON.
//
// CLI argument parsing and logging configuration are out of scope per the
// core's design (see SPEC_FULL.md §1); this command hardcodes a small
// demo query and reports failures via log.Fatalf, in the style of lvlath's
// own examples/ demos.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/gridtopo/gridtopo/config"
	"github.com/gridtopo/gridtopo/connect"
	"github.com/gridtopo/gridtopo/fixtures"
	"github.com/gridtopo/gridtopo/geom"
	"github.com/gridtopo/gridtopo/graph"
	"github.com/gridtopo/gridtopo/pathfind"
	"github.com/gridtopo/gridtopo/query"
	"github.com/gridtopo/gridtopo/rules"
	"github.com/gridtopo/gridtopo/spindex"
)

func main() {
	cfg := config.Default()

	ds, err := fixtures.RadialFeeder(1, 4, 3, fixtures.WithSegmentLengthM(30))
	if err != nil {
		log.Fatalf("gridtopo: building demo network: %v", err)
	}

	store, err := ds.Store()
	if err != nil {
		log.Fatalf("gridtopo: loading demo network: %v", err)
	}

	entries := make([]spindex.Entry, 0, store.Len())
	for _, id := range store.All() {
		f, _ := store.Get(id)
		entries = append(entries, spindex.Entry{ID: f.ID, Layer: f.Layer, Geometry: f.Metric})
	}

	idx, err := spindex.Build(entries)
	if err != nil {
		log.Fatalf("gridtopo: building spatial index: %v", err)
	}

	refs, conns := ds.GraphRefs()
	g, err := graph.Build(refs, conns)
	if err != nil {
		log.Fatalf("gridtopo: building graph: %v", err)
	}

	table := rules.NewTable(cfg.Radius, nil)

	resp, failure, err := query.FindPathFromPoint(30, 0, idx, store, g, identityProjector{}, query.Options{
		MaxBTDistanceM: cfg.MaxBTDistanceM,
		PathOptions:    []pathfind.Option{pathfind.WithMaxHops(cfg.MaxHops), pathfind.WithBridgeCapM(cfg.BridgeCapM)},
	})
	if err != nil {
		log.Fatalf("gridtopo: query failed: %v", err)
	}
	if failure != nil {
		log.Fatalf("gridtopo: no path found: %s", failure.Reason)
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		log.Fatalf("gridtopo: rendering result: %v", err)
	}
	fmt.Println(string(out))

	// Demonstrates the C5 worker pool is wired and runnable against a real
	// feature set, even though this synthetic network's connections were
	// already resolved at generation time.
	if _, err := connect.Run(context.Background(), store, idx, table, connect.Options{Workers: cfg.WorkerCount}); err != nil {
		log.Fatalf("gridtopo: connect.Run: %v", err)
	}
}

// identityProjector treats the demo network's already-metric coordinates
// as WGS84 input, so the query point above lines up with fixtures'
// generated geometry without a real CRS reprojection dependency.
type identityProjector struct{}

func (identityProjector) Project(p geom.Point) geom.Point       { return p }
func (identityProjector) Unproject(p geom.Point) geom.Point     { return p }
func (identityProjector) ProjectGeometry(g geom.Geometry) geom.Geometry { return g }
