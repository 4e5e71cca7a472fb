package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridtopo/gridtopo/feature"
	"github.com/gridtopo/gridtopo/geom"
	"github.com/gridtopo/gridtopo/graph"
	"github.com/gridtopo/gridtopo/pathfind"
)

func entryIDs(entries []pathfind.Entry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}

	return ids
}

// TestFindSourcePath_DirectBFS grounds scenario 4: a two-segment BT feeder
// should resolve to the source substation via a plain BFS.
func TestFindSourcePath_DirectBFS(t *testing.T) {
	g, err := graph.Build(
		[]graph.FeatureRef{
			{ID: "postes_source_1", Layer: "postes_source"},
			{ID: "reseau_bt_1", Layer: "reseau_bt"},
			{ID: "reseau_bt_2", Layer: "reseau_bt"},
		},
		map[string]graph.ConnectionSetRef{
			"reseau_bt_1": {All: []string{"postes_source_1", "reseau_bt_2"}, Start: []string{"postes_source_1"}, End: []string{"reseau_bt_2"}},
			"reseau_bt_2": {All: []string{"reseau_bt_1"}, Start: []string{"reseau_bt_1"}},
		},
	)
	require.NoError(t, err)

	store := feature.NewStore()

	result, failure, err := pathfind.FindSourcePath(g, store, "reseau_bt_2")
	require.NoError(t, err)
	require.Nil(t, failure)
	require.NotNil(t, result)

	assert.Equal(t, []string{"reseau_bt_2", "reseau_bt_1", "postes_source_1"}, entryIDs(result.Path))
	assert.Equal(t, pathfind.StrategyDirectBFS, result.Strategy)
}

func buildTwoComponentGraph(t *testing.T) (*graph.Graph, *feature.Store) {
	t.Helper()

	store := feature.NewStore()
	add := func(id, layer string, p geom.Point) {
		require.NoError(t, store.Add(&feature.Feature{ID: id, Layer: layer, WGS84: geom.NewPoint(p), Metric: geom.NewPoint(p)}))
	}
	// src_B is relabeled off the source layer, so line_B's component holds no
	// source substation and only a bridge (~49 m, line_B->line_A) reaches src_A.
	add("src_A", "postes_source", geom.Point{X: 0, Y: 0})
	add("line_A", "reseau_bt", geom.Point{X: 0, Y: 1})
	add("src_B", "poteau", geom.Point{X: 0, Y: 50})
	add("line_B", "reseau_bt", geom.Point{X: 0, Y: 50})

	g, err := graph.Build(
		[]graph.FeatureRef{
			{ID: "src_A", Layer: "postes_source"},
			{ID: "line_A", Layer: "reseau_bt"},
			{ID: "src_B", Layer: "poteau"},
			{ID: "line_B", Layer: "reseau_bt"},
		},
		map[string]graph.ConnectionSetRef{
			"line_A": {All: []string{"src_A"}},
			"line_B": {All: []string{"src_B"}},
		},
	)
	require.NoError(t, err)

	return g, store
}

// TestFindSourcePath_BridgingFailsBeyondCap sets both bridge caps to 10 m,
// tighter than the ~49 m gap between the components, confirming bridging
// refuses to cross it.
func TestFindSourcePath_BridgingFailsBeyondCap(t *testing.T) {
	g, store := buildTwoComponentGraph(t)

	_, failure, err := pathfind.FindSourcePath(g, store, "line_B", pathfind.WithBridgeCapM(10), pathfind.WithMultiHopBridgeCapM(10))
	require.NoError(t, err)
	require.NotNil(t, failure)
}

func TestFindSourcePath_BridgingSucceedsWithinCap(t *testing.T) {
	g, store := buildTwoComponentGraph(t)

	result, failure, err := pathfind.FindSourcePath(g, store, "line_B", pathfind.WithBridgeCapM(100))
	require.NoError(t, err)
	require.Nil(t, failure)
	require.NotNil(t, result)

	assert.Equal(t, pathfind.StrategyComponentBridge, result.Strategy)
	assert.Equal(t, "src_A", result.Path[len(result.Path)-1].ID)

	var bridged bool
	for _, e := range result.Path {
		if e.ViaBridge {
			bridged = true
		}
	}
	assert.True(t, bridged, "expected a bridge-tagged entry in the path")
}

func TestFindSourcePath_RejectsUnknownOrigin(t *testing.T) {
	g, store := buildTwoComponentGraph(t)

	_, _, err := pathfind.FindSourcePath(g, store, "ghost")
	assert.ErrorIs(t, err, pathfind.ErrOriginNotFound)
}

func TestFindSourcePath_EndpointAugmentedRecoversDroppedAllEdge(t *testing.T) {
	g, err := graph.Build(
		[]graph.FeatureRef{
			{ID: "postes_source_1", Layer: "postes_source"},
			{ID: "reseau_bt_1", Layer: "reseau_bt"},
		},
		map[string]graph.ConnectionSetRef{
			// Only Start records the connection; All accidentally omits it,
			// simulating the malformed-ingest edge case strategy 2 recovers.
			"reseau_bt_1": {Start: []string{"postes_source_1"}},
		},
	)
	require.NoError(t, err)

	store := feature.NewStore()

	result, failure, err := pathfind.FindSourcePath(g, store, "reseau_bt_1")
	require.NoError(t, err)
	require.Nil(t, failure)
	require.NotNil(t, result)
	assert.Equal(t, pathfind.StrategyEndpointAugmentedBFS, result.Strategy)
}
