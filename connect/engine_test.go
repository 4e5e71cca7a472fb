package connect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridtopo/gridtopo/connect"
	"github.com/gridtopo/gridtopo/feature"
	"github.com/gridtopo/gridtopo/geom"
	"github.com/gridtopo/gridtopo/rules"
	"github.com/gridtopo/gridtopo/spindex"
)

func mustLine(t *testing.T, coords ...geom.Point) geom.Geometry {
	t.Helper()
	g, err := geom.NewLineString(coords)
	require.NoError(t, err)

	return g
}

func buildIndex(t *testing.T, store *feature.Store) *spindex.Index {
	t.Helper()

	var entries []spindex.Entry
	for _, id := range store.All() {
		f, _ := store.Get(id)
		entries = append(entries, spindex.Entry{ID: f.ID, Layer: f.Layer, Geometry: f.Metric})
	}
	idx, err := spindex.Build(entries)
	require.NoError(t, err)

	return idx
}

// TestConnectFeature_PriorityMonoPicksSingleAdmissibleTarget grounds
// scenario 1 of the worked examples: a BT line whose layer rule uses
// priority_connections + mono_per_endpoint should connect its start endpoint
// to the single postes_source candidate within the FAR radius.
func TestConnectFeature_PriorityMonoPicksSingleAdmissibleTarget(t *testing.T) {
	store := feature.NewStore()
	require.NoError(t, store.Add(&feature.Feature{
		ID: "postes_source_1", Layer: "postes_source",
		WGS84: geom.NewPoint(geom.Point{X: 0, Y: 0}), Metric: geom.NewPoint(geom.Point{X: 0, Y: 0}),
	}))
	require.NoError(t, store.Add(&feature.Feature{
		ID: "reseau_bt_1", Layer: "reseau_bt",
		WGS84:  mustLine(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 0, Y: 2}),
		Metric: mustLine(t, geom.Point{X: 0, Y: 0}, geom.Point{X: 0, Y: 2}),
	}))

	idx := buildIndex(t, store)
	table := rules.NewTable(rules.RadiusScale{Close: 1, Mid: 3, Far: 10}, []rules.LayerRules{
		{
			LayerKey:        "reseau_bt",
			BaseRadiusM:     1,
			MonoPerEndpoint: true,
			Priority:        map[string]rules.TargetRule{"postes_source": {Priority: 1, RadiusM: 10}},
		},
	})

	line, _ := store.Get("reseau_bt_1")
	cs, err := connect.ConnectFeature(line, idx, table)
	require.NoError(t, err)

	assert.Equal(t, []string{"postes_source_1"}, cs.Start)
	assert.Empty(t, cs.End)
	assert.Equal(t, []string{"postes_source_1"}, cs.All)
}

// TestConnectFeature_SoloWinsOverPriorityMono grounds scenario 2: solo is
// applied before priority-mono, so only the nearest solo-listed candidate
// survives even though a farther priority candidate is also in range.
func TestConnectFeature_SoloWinsOverPriorityMono(t *testing.T) {
	store := feature.NewStore()
	require.NoError(t, store.Add(&feature.Feature{
		ID: "postes_electrique_1", Layer: "postes_electrique",
		WGS84: geom.NewPoint(geom.Point{X: 0, Y: 0.5}), Metric: geom.NewPoint(geom.Point{X: 0, Y: 0.5}),
	}))
	require.NoError(t, store.Add(&feature.Feature{
		ID: "postes_source_1", Layer: "postes_source",
		WGS84: geom.NewPoint(geom.Point{X: 0, Y: 0}), Metric: geom.NewPoint(geom.Point{X: 0, Y: 0}),
	}))
	require.NoError(t, store.Add(&feature.Feature{
		ID: "reseau_souterrain_hta_1", Layer: "reseau_souterrain_hta",
		WGS84:  mustLine(t, geom.Point{X: 0, Y: 0.5}, geom.Point{X: 0, Y: 5}),
		Metric: mustLine(t, geom.Point{X: 0, Y: 0.5}, geom.Point{X: 0, Y: 5}),
	}))

	idx := buildIndex(t, store)
	table := rules.NewTable(rules.RadiusScale{Close: 1, Mid: 3, Far: 10}, []rules.LayerRules{
		{
			LayerKey:        "reseau_souterrain_hta",
			BaseRadiusM:     10,
			MonoPerEndpoint: true,
			Priority:        map[string]rules.TargetRule{"postes_source": {Priority: 1, RadiusM: 10}},
			Solo: map[string]rules.TargetRule{
				"postes_source":     {Priority: 1, RadiusM: 10},
				"postes_electrique": {Priority: 2, RadiusM: 10},
			},
		},
	})

	line, _ := store.Get("reseau_souterrain_hta_1")
	cs, err := connect.ConnectFeature(line, idx, table)
	require.NoError(t, err)

	assert.Equal(t, []string{"postes_electrique_1"}, cs.Start, "solo picks the nearest solo-listed candidate, not the priority one")
}

// TestConnectFeature_ExcludeProducesEmptyConnections grounds scenario 3: two
// mutually-excluded source substations never connect to each other.
func TestConnectFeature_ExcludeProducesEmptyConnections(t *testing.T) {
	store := feature.NewStore()
	require.NoError(t, store.Add(&feature.Feature{
		ID: "postes_source_1", Layer: "postes_source",
		WGS84: geom.NewPoint(geom.Point{X: 0, Y: 0}), Metric: geom.NewPoint(geom.Point{X: 0, Y: 0}),
	}))
	require.NoError(t, store.Add(&feature.Feature{
		ID: "postes_source_2", Layer: "postes_source",
		WGS84: geom.NewPoint(geom.Point{X: 0, Y: 5}), Metric: geom.NewPoint(geom.Point{X: 0, Y: 5}),
	}))

	idx := buildIndex(t, store)
	table := rules.NewTable(rules.RadiusScale{Close: 1, Mid: 3, Far: 10}, []rules.LayerRules{
		{
			LayerKey:    "postes_source",
			BaseRadiusM: 10,
			Exclude:     map[string]bool{"postes_source": true, "postes_electrique": true, "position_geographique": true},
		},
	})

	f1, _ := store.Get("postes_source_1")
	cs, err := connect.ConnectFeature(f1, idx, table)
	require.NoError(t, err)
	assert.Empty(t, cs.All)
}

func TestConnectFeature_PointFeatureExcludesSelf(t *testing.T) {
	store := feature.NewStore()
	require.NoError(t, store.Add(&feature.Feature{
		ID: "poteau_0", Layer: "poteau",
		WGS84: geom.NewPoint(geom.Point{X: 0, Y: 0}), Metric: geom.NewPoint(geom.Point{X: 0, Y: 0}),
	}))

	idx := buildIndex(t, store)
	table := rules.NewTable(rules.RadiusScale{Close: 1, Mid: 3, Far: 10}, nil)

	f, _ := store.Get("poteau_0")
	cs, err := connect.ConnectFeature(f, idx, table)
	require.NoError(t, err)
	assert.Empty(t, cs.All)
}
