package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridtopo/gridtopo/fixtures"
	"github.com/gridtopo/gridtopo/graph"
)

func TestRadialFeeder_RejectsTooFewParameters(t *testing.T) {
	_, err := fixtures.RadialFeeder(0, 1, 1)
	assert.ErrorIs(t, err, fixtures.ErrTooFewNodes)

	_, err = fixtures.RadialFeeder(1, 0, 1)
	assert.ErrorIs(t, err, fixtures.ErrTooFewNodes)

	_, err = fixtures.RadialFeeder(1, 1, 0)
	assert.ErrorIs(t, err, fixtures.ErrTooFewNodes)
}

func TestRadialFeeder_BuildsConnectedFeederChain(t *testing.T) {
	ds, err := fixtures.RadialFeeder(1, 3, 4)
	require.NoError(t, err)

	store, err := ds.Store()
	require.NoError(t, err)
	assert.Equal(t, 1+3*4, store.Len())

	refs, conns := ds.GraphRefs()
	g, err := graph.Build(refs, conns)
	require.NoError(t, err)

	source := "postes_source_0"
	require.True(t, g.HasNode(source))
	assert.Equal(t, 3, len(g.Neighbors(source)))

	comps := g.Components()
	assert.Equal(t, 1, len(comps))
	assert.Equal(t, 1+3*4, g.LargestComponentSize())
}

func TestRadialFeeder_MultipleSourcesAreSeparateComponents(t *testing.T) {
	ds, err := fixtures.RadialFeeder(2, 2, 2)
	require.NoError(t, err)

	refs, conns := ds.GraphRefs()
	g, err := graph.Build(refs, conns)
	require.NoError(t, err)

	assert.Equal(t, 2, len(g.Components()))
}

func TestRadialFeeder_IDPrefixNamespaces(t *testing.T) {
	a, err := fixtures.RadialFeeder(1, 1, 1, fixtures.WithIDPrefix("left"))
	require.NoError(t, err)
	b, err := fixtures.RadialFeeder(1, 1, 1, fixtures.WithIDPrefix("right"))
	require.NoError(t, err)

	merged := map[string]bool{}
	for _, spec := range append(append([]fixtures.FeatureSpec{}, a.Features...), b.Features...) {
		require.False(t, merged[spec.ID], "id collision: %s", spec.ID)
		merged[spec.ID] = true
	}
}

func TestGridNetwork_RejectsTooFewDimensions(t *testing.T) {
	_, err := fixtures.GridNetwork(1, 3)
	assert.ErrorIs(t, err, fixtures.ErrTooFewNodes)

	_, err = fixtures.GridNetwork(3, 1)
	assert.ErrorIs(t, err, fixtures.ErrTooFewNodes)
}

func TestGridNetwork_BuildsFullyConnectedGrid(t *testing.T) {
	ds, err := fixtures.GridNetwork(3, 3)
	require.NoError(t, err)

	refs, conns := ds.GraphRefs()
	g, err := graph.Build(refs, conns)
	require.NoError(t, err)

	assert.Equal(t, 1, len(g.Components()))

	source := "postes_source_0"
	require.True(t, g.HasNode(source))
	assert.Equal(t, 2, len(g.Neighbors(source)))
}

func TestGridNetwork_SegmentLengthAffectsGeometry(t *testing.T) {
	ds, err := fixtures.GridNetwork(2, 2, fixtures.WithSegmentLengthM(10))
	require.NoError(t, err)

	store, err := ds.Store()
	require.NoError(t, err)

	pole, ok := store.Get("poteau_0")
	require.True(t, ok)
	assert.NotEqual(t, 0.0, pole.Metric.Coords[0].X+pole.Metric.Coords[0].Y)
}
