package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridtopo/gridtopo/geom"
)

func TestNewLineString_RejectsDegenerateInput(t *testing.T) {
	_, err := geom.NewLineString(nil)
	assert.ErrorIs(t, err, geom.ErrEmptyGeometry)

	_, err = geom.NewLineString([]geom.Point{{X: 1, Y: 1}})
	assert.ErrorIs(t, err, geom.ErrDegenerateLine)
}

func TestEndpoints_ReturnsFirstAndLast(t *testing.T) {
	line, err := geom.NewLineString([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}})
	require.NoError(t, err)

	start, end, err := geom.Endpoints(line)
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: 0, Y: 0}, start)
	assert.Equal(t, geom.Point{X: 2, Y: 0}, end)
}

func TestEndpoints_RejectsPoint(t *testing.T) {
	_, _, err := geom.Endpoints(geom.NewPoint(geom.Point{X: 0, Y: 0}))
	assert.Error(t, err)
}

func TestIsDegenerateAsPoint(t *testing.T) {
	collapsed, err := geom.NewLineString([]geom.Point{{X: 5, Y: 5}, {X: 5, Y: 5}})
	require.NoError(t, err)
	assert.True(t, geom.IsDegenerateAsPoint(collapsed))

	normal, err := geom.NewLineString([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}})
	require.NoError(t, err)
	assert.False(t, geom.IsDegenerateAsPoint(normal))
}

func TestDistanceMetric_PointToPoint(t *testing.T) {
	a := geom.NewPoint(geom.Point{X: 0, Y: 0})
	b := geom.NewPoint(geom.Point{X: 3, Y: 4})
	assert.InDelta(t, 5.0, geom.DistanceMetric(a, b), 1e-9)
}

func TestDistanceMetric_PointToLineSegment(t *testing.T) {
	p := geom.NewPoint(geom.Point{X: 5, Y: 5})
	line, err := geom.NewLineString([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}})
	require.NoError(t, err)

	assert.InDelta(t, 5.0, geom.DistanceMetric(p, line), 1e-9)
}

func TestDistanceMetric_PointBeyondSegmentEndClampsToEndpoint(t *testing.T) {
	p := geom.NewPoint(geom.Point{X: -5, Y: 0})
	line, err := geom.NewLineString([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}})
	require.NoError(t, err)

	assert.InDelta(t, 5.0, geom.DistanceMetric(p, line), 1e-9)
}

func TestBufferBBox_CentersOnPoint(t *testing.T) {
	r := geom.BufferBBox(geom.Point{X: 10, Y: 10}, 5)
	assert.Equal(t, geom.Rect{MinX: 5, MinY: 5, MaxX: 15, MaxY: 15}, r)
}

func TestRect_IntersectsTouchingCounts(t *testing.T) {
	a := geom.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	b := geom.Rect{MinX: 10, MinY: 10, MaxX: 20, MaxY: 20}
	assert.True(t, a.Intersects(b))

	c := geom.Rect{MinX: 11, MinY: 11, MaxX: 20, MaxY: 20}
	assert.False(t, a.Intersects(c))
}

func TestIntersectsDisk(t *testing.T) {
	line, err := geom.NewLineString([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}})
	require.NoError(t, err)

	assert.True(t, geom.IntersectsDisk(line, geom.Point{X: 5, Y: 3}, 5))
	assert.False(t, geom.IntersectsDisk(line, geom.Point{X: 5, Y: 10}, 5))
}

func TestWGS84Equirect_RoundTrip(t *testing.T) {
	proj := geom.NewWGS84Equirect(45.0)
	original := geom.Point{X: 2.3522, Y: 48.8566}

	metric := proj.Project(original)
	back := proj.Unproject(metric)

	assert.InDelta(t, original.X, back.X, 1e-9)
	assert.InDelta(t, original.Y, back.Y, 1e-9)
}

func TestWGS84Equirect_DistanceApproximatesHaversine(t *testing.T) {
	proj := geom.NewWGS84Equirect(48.85)

	a := proj.Project(geom.Point{X: 2.3522, Y: 48.8566})
	b := proj.Project(geom.Point{X: 2.3600, Y: 48.8600})

	got := geom.DistancePoints(a, b)
	want := haversineMeters(2.3522, 48.8566, 2.3600, 48.8600)

	assert.True(t, math.Abs(got-want) < want*0.01, "projected distance %f should be within 1%% of haversine %f", got, want)
}

func haversineMeters(lon1, lat1, lon2, lat2 float64) float64 {
	const r = 6371000.0
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return r * c
}
