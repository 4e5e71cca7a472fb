package geom

import "math"

// Endpoints returns the first and last coordinates of a LineString. It
// returns ErrDegenerateLine for anything with fewer than two coordinates and
// ErrEmptyGeometry called on a KindPoint geometry (callers should use
// Centroid for points instead).
func Endpoints(g Geometry) (start, end Point, err error) {
	if g.Kind != KindLineString {
		return Point{}, Point{}, ErrEmptyGeometry
	}
	if len(g.Coords) < 2 {
		return Point{}, Point{}, ErrDegenerateLine
	}

	return g.Coords[0], g.Coords[len(g.Coords)-1], nil
}

// Centroid returns the representative probe point for a geometry: the point
// itself for KindPoint, or the arithmetic mean of coordinates for anything
// else (used both for true points and for the "fall back to centroid"
// treatment of non-Point/LineString geometries).
func Centroid(g Geometry) Point {
	if len(g.Coords) == 0 {
		return Point{}
	}
	if g.Kind == KindPoint {
		return g.Coords[0]
	}

	var sx, sy float64
	for _, p := range g.Coords {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(g.Coords))

	return Point{X: sx / n, Y: sy / n}
}

// IsDegenerateAsPoint reports whether a LineString's endpoints coincide (or
// it has collapsed to a single location), meaning it should be treated as a
// Point at that location for connection purposes.
func IsDegenerateAsPoint(g Geometry) bool {
	if g.Kind != KindLineString || len(g.Coords) < 2 {
		return true
	}
	start, end := g.Coords[0], g.Coords[len(g.Coords)-1]
	if start == end {
		return true
	}
	for _, p := range g.Coords[1:] {
		if p != start {
			return false
		}
	}

	return true
}

// DistancePoints returns the Euclidean distance between two points, assumed
// to already be in the same (metric) CRS.
func DistancePoints(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// distancePointSegment returns the shortest distance from p to the segment ab.
func distancePointSegment(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return DistancePoints(p, a)
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := Point{X: a.X + t*dx, Y: a.Y + t*dy}

	return DistancePoints(p, proj)
}

// DistanceMetric returns the metric-CRS distance between two geometries:
// point-to-point for two points, point-to-nearest-segment for a point versus
// a linestring, and the minimum of segmentDistance over segment pairs for
// two linestrings (exact unless two of their segments cross).
func DistanceMetric(g1, g2 Geometry) float64 {
	if g1.Kind == KindPoint && g2.Kind == KindPoint {
		return DistancePoints(g1.Coords[0], g2.Coords[0])
	}
	if g1.Kind == KindPoint {
		return distancePointToLine(g1.Coords[0], g2)
	}
	if g2.Kind == KindPoint {
		return distancePointToLine(g2.Coords[0], g1)
	}

	best := math.Inf(1)
	for i := 0; i+1 < len(g1.Coords); i++ {
		for j := 0; j+1 < len(g2.Coords); j++ {
			d := segmentDistance(g1.Coords[i], g1.Coords[i+1], g2.Coords[j], g2.Coords[j+1])
			if d < best {
				best = d
			}
		}
	}

	return best
}

func distancePointToLine(p Point, line Geometry) float64 {
	best := math.Inf(1)
	for i := 0; i+1 < len(line.Coords); i++ {
		d := distancePointSegment(p, line.Coords[i], line.Coords[i+1])
		if d < best {
			best = d
		}
	}

	return best
}

// segmentDistance returns the minimum distance between segments a1a2 and
// b1b2, sampled via the four endpoint-to-segment distances. This is exact for
// segments that do not cross; for crossing segments it returns the smallest
// endpoint-to-segment distance instead of zero, since no segment-segment
// intersection test is made.
func segmentDistance(a1, a2, b1, b2 Point) float64 {
	d1 := distancePointSegment(a1, b1, b2)
	d2 := distancePointSegment(a2, b1, b2)
	d3 := distancePointSegment(b1, a1, a2)
	d4 := distancePointSegment(b2, a1, a2)

	return math.Min(math.Min(d1, d2), math.Min(d3, d4))
}

// BufferBBox returns the axis-aligned square bounding the disk of radius r
// centered at p, in whatever CRS p is expressed in.
func BufferBBox(p Point, r float64) Rect {
	return Rect{MinX: p.X - r, MinY: p.Y - r, MaxX: p.X + r, MaxY: p.Y + r}
}

// GeometryBBox returns the tight axis-aligned bounding box of a geometry's
// coordinates, with no buffering.
func GeometryBBox(g Geometry) Rect {
	if len(g.Coords) == 0 {
		return Rect{}
	}
	r := Rect{MinX: g.Coords[0].X, MinY: g.Coords[0].Y, MaxX: g.Coords[0].X, MaxY: g.Coords[0].Y}
	for _, p := range g.Coords[1:] {
		if p.X < r.MinX {
			r.MinX = p.X
		}
		if p.X > r.MaxX {
			r.MaxX = p.X
		}
		if p.Y < r.MinY {
			r.MinY = p.Y
		}
		if p.Y > r.MaxY {
			r.MaxY = p.Y
		}
	}

	return r
}

// IntersectsDisk reports whether any part of g lies within radius r of
// center, using the exact metric distance (not the bounding-box
// approximation spatial-index callers must refine after a bbox query).
func IntersectsDisk(g Geometry, center Point, r float64) bool {
	if g.Kind == KindPoint {
		return DistancePoints(g.Coords[0], center) <= r
	}

	return distancePointToLine(center, g) <= r
}
