package fixtures

import (
	"math"

	"github.com/gridtopo/gridtopo/feature"
	"github.com/gridtopo/gridtopo/geom"
)

// sourceSpacingM is the distance, in meters, placed between adjacent source
// substations along the x-axis so their feeder rings never overlap.
const sourceSpacingM = 4000.0

// RadialFeeder builds sourceCount source substations, each radiating
// feedersPerSource low-voltage feeders outward at evenly spaced angles,
// each feeder built from segmentsPerFeeder chained line segments of
// WithSegmentLengthM length (default DefaultSegmentLengthM).
//
// This mirrors the shape of a real rural LV network: one postes_source
// point per substation, with reseau_bt segments walking outward from it,
// each segment's Start endpoint tied to the previous segment (or the
// source itself for the first segment) and its End endpoint tied to the
// next. Sources are never cross-linked, so each is its own connected
// component — callers that need multiple sources reachable from one
// another should chain datasets with a bridge-distance test instead.
//
// Complexity: O(sourceCount * feedersPerSource * segmentsPerFeeder).
// Determinism: layout is a pure function of its parameters; two calls with
// the same arguments produce byte-identical geometry and ids.
func RadialFeeder(sourceCount, feedersPerSource, segmentsPerFeeder int, opts ...Option) (*Dataset, error) {
	if err := validateMin(MethodRadialFeeder, sourceCount, MinSources); err != nil {
		return nil, err
	}
	if err := validateMin(MethodRadialFeeder, feedersPerSource, MinFeedersPerSrc); err != nil {
		return nil, err
	}
	if err := validateMin(MethodRadialFeeder, segmentsPerFeeder, MinSegmentsPerFdr); err != nil {
		return nil, err
	}

	cfg := newFixtureConfig(opts...)
	ds := &Dataset{Connections: make(map[string]feature.ConnectionSet)}

	lineOrdinal := 0
	for si := 0; si < sourceCount; si++ {
		center := geom.Point{X: float64(si) * sourceSpacingM, Y: 0}
		sourceID := cfg.id(LayerSource, si)
		ds.Features = append(ds.Features, FeatureSpec{
			ID:       sourceID,
			Layer:    LayerSource,
			Geometry: geom.NewPoint(center),
		})
		sourceConns := ds.Connections[sourceID]

		for fi := 0; fi < feedersPerSource; fi++ {
			angle := 2 * math.Pi * float64(fi) / float64(feedersPerSource)
			dx, dy := math.Cos(angle), math.Sin(angle)

			prevID := sourceID
			for seg := 0; seg < segmentsPerFeeder; seg++ {
				start := geom.Point{
					X: center.X + dx*cfg.segmentLengthM*float64(seg),
					Y: center.Y + dy*cfg.segmentLengthM*float64(seg),
				}
				end := geom.Point{
					X: center.X + dx*cfg.segmentLengthM*float64(seg+1),
					Y: center.Y + dy*cfg.segmentLengthM*float64(seg+1),
				}
				line, err := geom.NewLineString([]geom.Point{start, end})
				if err != nil {
					return nil, err
				}

				lineID := cfg.id(LayerBT, lineOrdinal)
				lineOrdinal++
				ds.Features = append(ds.Features, FeatureSpec{ID: lineID, Layer: LayerBT, Geometry: line})

				lineConns := feature.ConnectionSet{All: []string{prevID}, Start: []string{prevID}}
				ds.Connections[lineID] = lineConns

				if prevID == sourceID {
					sourceConns.All = append(sourceConns.All, lineID)
				} else {
					prevConns := ds.Connections[prevID]
					prevConns.All = append(prevConns.All, lineID)
					prevConns.End = append(prevConns.End, lineID)
					ds.Connections[prevID] = prevConns
				}

				prevID = lineID
			}
		}

		ds.Connections[sourceID] = sourceConns
	}

	return ds, nil
}
