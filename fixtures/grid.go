package fixtures

import (
	"github.com/gridtopo/gridtopo/feature"
	"github.com/gridtopo/gridtopo/geom"
)

// GridNetwork builds an R x C 4-neighborhood grid of poles, connected by
// reseau_bt line segments of WithSegmentLengthM length along each edge,
// with a single source substation standing in for the (0,0) corner pole.
// IDs follow row-major order, matching lvlath's builder.Grid row-major
// "r,c" labeling convention, but namespaced per layer rather than shared
// across a single vertex id space.
//
// Complexity: O(rows*cols) poles, O(rows*cols) edges.
// Determinism: layout is a pure function of its parameters.
func GridNetwork(rows, cols int, opts ...Option) (*Dataset, error) {
	if err := validateMin(MethodGridNetwork, rows, MinGridDim); err != nil {
		return nil, err
	}
	if err := validateMin(MethodGridNetwork, cols, MinGridDim); err != nil {
		return nil, err
	}

	cfg := newFixtureConfig(opts...)
	ds := &Dataset{Connections: make(map[string]feature.ConnectionSet)}

	nodeID := make(map[[2]int]string, rows*cols)

	poleOrdinal := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pt := geom.Point{X: float64(c) * cfg.segmentLengthM, Y: float64(r) * cfg.segmentLengthM}

			var id, layer string
			if r == 0 && c == 0 {
				id, layer = cfg.id(LayerSource, 0), LayerSource
			} else {
				id, layer = cfg.id(LayerPole, poleOrdinal), LayerPole
				poleOrdinal++
			}

			nodeID[[2]int{r, c}] = id
			ds.Features = append(ds.Features, FeatureSpec{ID: id, Layer: layer, Geometry: geom.NewPoint(pt)})
		}
	}

	link := func(aKey, bKey [2]int) error {
		aID, bID := nodeID[aKey], nodeID[bKey]
		aPt := geom.Point{X: float64(aKey[1]) * cfg.segmentLengthM, Y: float64(aKey[0]) * cfg.segmentLengthM}
		bPt := geom.Point{X: float64(bKey[1]) * cfg.segmentLengthM, Y: float64(bKey[0]) * cfg.segmentLengthM}

		line, err := geom.NewLineString([]geom.Point{aPt, bPt})
		if err != nil {
			return err
		}

		lineID := cfg.id(LayerBT, len(ds.Features))
		ds.Features = append(ds.Features, FeatureSpec{ID: lineID, Layer: LayerBT, Geometry: line})
		ds.Connections[lineID] = feature.ConnectionSet{All: []string{aID, bID}, Start: []string{aID}, End: []string{bID}}

		aConns := ds.Connections[aID]
		aConns.All = append(aConns.All, lineID)
		ds.Connections[aID] = aConns

		bConns := ds.Connections[bID]
		bConns.All = append(bConns.All, lineID)
		ds.Connections[bID] = bConns

		return nil
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if err := link([2]int{r, c}, [2]int{r, c + 1}); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := link([2]int{r, c}, [2]int{r + 1, c}); err != nil {
					return nil, err
				}
			}
		}
	}

	return ds, nil
}
