package query

import (
	"fmt"

	"github.com/gridtopo/gridtopo/feature"
	"github.com/gridtopo/gridtopo/geom"
	"github.com/gridtopo/gridtopo/graph"
	"github.com/gridtopo/gridtopo/pathfind"
	"github.com/gridtopo/gridtopo/spindex"
)

// DefaultMaxBTDistanceM is the default entry-point distance cap (§6:
// max_bt_distance_m).
const DefaultMaxBTDistanceM = 10000.0

// DefaultEntryCandidates is the k passed to the nearest-neighbor query
// (§4.8 step 2).
const DefaultEntryCandidates = 20

// DefaultEntryLayers are the low-voltage layers FindPathFromPoint searches
// for an entry feature.
var DefaultEntryLayers = []string{"reseau_bt", "reseau_souterrain_bt"}

// Options tunes FindPathFromPoint.
type Options struct {
	MaxBTDistanceM  float64
	EntryCandidates int
	EntryLayers     []string
	PathOptions     []pathfind.Option
}

func (o Options) maxBTDistanceM() float64 {
	if o.MaxBTDistanceM > 0 {
		return o.MaxBTDistanceM
	}

	return DefaultMaxBTDistanceM
}

func (o Options) entryCandidates() int {
	if o.EntryCandidates > 0 {
		return o.EntryCandidates
	}

	return DefaultEntryCandidates
}

func (o Options) entryLayers() []string {
	if len(o.EntryLayers) > 0 {
		return o.EntryLayers
	}

	return DefaultEntryLayers
}

// FindPathFromPoint implements §4.8: project the query point, find the
// nearest low-voltage entry candidates within MaxBTDistanceM, and try each
// in distance order until pathfind resolves a path to a source substation.
func FindPathFromPoint(lon, lat float64, idx *spindex.Index, store *feature.Store, g *graph.Graph, proj geom.Projector, opts Options) (*Response, *Failure, error) {
	metricPt := proj.Project(geom.Point{X: lon, Y: lat})

	filter := make(spindex.LayerFilter, len(opts.entryLayers()))
	for _, l := range opts.entryLayers() {
		filter[l] = true
	}

	candidates := idx.Nearest(metricPt, opts.entryCandidates(), filter)

	metricPoint := geom.NewPoint(metricPt)

	maxDist := opts.maxBTDistanceM()
	var inCap []spindex.Entry
	for _, c := range candidates {
		if geom.DistanceMetric(metricPoint, c.Geometry) <= maxDist {
			inCap = append(inCap, c)
		}
	}

	if len(inCap) == 0 {
		return nil, &Failure{Reason: ReasonNoEntryWithinCap}, nil
	}

	for _, c := range inCap {
		dist := geom.DistanceMetric(metricPoint, c.Geometry)

		result, _, err := pathfind.FindSourcePath(g, store, c.ID, opts.PathOptions...)
		if err != nil {
			return nil, nil, fmt.Errorf("query: %w", err)
		}
		if result == nil {
			continue
		}

		elements, summary := render(result, store)

		return &Response{
			QueryPoint:   Point{Lon: lon, Lat: lat},
			ClosestEntry: ClosestEntry{Layer: c.Layer, ID: c.ID, DistanceM: dist},
			Path:         elements,
			PathSummary:  summary,
		}, nil, nil
	}

	closest := inCap[0]
	closestDist := geom.DistanceMetric(metricPoint, closest.Geometry)

	return nil, &Failure{
		Reason:       ReasonNoPathFound,
		ClosestEntry: &ClosestEntry{Layer: closest.Layer, ID: closest.ID, DistanceM: closestDist},
	}, nil
}

// render converts a pathfind.Result into its JSON-facing elements and a
// summary. total_length_m sums the metric distance between consecutive
// graph nodes plus each bridge's recorded distance, giving a physically
// meaningful path length rather than a hop count.
func render(result *pathfind.Result, store *feature.Store) ([]PathElement, PathSummary) {
	elements := make([]PathElement, 0, len(result.Path))
	breakdown := make(map[string]int)
	var totalLength float64

	var prev *feature.Feature
	for _, entry := range result.Path {
		if entry.ViaBridge {
			length := entry.BridgeDistanceM
			elements = append(elements, PathElement{Bridge: bridgeLabel(result, entry), LengthM: &length})
			totalLength += length
			prev, _ = store.Get(entry.ID)

			continue
		}

		f, ok := store.Get(entry.ID)
		layer := ""
		if ok {
			layer = f.Layer
		}
		elements = append(elements, PathElement{Layer: layer, ID: entry.ID})
		breakdown[layer]++

		if prev != nil {
			totalLength += geom.DistanceMetric(prev.Metric, f.Metric)
		}
		prev = f
	}

	return elements, PathSummary{
		TotalElements:  len(elements),
		UniqueLayers:   len(breakdown),
		LayerBreakdown: breakdown,
		TotalLengthM:   totalLength,
	}
}

// bridgeLabel renders a bridge entry's "u->v" label; u is the path's
// previous element, recovered from its position in result.Path.
func bridgeLabel(result *pathfind.Result, entry pathfind.Entry) string {
	for i, e := range result.Path {
		if e.ID == entry.ID && e.ViaBridge && i > 0 {
			return fmt.Sprintf("%s->%s", result.Path[i-1].ID, entry.ID)
		}
	}

	return entry.ID
}
