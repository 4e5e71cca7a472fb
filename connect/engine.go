package connect

import (
	"github.com/gridtopo/gridtopo/feature"
	"github.com/gridtopo/gridtopo/geom"
	"github.com/gridtopo/gridtopo/rules"
	"github.com/gridtopo/gridtopo/spindex"
)

// ConnectFeature computes the ConnectionSet for a single feature, consulting
// the spatial index and rules table. It is pure: calling it twice with the
// same inputs produces byte-identical output, which is what lets Run
// distribute features across workers without locks.
func ConnectFeature(f *feature.Feature, idx *spindex.Index, table *rules.Table) (feature.ConnectionSet, error) {
	lr := table.For(f.Layer)

	if f.Metric.Kind == geom.KindPoint {
		return connectPoint(f, idx, table, lr)
	}

	return connectLineString(f, idx, table, lr)
}

func connectPoint(f *feature.Feature, idx *spindex.Index, table *rules.Table, lr rules.LayerRules) (feature.ConnectionSet, error) {
	probe := geom.Centroid(f.Metric)

	pool, err := gatherCandidates(idx, probe, lr.BaseRadiusM, lr, f.ID)
	if err != nil {
		return feature.ConnectionSet{}, err
	}

	return feature.ConnectionSet{All: dedupeSorted(ids(pool))}, nil
}

func connectLineString(f *feature.Feature, idx *spindex.Index, table *rules.Table, lr rules.LayerRules) (feature.ConnectionSet, error) {
	start, end, err := geom.Endpoints(f.Metric)
	if err != nil {
		return feature.ConnectionSet{}, err
	}

	startIDs, err := endpointConnections(f.ID, start, idx, table, lr)
	if err != nil {
		return feature.ConnectionSet{}, err
	}
	endIDs, err := endpointConnections(f.ID, end, idx, table, lr)
	if err != nil {
		return feature.ConnectionSet{}, err
	}

	all := dedupeSorted(append(append([]string{}, startIDs...), endIDs...))

	return feature.ConnectionSet{All: all, Start: startIDs, End: endIDs}, nil
}

// endpointConnections applies the solo → priority-mono → default rule chain
// to a single linestring endpoint, per §4.5.
func endpointConnections(selfID string, endpoint geom.Point, idx *spindex.Index, table *rules.Table, lr rules.LayerRules) ([]string, error) {
	pool, err := gatherCandidates(idx, endpoint, lr.BaseRadiusM, lr, selfID)
	if err != nil {
		return nil, err
	}

	if lr.HasSolo() {
		if filtered := filterByTable(pool, lr.Solo); len(filtered) > 0 {
			return []string{filtered[0].ID}, nil
		}
	}

	if lr.HasPriorityMono() {
		if len(pool) == 0 {
			pool, err = gatherCandidates(idx, endpoint, table.Scale().Far, lr, selfID)
			if err != nil {
				return nil, err
			}
		}
		filtered := filterByTable(pool, lr.Priority)
		best, ok := bestByPriority(filtered, lr.Priority)
		if !ok {
			return nil, nil
		}

		return []string{best.ID}, nil
	}

	return dedupeSorted(ids(pool)), nil
}
