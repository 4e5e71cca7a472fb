package pathfind

import (
	"github.com/gridtopo/gridtopo/feature"
	"github.com/gridtopo/gridtopo/geom"
	"github.com/gridtopo/gridtopo/graph"
)

// candidateBridge is one proximity bridge considered between two
// components: the nearest admissible pair and their distance.
type candidateBridge struct {
	from, to string
	distance float64
}

// nearestPair finds the minimum-distance pair (u ∈ from, v ∈ to) not
// exceeding cap, using the feature store's metric geometry. This is an O(n·m)
// brute-force scan: bridging is a fallback strategy triggered only when both
// direct BFS strategies have already failed, so it runs at most once or
// twice per query rather than on the hot path.
func nearestPair(store *feature.Store, from, to []string, cap float64) (candidateBridge, bool) {
	best := candidateBridge{distance: cap}
	found := false

	for _, u := range from {
		fu, ok := store.Get(u)
		if !ok {
			continue
		}
		for _, v := range to {
			fv, ok := store.Get(v)
			if !ok {
				continue
			}
			d := geom.DistanceMetric(fu.Metric, fv.Metric)
			if d > cap {
				continue
			}
			if !found || d < best.distance ||
				(d == best.distance && (u < best.from || (u == best.from && v < best.to))) {
				best = candidateBridge{from: u, to: v, distance: d}
				found = true
			}
		}
	}

	return best, found
}

// componentsWithSource returns the set of component indices (positions in
// comps) whose members include at least one source substation.
func componentsWithSource(g *graph.Graph, comps [][]string) map[int]bool {
	out := make(map[int]bool)
	for i, members := range comps {
		for _, id := range members {
			if layer, ok := g.Layer(id); ok && layer == SourceLayer {
				out[i] = true
				break
			}
		}
	}

	return out
}

// bridgeOnce attempts strategy 3: a single proximity bridge from origin's
// component to some other component containing a source substation.
func bridgeOnce(g *graph.Graph, store *feature.Store, origin string, cap float64, opts Options) (*Result, error) {
	comps := g.Components()
	idx := g.ComponentIndex()
	originIdx := idx[origin]
	withSource := componentsWithSource(g, comps)

	if withSource[originIdx] {
		// origin's own component has a source; strategies 1-2 already
		// covered this case, so bridging has nothing to add here.
		return nil, nil
	}

	var best candidateBridge
	found := false

	for targetIdx := range withSource {
		if targetIdx == originIdx {
			continue
		}
		cb, ok := nearestPair(store, comps[originIdx], comps[targetIdx], cap)
		if !ok {
			continue
		}
		if !found || cb.distance < best.distance ||
			(cb.distance == best.distance && cb.from < best.from) {
			best = cb
			found = true
		}
	}

	if !found {
		return nil, nil
	}

	prefix, err := pathWithinComponent(g, origin, best.from, opts)
	if err != nil {
		return nil, err
	}
	if prefix == nil {
		return nil, nil
	}

	suffix, err := pathToSourceWithinComponent(g, best.to, opts)
	if err != nil {
		return nil, err
	}
	if suffix == nil {
		return nil, nil
	}

	path := append([]Entry{}, prefix...)
	path = append(path, Entry{ID: best.to, ViaBridge: true, BridgeDistanceM: best.distance})
	path = append(path, suffix[1:]...)

	return &Result{Path: path, Strategy: StrategyComponentBridge}, nil
}

// bridgeChain attempts strategy 4: up to opts.MaxHops successive bridges,
// each capped at opts.MultiHopBridgeCapM, chaining through intermediate
// components until one containing a source substation is reached.
func bridgeChain(g *graph.Graph, store *feature.Store, origin string, opts Options) (*Result, error) {
	comps := g.Components()
	idx := g.ComponentIndex()
	withSource := componentsWithSource(g, comps)

	visitedComponents := map[int]bool{idx[origin]: true}
	frontierNode := origin
	var path []Entry

	for hop := 0; hop < opts.MaxHops; hop++ {
		curIdx := idx[frontierNode]

		var best candidateBridge
		var bestTargetIdx int
		found := false

		for targetIdx := range comps {
			if visitedComponents[targetIdx] {
				continue
			}
			cb, ok := nearestPair(store, comps[curIdx], comps[targetIdx], opts.MultiHopBridgeCapM)
			if !ok {
				continue
			}
			if !found || cb.distance < best.distance || (cb.distance == best.distance && cb.from < best.from) {
				best = cb
				bestTargetIdx = targetIdx
				found = true
			}
		}

		if !found {
			return nil, nil
		}

		prefix, err := pathWithinComponent(g, frontierNode, best.from, opts)
		if err != nil {
			return nil, err
		}
		if prefix == nil {
			return nil, nil
		}

		if len(path) > 0 {
			prefix = prefix[1:]
		}
		path = append(path, prefix...)
		path = append(path, Entry{ID: best.to, ViaBridge: true, BridgeDistanceM: best.distance})

		visitedComponents[bestTargetIdx] = true
		frontierNode = best.to

		if withSource[bestTargetIdx] {
			suffix, err := pathToSourceWithinComponent(g, frontierNode, opts)
			if err != nil {
				return nil, err
			}
			if suffix == nil {
				return nil, nil
			}
			path = append(path, suffix[1:]...)

			return &Result{Path: path, Strategy: StrategyMultiHopBridge}, nil
		}
	}

	return nil, nil
}
