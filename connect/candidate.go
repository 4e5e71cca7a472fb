package connect

import (
	"sort"

	"github.com/gridtopo/gridtopo/geom"
	"github.com/gridtopo/gridtopo/rules"
	"github.com/gridtopo/gridtopo/spindex"
)

// Candidate is one admissible neighbor found for a probe point, already
// filtered for self-exclusion and layer admissibility but not yet for
// solo/priority selection.
type Candidate struct {
	ID       string
	Layer    string
	Distance float64
}

// gatherCandidates runs the two-phase spatial query §4.5 describes: an
// R-tree bbox intersection at probe±radius, refined to the exact metric
// distance, filtered to admissible layers with selfID excluded. Results are
// sorted by ascending distance, then ascending id, which is also the order
// every downstream rule (solo, priority-mono, default) relies on for its tie
// break.
func gatherCandidates(idx *spindex.Index, probe geom.Point, radius float64, lr rules.LayerRules, selfID string) ([]Candidate, error) {
	bbox := geom.BufferBBox(probe, radius)
	entries, err := idx.Candidates(bbox)
	if err != nil {
		return nil, err
	}

	probeGeom := geom.NewPoint(probe)
	out := make([]Candidate, 0, len(entries))
	for _, e := range entries {
		if e.ID == selfID {
			continue
		}
		if !lr.Admissible(e.Layer) {
			continue
		}
		d := geom.DistanceMetric(probeGeom, e.Geometry)
		if d > radius {
			continue
		}
		out = append(out, Candidate{ID: e.ID, Layer: e.Layer, Distance: d})
	}

	sortCandidates(out)

	return out, nil
}

func sortCandidates(cs []Candidate) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Distance != cs[j].Distance {
			return cs[i].Distance < cs[j].Distance
		}

		return cs[i].ID < cs[j].ID
	})
}

// filterByTable restricts pool to candidates whose layer is a key in table
// and whose distance does not exceed that layer's configured radius,
// preserving pool's existing (distance, id) order.
func filterByTable(pool []Candidate, table map[string]rules.TargetRule) []Candidate {
	out := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		tr, ok := table[c.Layer]
		if !ok {
			continue
		}
		if c.Distance > tr.RadiusM {
			continue
		}
		out = append(out, c)
	}

	return out
}

// bestByPriority returns the candidate minimizing (priority, distance)
// lexicographically, using table for each candidate's priority rank. pool
// must already be filtered by filterByTable against the same table.
func bestByPriority(pool []Candidate, table map[string]rules.TargetRule) (Candidate, bool) {
	if len(pool) == 0 {
		return Candidate{}, false
	}

	best := pool[0]
	bestPriority := table[best.Layer].Priority
	for _, c := range pool[1:] {
		p := table[c.Layer].Priority
		if p < bestPriority || (p == bestPriority && c.Distance < best.Distance) ||
			(p == bestPriority && c.Distance == best.Distance && c.ID < best.ID) {
			best = c
			bestPriority = p
		}
	}

	return best, true
}

func ids(cs []Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}

	return out
}

func dedupeSorted(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
