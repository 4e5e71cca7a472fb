// File: methods_adjacent.go
// Role: Neighborhood APIs — Neighbors (symmetrized "all"), StartNeighbors,
// EndNeighbors, and the union used by endpoint-augmented traversal.
// Determinism: every returned slice is sorted lexicographically asc.
package graph

import "sort"

// Neighbors returns the sorted, symmetrized "all" adjacency of id.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) []string {
	return sortedKeys(g.adjSnapshot(id))
}

// StartNeighbors returns the directed start-endpoint neighbors recorded for
// id at build time (empty for Point features).
// Complexity: O(d log d).
func (g *Graph) StartNeighbors(id string) []string {
	return sortedKeys(g.dirSnapshot(g.startAdj, id))
}

// EndNeighbors returns the directed end-endpoint neighbors recorded for id
// at build time (empty for Point features).
// Complexity: O(d log d).
func (g *Graph) EndNeighbors(id string) []string {
	return sortedKeys(g.dirSnapshot(g.endAdj, id))
}

// AugmentedNeighbors returns the union of Neighbors, StartNeighbors and
// EndNeighbors, sorted and deduplicated. This is the neighbor function used
// by pathfind's endpoint-augmented BFS strategy, which recovers paths along
// linestrings whose symmetrized "all" set accidentally dropped an endpoint
// neighbor.
// Complexity: O(d log d).
func (g *Graph) AugmentedNeighbors(id string) []string {
	g.mu.RLock()
	seen := make(map[string]struct{})
	for v := range g.adj[id] {
		seen[v] = struct{}{}
	}
	for v := range g.startAdj[id] {
		seen[v] = struct{}{}
	}
	for v := range g.endAdj[id] {
		seen[v] = struct{}{}
	}
	g.mu.RUnlock()

	return sortedKeys(seen)
}

// AdjacencyList returns a snapshot mapping each node ID to its sorted "all"
// neighbor list. The order of map keys is unspecified; callers iterate
// NodeIDs() for determinism and index into this map.
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.nodes))
	for id := range g.nodes {
		out[id] = sortedKeys(g.adj[id])
	}

	return out
}

func (g *Graph) adjSnapshot(id string) map[string]struct{} {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return cloneSet(g.adj[id])
}

func (g *Graph) dirSnapshot(dir map[string]map[string]struct{}, id string) map[string]struct{} {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return cloneSet(dir[id])
}

func cloneSet(m map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}

	return out
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
