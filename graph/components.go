// File: components.go
// Role: Connected-component analysis over the symmetrized "all" relation.
// Grounded on the BFS-labeling approach used for island detection in grid
// lattices: flood-fill from every unvisited node, collecting one component
// per seed. Components are exposed as properties only; nothing in the core
// algorithm depends on a particular component numbering.
package graph

import "sort"

// Components partitions all registered nodes into connected components under
// the symmetrized "all" relation. Each component is a sorted slice of node
// IDs; components are ordered by their smallest member ID for determinism.
// Complexity: O(V + E).
func (g *Graph) Components() [][]string {
	g.mu.RLock()
	nodeIDs := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		nodeIDs = append(nodeIDs, id)
	}
	adj := make(map[string]map[string]struct{}, len(g.adj))
	for u, vs := range g.adj {
		adj[u] = cloneSet(vs)
	}
	g.mu.RUnlock()

	sort.Strings(nodeIDs)
	visited := make(map[string]bool, len(nodeIDs))
	var components [][]string

	for _, seed := range nodeIDs {
		if visited[seed] {
			continue
		}
		queue := []string{seed}
		visited[seed] = true
		var comp []string

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, cur)

			neighbors := make([]string, 0, len(adj[cur]))
			for n := range adj[cur] {
				neighbors = append(neighbors, n)
			}
			sort.Strings(neighbors)
			for _, n := range neighbors {
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}

		sort.Strings(comp)
		components = append(components, comp)
	}

	return components
}

// ComponentIndex returns, for every node, the index of its component in the
// slice Components() would return. Useful for O(1) "same component" checks
// in pathfind's bridging strategies without recomputing Components() per
// query.
// Complexity: O(V + E).
func (g *Graph) ComponentIndex() map[string]int {
	comps := g.Components()
	idx := make(map[string]int, g.NodeCount())
	for i, comp := range comps {
		for _, id := range comp {
			idx[id] = i
		}
	}

	return idx
}

// LargestComponentSize returns the size of the largest connected component,
// or 0 for an empty graph.
// Complexity: O(V + E).
func (g *Graph) LargestComponentSize() int {
	best := 0
	for _, comp := range g.Components() {
		if len(comp) > best {
			best = len(comp)
		}
	}

	return best
}
