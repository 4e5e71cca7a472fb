// File: methods_edges.go
// Role: Low-level adjacency insertion used only by Build (package-private);
// exported HasEdge for callers that need a single-pair check.
package graph

// linkAll inserts the directed edge u -> v into the symmetric "all" bucket.
// Self-loops are silently dropped: a feature never connects to itself.
// Must be called under g.mu (write lock held by the caller, Build).
func (g *Graph) linkAll(u, v string) {
	if u == v {
		return
	}
	if g.adj[u] == nil {
		g.adj[u] = make(map[string]struct{})
	}
	g.adj[u][v] = struct{}{}
}

// linkStart records u -> v in the directed start-neighbor bucket.
func (g *Graph) linkStart(u, v string) {
	if u == v {
		return
	}
	if g.startAdj[u] == nil {
		g.startAdj[u] = make(map[string]struct{})
	}
	g.startAdj[u][v] = struct{}{}
}

// linkEnd records u -> v in the directed end-neighbor bucket.
func (g *Graph) linkEnd(u, v string) {
	if u == v {
		return
	}
	if g.endAdj[u] == nil {
		g.endAdj[u] = make(map[string]struct{})
	}
	g.endAdj[u][v] = struct{}{}
}

// symmetrize performs the second construction pass: for every u -> v already
// present, ensures v -> u is present too. This is the explicit symmetrization
// step described for the "all" relation; it is never applied to
// startAdj/endAdj, which stay directed bookkeeping.
// Must be called under g.mu write lock.
func (g *Graph) symmetrize() {
	// Snapshot the pairs before mutating, so newly added reverse edges are
	// not themselves re-scanned for a (harmless but wasteful) third pass.
	type pair struct{ u, v string }
	var pairs []pair
	for u, vs := range g.adj {
		for v := range vs {
			pairs = append(pairs, pair{u, v})
		}
	}
	for _, p := range pairs {
		g.linkAll(p.v, p.u)
	}
}

// HasEdge reports whether v is adjacent to u in the symmetrized "all" relation.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if m, ok := g.adj[u]; ok {
		_, present := m[v]
		return present
	}

	return false
}
