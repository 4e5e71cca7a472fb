// Package graph implements the undirected adjacency graph folded from
// per-feature connection sets produced by package connect.
//
// Unlike a general-purpose graph library, this graph is always simple (no
// self-loops, no parallel edges) and unweighted: the spatial connection
// engine decides adjacency, not edge cost. Each node additionally carries
// its source layer and the directed start/end neighbor sets it was built
// from, so package pathfind can fall back to endpoint-augmented traversal
// when the symmetrized "all" adjacency alone misses a linestring endpoint
// neighbor (see Build and the AdjacencyList family below).
//
// Construction is two-phase, mirroring the fold-then-symmetrize rule: edges
// are first inserted directed (u -> v for every v in a feature's "all" set),
// then a second pass adds the missing reverse direction wherever u appears
// in v's list but not vice versa. The result is never mutated again; callers
// that need a different graph rebuild it from the same connection sets
// rather than editing this one in place.
package graph
