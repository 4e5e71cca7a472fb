// Package pathfind searches the feature graph for a path from an origin
// feature to a source substation, trying progressively more permissive
// strategies until one succeeds.
//
// The strategies, in order: a plain breadth-first search; a BFS that also
// expands each node's endpoint-only neighborhoods (recovering paths a
// linestring's "all" set accidentally dropped); single-hop proximity
// bridging across disconnected components; and multi-hop bridging chaining
// several bridges together. Every strategy shares the same walker-style BFS
// core, generalized over which neighbor function it expands.
package pathfind
