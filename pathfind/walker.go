package pathfind

import (
	"context"
	"fmt"

	"github.com/gridtopo/gridtopo/graph"
)

// neighborFunc returns the ids a BFS frontier should expand from id. The two
// direct strategies differ only in which of these they pass.
type neighborFunc func(g *graph.Graph, id string) []string

// queueItem pairs a node ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string
}

// stopFunc reports whether id satisfies the walker's search goal.
type stopFunc func(id string) bool

// sourceLayerStop is the stop condition for strategies 1-2: reaching any
// node whose layer is SourceLayer.
func sourceLayerStop(g *graph.Graph) stopFunc {
	return func(id string) bool {
		layer, ok := g.Layer(id)

		return ok && layer == SourceLayer
	}
}

// nodeStop is the stop condition bridging uses to search for a path to a
// specific target node within one component.
func nodeStop(target string) stopFunc {
	return func(id string) bool { return id == target }
}

// walker encapsulates mutable BFS state. It is shared by the source search
// (stop = sourceLayerStop) and the bridging sub-searches (stop = nodeStop),
// which differ only in their termination condition and neighbor function.
type walker struct {
	g         *graph.Graph
	neighbors neighborFunc
	stop      stopFunc
	opts      Options
	ctx       context.Context

	queue   []queueItem
	visited map[string]bool
	visits  int
	depth   map[string]int
	parent  map[string]string
	deepest queueItem
	found   string
}

func newWalker(g *graph.Graph, neighbors neighborFunc, stop stopFunc, opts Options) *walker {
	return &walker{
		g:         g,
		neighbors: neighbors,
		stop:      stop,
		opts:      opts,
		ctx:       opts.Ctx,
		visited:   make(map[string]bool),
		depth:     make(map[string]int),
		parent:    make(map[string]string),
	}
}

// run performs the BFS from start, stopping at the first node satisfying
// w.stop. It returns the found node's id (empty if none was found within
// MaxDepth/ExplorationLimit), or an error on cancellation.
func (w *walker) run(start string) (string, error) {
	w.enqueue(start, 0, "")

	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return "", w.ctx.Err()
		default:
		}

		item := w.dequeue()
		w.deepest = item

		if w.stop(item.id) {
			w.found = item.id
			return item.id, nil
		}

		if err := w.expand(item); err != nil {
			return "", err
		}
	}

	return "", nil
}

func (w *walker) enqueue(id string, depth int, parent string) {
	w.visited[id] = true
	w.depth[id] = depth
	if parent != "" {
		w.parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: depth, parent: parent})
}

func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.visits++

	return item
}

func (w *walker) expand(item queueItem) error {
	if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
		return nil
	}

	for _, nbr := range w.neighbors(w.g, item.id) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if w.visited[nbr] {
			continue
		}
		if w.opts.ExplorationLimit > 0 && w.visits+len(w.queue) >= w.opts.ExplorationLimit {
			return nil
		}

		w.enqueue(nbr, item.depth+1, item.id)
	}

	return nil
}

// pathTo reconstructs the path from the BFS root to dest as a slice of
// Entry, none of them bridges.
func (w *walker) pathTo(dest string) []Entry {
	var ids []string
	for cur := dest; ; {
		ids = append(ids, cur)
		prev, ok := w.parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}

	out := make([]Entry, len(ids))
	for i, id := range ids {
		out[i] = Entry{ID: id}
	}

	return out
}

func directNeighbors(g *graph.Graph, id string) []string {
	return g.Neighbors(id)
}

func augmentedNeighbors(g *graph.Graph, id string) []string {
	return g.AugmentedNeighbors(id)
}

func runBFS(g *graph.Graph, start string, neighbors neighborFunc, opts Options) (*Result, []Entry, error) {
	w := newWalker(g, neighbors, sourceLayerStop(g), opts)

	found, err := w.run(start)
	if err != nil {
		return nil, nil, fmt.Errorf("pathfind: %w", err)
	}
	if found == "" {
		return nil, w.pathTo(w.deepest.id), nil
	}

	return &Result{Path: w.pathTo(found)}, nil, nil
}

// pathWithinComponent searches for a path from start to target using
// directNeighbors only. Since components partition the graph with no edges
// crossing between them, this naturally never leaves start's component.
func pathWithinComponent(g *graph.Graph, start, target string, opts Options) ([]Entry, error) {
	w := newWalker(g, directNeighbors, nodeStop(target), opts)

	found, err := w.run(start)
	if err != nil {
		return nil, fmt.Errorf("pathfind: %w", err)
	}
	if found == "" {
		return nil, nil
	}

	return w.pathTo(found), nil
}

// pathToSourceWithinComponent searches for a path from start to any
// SourceLayer node using directNeighbors only.
func pathToSourceWithinComponent(g *graph.Graph, start string, opts Options) ([]Entry, error) {
	w := newWalker(g, directNeighbors, sourceLayerStop(g), opts)

	found, err := w.run(start)
	if err != nil {
		return nil, fmt.Errorf("pathfind: %w", err)
	}
	if found == "" {
		return nil, nil
	}

	return w.pathTo(found), nil
}
