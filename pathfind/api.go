package pathfind

import (
	"fmt"

	"github.com/gridtopo/gridtopo/feature"
	"github.com/gridtopo/gridtopo/graph"
)

// FindSourcePath searches for a path from origin to a source substation,
// trying direct BFS, endpoint-augmented BFS, single-hop component bridging,
// and multi-hop bridging in order; the first strategy to succeed wins. If
// every strategy fails, it returns a *Failure carrying the best partial
// progress observed: the longer of the two BFS strategies' paths to the last
// node each dequeued. The bridging strategies contribute no partial path.
func FindSourcePath(g *graph.Graph, store *feature.Store, origin string, opts ...Option) (*Result, *Failure, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, nil, o.err
	}
	if !g.HasNode(origin) {
		return nil, nil, ErrOriginNotFound
	}

	var bestPartial []Entry
	trackPartial := func(p []Entry) {
		if len(p) > len(bestPartial) {
			bestPartial = p
		}
	}

	result, partial, err := runBFS(g, origin, directNeighbors, o)
	if err != nil {
		return nil, nil, err
	}
	if result != nil {
		result.Strategy = StrategyDirectBFS

		return result, nil, nil
	}
	trackPartial(partial)

	result, partial, err = runBFS(g, origin, augmentedNeighbors, o)
	if err != nil {
		return nil, nil, err
	}
	if result != nil {
		result.Strategy = StrategyEndpointAugmentedBFS

		return result, nil, nil
	}
	trackPartial(partial)

	result, err = bridgeOnce(g, store, origin, o.BridgeCapM, o)
	if err != nil {
		return nil, nil, err
	}
	if result != nil {
		return result, nil, nil
	}

	result, err = bridgeChain(g, store, origin, o)
	if err != nil {
		return nil, nil, err
	}
	if result != nil {
		return result, nil, nil
	}

	return nil, &Failure{
		Reason:      fmt.Sprintf("no path from %s to a %s feature with any strategy", origin, SourceLayer),
		BestPartial: bestPartial,
	}, nil
}
