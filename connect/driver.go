package connect

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gridtopo/gridtopo/feature"
	"github.com/gridtopo/gridtopo/rules"
	"github.com/gridtopo/gridtopo/spindex"
)

// DefaultChunkSize is used when Options.ChunkSize is left at zero. The spec
// range is 500-5000 depending on dataset size; a fixed mid-range default
// keeps chunk scheduling overhead low without starving small worker pools.
const DefaultChunkSize = 2000

// Options tunes the concurrent driver. Zero values fall back to defaults.
type Options struct {
	// ChunkSize is how many features each worker call processes per task.
	ChunkSize int
	// Workers caps the number of chunks processed concurrently; zero means
	// min(runtime.NumCPU(), 16).
	Workers int
}

func (o Options) chunkSize() int {
	if o.ChunkSize > 0 {
		return o.ChunkSize
	}

	return DefaultChunkSize
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	n := runtime.NumCPU()
	if n > 16 {
		n = 16
	}

	return n
}

// FeatureFailure records that a feature's ConnectionSet computation failed;
// per §4.5 failure semantics the feature still receives an empty
// ConnectionSet and the overall run succeeds.
type FeatureFailure struct {
	FeatureID string
	Err       error
}

// Result is the outcome of a full Run: the per-feature ConnectionSets keyed
// by feature id, and any per-feature failures in input order.
type Result struct {
	Connections map[string]feature.ConnectionSet
	Failures    []FeatureFailure
}

// Run computes ConnectionSets for every feature in store, partitioning the
// full feature id list into chunks processed by a bounded worker pool, and
// folding results back into Result.Connections in deterministic input
// order regardless of which worker finished first. A per-feature compute
// error never aborts the run: the feature emits an empty ConnectionSet and
// is recorded in Result.Failures. ctx cancellation stops scheduling new
// chunks and returns ctx.Err(); chunks already in flight are allowed to
// finish so partial results stay internally consistent, but the caller is
// expected to discard Result on a cancelled run.
func Run(ctx context.Context, store *feature.Store, idx *spindex.Index, table *rules.Table, opts Options) (Result, error) {
	ids := store.All()
	chunkSize := opts.chunkSize()

	type chunkOutput struct {
		conns    map[string]feature.ConnectionSet
		failures []FeatureFailure
	}

	numChunks := (len(ids) + chunkSize - 1) / chunkSize
	outputs := make([]chunkOutput, numChunks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())

	for c := 0; c < numChunks; c++ {
		c := c
		lo := c * chunkSize
		hi := lo + chunkSize
		if hi > len(ids) {
			hi = len(ids)
		}

		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			out := chunkOutput{conns: make(map[string]feature.ConnectionSet, hi-lo)}
			for _, id := range ids[lo:hi] {
				f, ok := store.Get(id)
				if !ok {
					continue
				}

				cs, err := ConnectFeature(f, idx, table)
				if err != nil {
					out.failures = append(out.failures, FeatureFailure{FeatureID: id, Err: fmt.Errorf("connect: %s: %w", id, err)})
					out.conns[id] = feature.ConnectionSet{}

					continue
				}
				out.conns[id] = cs
			}
			outputs[c] = out

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	result := Result{Connections: make(map[string]feature.ConnectionSet, len(ids))}
	for _, out := range outputs {
		for id, cs := range out.conns {
			result.Connections[id] = cs
		}
		result.Failures = append(result.Failures, out.failures...)
	}

	return result, nil
}
