package pathfind

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for FindSourcePath execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("pathfind: graph is nil")
	// ErrOriginNotFound is returned when the origin ID is absent from the graph.
	ErrOriginNotFound = errors.New("pathfind: origin not found")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")
)

// SourceLayer is the layer key a path must terminate on to count as having
// reached a source substation.
const SourceLayer = "postes_source"

// Option configures FindSourcePath via functional arguments, in the
// teacher's style: invalid values are recorded and surfaced as
// ErrOptionViolation rather than panicking.
type Option func(*Options)

// Options tunes the search. FindSourcePath starts from DefaultOptions and
// applies each Option in order; a MaxDepth or ExplorationLimit of zero
// disables that bound.
type Options struct {
	Ctx context.Context

	// MaxDepth caps strategies 1-2's BFS depth. Default 10.
	MaxDepth int
	// ExplorationLimit caps total nodes visited across all BFS frontiers, a
	// safety bound beyond what the spec names, protecting against
	// pathological graphs during interactive queries. Default 200000.
	ExplorationLimit int
	// BridgeCapM is strategy 3's single-bridge distance cap, in meters.
	// Default 2000.
	BridgeCapM float64
	// MultiHopBridgeCapM is strategy 4's per-hop distance cap. Default 5000.
	MultiHopBridgeCapM float64
	// MaxHops caps strategy 4's bridge chain length. Default 3.
	MaxHops int

	err error
}

// DefaultOptions returns the spec's default tuning.
func DefaultOptions() Options {
	return Options{
		Ctx:                context.Background(),
		MaxDepth:           10,
		ExplorationLimit:   200000,
		BridgeCapM:         2000,
		MultiHopBridgeCapM: 5000,
		MaxHops:            3,
	}
}

// WithContext sets a custom context for cooperative cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth overrides the BFS depth cap for strategies 1-2.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithBridgeCapM overrides strategy 3's single-bridge distance cap.
func WithBridgeCapM(m float64) Option {
	return func(o *Options) {
		if m < 0 {
			o.err = fmt.Errorf("%w: BridgeCapM cannot be negative (%f)", ErrOptionViolation, m)
			return
		}
		o.BridgeCapM = m
	}
}

// WithMultiHopBridgeCapM overrides strategy 4's per-hop distance cap.
func WithMultiHopBridgeCapM(m float64) Option {
	return func(o *Options) {
		if m < 0 {
			o.err = fmt.Errorf("%w: MultiHopBridgeCapM cannot be negative (%f)", ErrOptionViolation, m)
			return
		}
		o.MultiHopBridgeCapM = m
	}
}

// WithMaxHops overrides strategy 4's bridge chain length cap.
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxHops = n
	}
}

// Strategy names which of the four search strategies produced a Result.
type Strategy int

const (
	StrategyDirectBFS Strategy = iota + 1
	StrategyEndpointAugmentedBFS
	StrategyComponentBridge
	StrategyMultiHopBridge
)

func (s Strategy) String() string {
	switch s {
	case StrategyDirectBFS:
		return "direct_bfs"
	case StrategyEndpointAugmentedBFS:
		return "endpoint_augmented_bfs"
	case StrategyComponentBridge:
		return "component_bridge"
	case StrategyMultiHopBridge:
		return "multi_hop_bridge"
	default:
		return "unknown"
	}
}

// Entry is one node of a returned path. ViaBridge reports whether the edge
// from the previous entry to this one is a synthesized proximity bridge
// rather than a real graph edge; BridgeDistanceM is meaningful only when
// ViaBridge is true.
type Entry struct {
	ID              string
	ViaBridge       bool
	BridgeDistanceM float64
}

// Result is a successful path from the origin to a source substation.
type Result struct {
	Path     []Entry
	Strategy Strategy
}

// Failure is returned when every strategy fails. BestPartial is the longest
// of the BFS-tree paths strategies 1-2 reached (each ending at the last node
// that strategy dequeued); it is chosen by length only, with no ranking of
// the layers it reaches, and the bridging strategies add nothing to it.
type Failure struct {
	Reason      string
	BestPartial []Entry
}

func (f *Failure) Error() string {
	return fmt.Sprintf("pathfind: %s", f.Reason)
}
