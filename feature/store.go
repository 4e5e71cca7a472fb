package feature

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gridtopo/gridtopo/geom"
)

// Store is the canonical, keyed collection of Feature records. It is
// populated once via LoadAll, after which Get/ByLayer/All are safe for
// concurrent read access from every connection-engine worker; SetConnections
// is the only mutation allowed post-load, and is itself guarded so each
// feature accepts it exactly once.
type Store struct {
	mu       sync.RWMutex
	byID     map[string]*Feature
	byLayer  map[string][]string
	order    []string
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		byID:    make(map[string]*Feature),
		byLayer: make(map[string][]string),
	}
}

// Add inserts a feature into the store. Returns ErrDuplicateID if the id is
// already present, or ErrInvalidGeometry if the geometry fails Valid().
func (s *Store) Add(f *Feature) error {
	if !f.WGS84.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidGeometry, f.ID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[f.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, f.ID)
	}

	s.byID[f.ID] = f
	s.byLayer[f.Layer] = append(s.byLayer[f.Layer], f.ID)
	s.order = append(s.order, f.ID)

	return nil
}

// Get returns the feature for id, or false if absent.
func (s *Store) Get(id string) (*Feature, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.byID[id]

	return f, ok
}

// MustGet panics if id is absent; it exists only for code paths where
// absence already indicates an internal invariant violation (e.g. a graph
// node whose backing feature was just looked up by the caller).
func (s *Store) MustGet(id string) *Feature {
	f, ok := s.Get(id)
	if !ok {
		panic(fmt.Sprintf("feature: MustGet(%s): %v", id, ErrUnknownFeature))
	}

	return f
}

// Len returns the total number of features in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byID)
}

// Layers returns the set of distinct layer keys present, sorted.
func (s *Store) Layers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	layers := make([]string, 0, len(s.byLayer))
	for l := range s.byLayer {
		layers = append(layers, l)
	}
	sort.Strings(layers)

	return layers
}

// ByLayer returns the ids of every feature in the given layer, in load order.
func (s *Store) ByLayer(layer string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byLayer[layer]
	out := make([]string, len(ids))
	copy(out, ids)

	return out
}

// All returns every feature id in load order.
func (s *Store) All() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.order))
	copy(out, s.order)

	return out
}

// SetConnections attaches cs to the feature named id. It fails with
// ErrUnknownFeature if id is absent, ErrConnectionsAlreadySet if called
// twice for the same feature, and ErrSelfReference if cs names id itself.
func (s *Store) SetConnections(id string, cs ConnectionSet) error {
	for _, v := range cs.All {
		if v == id {
			return fmt.Errorf("%w: %s", ErrSelfReference, id)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFeature, id)
	}
	if f.connections != nil {
		return fmt.Errorf("%w: %s", ErrConnectionsAlreadySet, id)
	}

	csCopy := cs
	f.connections = &csCopy

	return nil
}

// ProjectAll computes and caches the metric geometry for every feature whose
// Metric field has not yet been set, using proj. It is meant to run once,
// immediately after LoadAll, before the spatial index or connection engine
// see the store.
func (s *Store) ProjectAll(proj geom.Projector) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.byID {
		if f.Metric.Kind == f.WGS84.Kind && len(f.Metric.Coords) == len(f.WGS84.Coords) && len(f.Metric.Coords) > 0 {
			continue
		}
		f.Metric = proj.ProjectGeometry(f.WGS84)
	}
}
