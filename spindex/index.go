package spindex

import (
	"errors"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/gridtopo/gridtopo/geom"
)

const (
	dimensions  = 2
	minChildren = 25
	maxChildren = 50
)

// ErrEmptyEntry is returned when an Entry with an empty ID is indexed.
var ErrEmptyEntry = errors.New("spindex: entry ID is empty")

// Entry is one indexed feature: its identity, its source layer (used by
// Nearest's layer filter), and the geometry the tree bounds it by.
type Entry struct {
	ID       string
	Layer    string
	Geometry geom.Geometry

	// ordinal is the entry's position in the slice passed to Build, used
	// only to break ties deterministically in Nearest/Candidates.
	ordinal int
}

// spatialEntry adapts an Entry to rtreego.Spatial.
type spatialEntry struct {
	Entry
	rect *rtreego.Rect
}

func (s *spatialEntry) Bounds() *rtreego.Rect {
	return s.rect
}

// Index is a thread-safe R-tree over a fixed set of features. It is built
// once from a complete feature set and queried concurrently afterward; it
// supports no incremental insert because the connection engine's feature set
// is immutable for the lifetime of a run (see feature.Store).
type Index struct {
	tree    *rtreego.Rtree
	entries []Entry
}

// Build indexes every entry's geometry by its tight bounding box; radius
// buffering happens on the query side (Candidates with a geom.BufferBBox
// rectangle). Entries with an empty ID are rejected.
func Build(entries []Entry) (*Index, error) {
	tree := rtreego.NewTree(dimensions, minChildren, maxChildren)

	stored := make([]Entry, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			return nil, ErrEmptyEntry
		}
		e.ordinal = i
		stored[i] = e

		bbox := geom.GeometryBBox(e.Geometry)
		rect, err := toRtreeRect(bbox)
		if err != nil {
			return nil, err
		}
		tree.Insert(&spatialEntry{Entry: e, rect: rect})
	}

	return &Index{tree: tree, entries: stored}, nil
}

func toRtreeRect(r geom.Rect) (*rtreego.Rect, error) {
	w := r.MaxX - r.MinX
	h := r.MaxY - r.MinY
	// rtreego rejects zero-size rectangles; a single point or a perfectly
	// axis-aligned segment needs a minimal epsilon pad to stay insertable.
	const epsilon = 1e-9
	if w <= 0 {
		w = epsilon
	}
	if h <= 0 {
		h = epsilon
	}

	return rtreego.NewRect(rtreego.Point{r.MinX, r.MinY}, []float64{w, h})
}

// Candidates returns every entry whose bounding box intersects the query
// rectangle. This is a bounding-box over-approximation: callers must refine
// with geom.DistanceMetric/geom.IntersectsDisk against the true geometry.
func (idx *Index) Candidates(query geom.Rect) ([]Entry, error) {
	rect, err := toRtreeRect(query)
	if err != nil {
		return nil, err
	}

	results := idx.tree.SearchIntersect(rect)
	out := make([]Entry, 0, len(results))
	for _, r := range results {
		out = append(out, r.(*spatialEntry).Entry)
	}
	sortByOrdinal(out)

	return out, nil
}

// LayerFilter restricts Nearest to entries whose Layer is in the set. A nil
// or empty filter matches every layer.
type LayerFilter map[string]bool

func (f LayerFilter) allows(layer string) bool {
	if len(f) == 0 {
		return true
	}

	return f[layer]
}

// Nearest returns up to k entries closest to p by true metric distance,
// restricted to layers in filter, ties broken by Layer then by original
// insertion ordinal (both ascending) for determinism. It over-fetches from
// the underlying tree to compensate for entries the filter excludes.
func (idx *Index) Nearest(p geom.Point, k int, filter LayerFilter) []Entry {
	if k <= 0 {
		return nil
	}

	fetch := k
	if len(filter) > 0 {
		fetch = k * 8
		if fetch > len(idx.entries) {
			fetch = len(idx.entries)
		}
	}
	if fetch > len(idx.entries) {
		fetch = len(idx.entries)
	}
	if fetch == 0 {
		return nil
	}

	results := idx.tree.NearestNeighbors(fetch, rtreego.Point{p.X, p.Y})

	candidates := make([]Entry, 0, len(results))
	for _, r := range results {
		e := r.(*spatialEntry).Entry
		if filter.allows(e.Layer) {
			candidates = append(candidates, e)
		}
	}

	pt := geom.NewPoint(p)
	sort.SliceStable(candidates, func(i, j int) bool {
		di := geom.DistanceMetric(pt, candidates[i].Geometry)
		dj := geom.DistanceMetric(pt, candidates[j].Geometry)
		if di != dj {
			return di < dj
		}
		if candidates[i].Layer != candidates[j].Layer {
			return candidates[i].Layer < candidates[j].Layer
		}

		return candidates[i].ordinal < candidates[j].ordinal
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}

	return candidates
}

// Len returns the number of indexed entries.
func (idx *Index) Len() int {
	return len(idx.entries)
}

func sortByOrdinal(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].ordinal < entries[j].ordinal })
}
