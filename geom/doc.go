// Package geom provides the pure, deterministic geometry primitives the
// spatial engine is built on: Point/LineString representations, endpoint
// extraction, axis-aligned buffered bounding boxes, and exact distance and
// disk-intersection tests in a metric (projected) coordinate system.
//
// geom never performs geodesic math and never talks to a CRS library: WGS84
// <-> metric reprojection is treated as an external collaborator, expressed
// here only as the Projector interface. WGS84Equirect is a small reference
// implementation (a local equirectangular projection centered on a
// reference parallel) good enough for metric-accurate distances over the
// scale of a single distribution network; production deployments are
// expected to supply their own Projector (Web Mercator, Lambert-93, ...)
// without any change to the rest of the core.
//
// This kernel is implemented directly against stdlib math rather than a
// general-purpose geometry library: the operations the connection engine
// needs are a handful of closed-form Euclidean formulas (point/segment
// distance, disk intersection, bounding boxes), and every third-party
// geometry package available to this project either drags in CGO (GEOS) or
// a much larger feature surface (full DE-9IM relations, WKT/WKB codecs,
// polygon clipping) that nothing here exercises. See DESIGN.md for the full
// accounting.
package geom
