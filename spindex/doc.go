// Package spindex is the spatial candidate index the connection engine
// queries to narrow a feature's neighborhood down from "every feature in the
// dataset" to "the handful worth an exact geometric distance check".
//
// It wraps github.com/dhconnelly/rtreego: every indexed feature is inserted
// as the tight bounding box of its geometry (geom.GeometryBBox, padded by a
// tiny epsilon where it has zero width or height), and queries are
// two-phase — an R-tree
// bounding-box intersection or k-nearest-neighbor search first, narrowing
// candidates cheaply, followed by the caller applying geom.DistanceMetric
// for the exact answer. spindex itself never claims bbox overlap means true
// intersection; Candidates and Nearest both return over-approximations that
// the connection engine refines.
package spindex
