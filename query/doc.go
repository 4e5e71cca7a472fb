// Package query is the spatial query front-end (the spec's C8):
// FindPathFromPoint projects a (longitude, latitude) query point, finds the
// nearest low-voltage entry feature via the spatial index, and hands it to
// pathfind to reach a source substation, trying candidates in distance
// order until one yields a path.
package query
