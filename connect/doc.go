// Package connect implements the connection engine (the spec's C5): for
// each feature it decides which other features it is electrically connected
// to, consulting the spatial index, feature store, and rules table.
//
// ConnectFeature is the pure, single-feature algorithm; Run is the
// concurrent driver that partitions a feature set into chunks and processes
// them across a bounded worker pool using golang.org/x/sync/errgroup, then
// folds results back in deterministic input order regardless of which
// worker finished first.
package connect
