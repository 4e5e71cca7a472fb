// Package feature holds the canonical in-memory feature store: every
// geographic feature the core reasons about, keyed by its stable id, with
// both its original WGS84 geometry and a metric-projected cache computed
// once at load time.
//
// Features and their connection sets are strictly write-once: a Store is
// populated by LoadAll, then SetConnections attaches each feature's
// ConnectionSet at most once (connect.Run returns the sets rather than
// attaching them), after which the store is read-only for the rest of the
// process lifetime.
package feature
