// Package rules holds the per-layer connection policy the engine consults:
// base probe radius, exclude/allow lists, and the priority and solo tables
// that decide which candidate(s) survive at a linestring endpoint.
//
// Rules are passive configuration, loaded once via LoadYAML (backed by
// gopkg.in/yaml.v3, matching the config format the rest of the core uses)
// and never mutated afterward.
package rules
