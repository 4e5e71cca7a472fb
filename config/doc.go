// Package config loads the ambient run configuration: radius scale,
// distance caps, BFS tuning, and worker pool size, matching the keys listed
// in §6 of the system's external interfaces. Configuration is read from a
// YAML file (gopkg.in/yaml.v3, the format the rest of this core uses) with
// environment-variable overrides applied on top, in the style of a small
// XDG-less deployment config rather than a full flag/viper stack.
package config
