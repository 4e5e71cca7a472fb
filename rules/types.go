package rules

// RadiusScale names the three abstract probe radii every deployment profile
// calibrates independently; CLOSE < MID < FAR always holds, but the actual
// meter values are read from configuration rather than hardcoded here.
type RadiusScale struct {
	Close float64
	Mid   float64
	Far   float64
}

// TargetRule is one entry of a priority or solo table: the layer's rank
// (lower wins ties, ascending) and the radius within which it is considered.
type TargetRule struct {
	Priority int
	RadiusM  float64
}

// LayerRules is the full behavior set for one source layer.
type LayerRules struct {
	LayerKey        string
	BaseRadiusM     float64
	Exclude         map[string]bool
	Priority        map[string]TargetRule
	Solo            map[string]TargetRule
	MonoPerEndpoint bool
	AllowedTargets  map[string]bool
}

// Admissible reports whether a candidate feature in targetLayer may be
// considered at all for this layer's rules, before any radius or
// priority/solo logic: allowed_targets, when set, is authoritative and
// overrides exclude_connections entirely.
func (r LayerRules) Admissible(targetLayer string) bool {
	if len(r.AllowedTargets) > 0 {
		return r.AllowedTargets[targetLayer]
	}

	return !r.Exclude[targetLayer]
}

// HasSolo reports whether the solo rule is active for this layer.
func (r LayerRules) HasSolo() bool {
	return len(r.Solo) > 0
}

// HasPriorityMono reports whether the priority-mono rule is active: both
// mono_per_endpoint and a non-empty priority table are required.
func (r LayerRules) HasPriorityMono() bool {
	return r.MonoPerEndpoint && len(r.Priority) > 0
}
