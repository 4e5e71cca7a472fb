package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlTargetRule mirrors TargetRule's on-disk shape.
type yamlTargetRule struct {
	Priority int     `yaml:"priority"`
	RadiusM  float64 `yaml:"radius_m"`
}

// yamlLayerRules mirrors LayerRules' on-disk shape; layer_key is the map key
// in yamlDocument rather than a field, matching the config's per-layer
// section style.
type yamlLayerRules struct {
	BaseRadiusM         float64                   `yaml:"base_radius_m"`
	ExcludeConnections  []string                  `yaml:"exclude_connections"`
	PriorityConnections map[string]yamlTargetRule `yaml:"priority_connections"`
	SoloConnectionIf    map[string]yamlTargetRule `yaml:"solo_connection_if"`
	MonoPerEndpoint     bool                      `yaml:"mono_per_endpoint"`
	AllowedTargets      []string                  `yaml:"allowed_targets"`
}

// yamlDocument is the top-level shape of a rules configuration file.
type yamlDocument struct {
	RadiusScale struct {
		Close float64 `yaml:"close"`
		Mid   float64 `yaml:"mid"`
		Far   float64 `yaml:"far"`
	} `yaml:"radius_scale"`
	Layers map[string]yamlLayerRules `yaml:"layers"`
}

// LoadYAML reads a rules configuration from path and returns the resulting
// Table, already validated. Unknown layer keys referenced in exclude,
// priority, solo, or allowed_targets tables are accepted without error: they
// simply never match any feature's actual layer, and are reported in the
// returned diagnostics rather than treated as fatal.
func LoadYAML(path string) (*Table, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("rules: reading %s: %w", path, err)
	}

	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("rules: parsing %s: %w", path, err)
	}

	scale := RadiusScale{Close: doc.RadiusScale.Close, Mid: doc.RadiusScale.Mid, Far: doc.RadiusScale.Far}

	var layers []LayerRules
	var diagnostics []string
	knownLayers := make(map[string]bool, len(doc.Layers))
	for key := range doc.Layers {
		knownLayers[key] = true
	}

	for key, yl := range doc.Layers {
		lr := LayerRules{
			LayerKey:        key,
			BaseRadiusM:     yl.BaseRadiusM,
			Exclude:         toSet(yl.ExcludeConnections),
			Priority:        toRuleMap(yl.PriorityConnections),
			Solo:            toRuleMap(yl.SoloConnectionIf),
			MonoPerEndpoint: yl.MonoPerEndpoint,
			AllowedTargets:  toSet(yl.AllowedTargets),
		}

		for ref := range lr.Exclude {
			if !knownLayers[ref] {
				diagnostics = append(diagnostics, fmt.Sprintf("layer %s: exclude_connections references unknown layer %s", key, ref))
			}
		}
		for ref := range lr.Priority {
			if !knownLayers[ref] {
				diagnostics = append(diagnostics, fmt.Sprintf("layer %s: priority_connections references unknown layer %s", key, ref))
			}
		}
		for ref := range lr.Solo {
			if !knownLayers[ref] {
				diagnostics = append(diagnostics, fmt.Sprintf("layer %s: solo_connection_if references unknown layer %s", key, ref))
			}
		}
		for ref := range lr.AllowedTargets {
			if !knownLayers[ref] {
				diagnostics = append(diagnostics, fmt.Sprintf("layer %s: allowed_targets references unknown layer %s", key, ref))
			}
		}

		layers = append(layers, lr)
	}

	table := NewTable(scale, layers)
	if err := table.Validate(); err != nil {
		return nil, diagnostics, err
	}

	return table, diagnostics, nil
}

func toSet(keys []string) map[string]bool {
	if len(keys) == 0 {
		return nil
	}
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}

	return set
}

func toRuleMap(m map[string]yamlTargetRule) map[string]TargetRule {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]TargetRule, len(m))
	for k, v := range m {
		out[k] = TargetRule{Priority: v.Priority, RadiusM: v.RadiusM}
	}

	return out
}
