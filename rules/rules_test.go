package rules_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridtopo/gridtopo/rules"
)

func TestLayerRules_AdmissibleRespectsAllowedTargetsOverExclude(t *testing.T) {
	r := rules.LayerRules{
		Exclude:        map[string]bool{"poteau": true},
		AllowedTargets: map[string]bool{"poteau": true},
	}
	assert.True(t, r.Admissible("poteau"), "allowed_targets overrides exclude_connections")
	assert.False(t, r.Admissible("reseau_bt"), "absent from allowed_targets means inadmissible")
}

func TestLayerRules_AdmissibleUsesExcludeWhenNoAllowList(t *testing.T) {
	r := rules.LayerRules{Exclude: map[string]bool{"postes_source": true}}
	assert.False(t, r.Admissible("postes_source"))
	assert.True(t, r.Admissible("reseau_bt"))
}

func TestLayerRules_HasSoloAndPriorityMono(t *testing.T) {
	solo := rules.LayerRules{Solo: map[string]rules.TargetRule{"postes_source": {Priority: 1, RadiusM: 10}}}
	assert.True(t, solo.HasSolo())
	assert.False(t, solo.HasPriorityMono())

	mono := rules.LayerRules{MonoPerEndpoint: true, Priority: map[string]rules.TargetRule{"postes_source": {Priority: 1, RadiusM: 10}}}
	assert.True(t, mono.HasPriorityMono())
}

func TestTable_ForReturnsZeroValueForUnconfiguredLayer(t *testing.T) {
	table := rules.NewTable(rules.RadiusScale{Close: 1, Mid: 3, Far: 10}, nil)

	lr := table.For("unknown_layer")
	assert.Equal(t, 1.0, lr.BaseRadiusM)
	assert.True(t, lr.Admissible("anything"))
}

func TestTable_ValidateRejectsSoloKeyAlsoExcluded(t *testing.T) {
	table := rules.NewTable(rules.RadiusScale{}, []rules.LayerRules{
		{
			LayerKey: "reseau_bt",
			Exclude:  map[string]bool{"postes_source": true},
			Solo:     map[string]rules.TargetRule{"postes_source": {Priority: 1, RadiusM: 10}},
		},
	})
	assert.Error(t, table.Validate())
}

func TestLoadYAML_ParsesLayersAndFlagsUnknownReferences(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := `
radius_scale:
  close: 1
  mid: 3
  far: 10
layers:
  reseau_bt:
    base_radius_m: 1
    mono_per_endpoint: true
    priority_connections:
      postes_source:
        priority: 1
        radius_m: 10
      ghost_layer:
        priority: 2
        radius_m: 10
  postes_source:
    base_radius_m: 1
    exclude_connections: [postes_source]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, diags, err := rules.LoadYAML(path)
	require.NoError(t, err)
	require.NotNil(t, table)

	lr := table.For("reseau_bt")
	assert.True(t, lr.HasPriorityMono())
	assert.Equal(t, 10.0, lr.Priority["postes_source"].RadiusM)

	var found bool
	for _, d := range diags {
		if d != "" {
			found = true
		}
	}
	assert.True(t, found, "expected a diagnostic for ghost_layer")
}
