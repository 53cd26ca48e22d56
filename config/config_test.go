package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
width: 32
height: 24
algorithm: cellular
parameters:
  fillProbability: 0.45
  iterations: 4
  birthLimit: 5
terrainTypes:
  - ground
  - wall
entities:
  - type: enemy
    count: 5
    strategy: random
    minDistance: 2.5
  - type: item
    count: 3
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, 32, cfg.Width)
	assert.Equal(t, 24, cfg.Height)
	assert.Equal(t, "cellular", cfg.Algorithm)
	assert.Equal(t, []string{"ground", "wall"}, cfg.TerrainTypes)

	// YAML scalars keep their Go types inside the parameter map.
	assert.Equal(t, 0.45, cfg.Params["fillProbability"])
	assert.Equal(t, 4, cfg.Params["iterations"])
	assert.Equal(t, 5, cfg.Params["birthLimit"])

	require.Len(t, cfg.Entities, 2)
	assert.Equal(t, EntityConfig{Type: "enemy", Count: 5, Strategy: "random", MinDistance: 2.5}, cfg.Entities[0])
	assert.Equal(t, EntityConfig{Type: "item", Count: 3}, cfg.Entities[1])
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("width: [not a number"))
	assert.Error(t, err)
}

func TestLoader_LoadGeneration(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/cave.yaml": &fstest.MapFile{Data: []byte(sampleYAML)},
	}
	l := NewFSLoader(fsys)

	cfg, err := l.LoadGeneration("levels/cave.yaml")
	require.NoError(t, err)
	assert.Equal(t, "cellular", cfg.Algorithm)

	_, err = l.LoadGeneration("levels/missing.yaml")
	assert.Error(t, err)
}

func TestEntityConfig_EffectiveMinDistance(t *testing.T) {
	tests := []struct {
		name string
		cfg  EntityConfig
		want float64
	}{
		{name: "unset uses default", cfg: EntityConfig{}, want: 1.0},
		{name: "negative uses default", cfg: EntityConfig{MinDistance: -2}, want: 1.0},
		{name: "override", cfg: EntityConfig{MinDistance: 3.5}, want: 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.EffectiveMinDistance())
		})
	}
}

func TestGenerationConfig_TypePermitted(t *testing.T) {
	unrestricted := &GenerationConfig{}
	assert.True(t, unrestricted.TypePermitted("grass"))
	assert.True(t, unrestricted.TypePermitted("lava"))

	restricted := &GenerationConfig{TerrainTypes: []string{"ground", "wall"}}
	assert.True(t, restricted.TypePermitted("ground"))
	assert.False(t, restricted.TypePermitted("grass"))
}
