package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelgen/config"
	"levelgen/tiles"
)

// gridTiles snapshots a grid for equality checks.
func gridTiles(g *tiles.Grid) [][]tiles.TileType {
	out := make([][]tiles.TileType, g.Height())
	for y := range out {
		out[y] = make([]tiles.TileType, g.Width())
		for x := range out[y] {
			out[y][x] = g.Tile(x, y)
		}
	}
	return out
}

func assertBorderWalls(t *testing.T, g *tiles.Grid) {
	t.Helper()
	for x := 0; x < g.Width(); x++ {
		require.Equal(t, tiles.Wall, g.Tile(x, 0), "top border at x=%d", x)
		require.Equal(t, tiles.Wall, g.Tile(x, g.Height()-1), "bottom border at x=%d", x)
	}
	for y := 0; y < g.Height(); y++ {
		require.Equal(t, tiles.Wall, g.Tile(0, y), "left border at y=%d", y)
		require.Equal(t, tiles.Wall, g.Tile(g.Width()-1, y), "right border at y=%d", y)
	}
}

func hasErrorContaining(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestAlgorithmNames(t *testing.T) {
	assert.Equal(t, "noise", NewNoiseGenerator().AlgorithmName())
	assert.Equal(t, "cellular", NewAutomatonGenerator().AlgorithmName())
	assert.Equal(t, "maze", NewMazeGenerator().AlgorithmName())
}

func TestValidateParameters(t *testing.T) {
	noise := NewNoiseGenerator()
	automaton := NewAutomatonGenerator()
	maze := NewMazeGenerator()

	tests := []struct {
		name         string
		gen          TerrainGenerator
		params       config.Params
		wantContains []string
	}{
		{name: "noise defaults", gen: noise, params: noise.DefaultParameters()},
		{name: "noise empty params", gen: noise, params: config.Params{}},
		{name: "noise unknown key", gen: noise, params: config.Params{"bogus": 1},
			wantContains: []string{`unknown parameter "bogus"`}},
		{name: "noise zero scale", gen: noise, params: config.Params{"scale": 0.0},
			wantContains: []string{`"scale"`}},
		{name: "noise zero octaves", gen: noise, params: config.Params{"octaves": 0},
			wantContains: []string{`"octaves"`}},
		{name: "noise fractional octaves", gen: noise, params: config.Params{"octaves": 2.5},
			wantContains: []string{"must be an integer"}},
		{name: "noise persistence above one", gen: noise, params: config.Params{"persistence": 1.5},
			wantContains: []string{`"persistence"`}},
		{name: "noise lacunarity below one", gen: noise, params: config.Params{"lacunarity": 0.5},
			wantContains: []string{`"lacunarity"`}},
		{name: "noise scale wrong type", gen: noise, params: config.Params{"scale": "high"},
			wantContains: []string{"must be a number"}},
		{name: "noise multiple problems", gen: noise,
			params:       config.Params{"scale": -1.0, "octaves": 0},
			wantContains: []string{`"octaves"`, `"scale"`}},
		{name: "automaton defaults", gen: automaton, params: automaton.DefaultParameters()},
		{name: "automaton fill above one", gen: automaton, params: config.Params{"fillProbability": 1.5},
			wantContains: []string{`"fillProbability"`}},
		{name: "automaton negative iterations", gen: automaton, params: config.Params{"iterations": -1},
			wantContains: []string{`"iterations"`}},
		{name: "automaton birth above eight", gen: automaton, params: config.Params{"birthLimit": 9},
			wantContains: []string{`"birthLimit"`}},
		{name: "automaton death below zero", gen: automaton, params: config.Params{"deathLimit": -1},
			wantContains: []string{`"deathLimit"`}},
		{name: "automaton unknown key", gen: automaton, params: config.Params{"smoothing": true},
			wantContains: []string{`unknown parameter "smoothing"`}},
		{name: "maze defaults", gen: maze, params: maze.DefaultParameters()},
		{name: "maze unknown algorithm", gen: maze, params: config.Params{"algorithm": "prim"},
			wantContains: []string{`"algorithm"`}},
		{name: "maze algorithm wrong type", gen: maze, params: config.Params{"algorithm": 3},
			wantContains: []string{"must be a string"}},
		{name: "maze braiding above one", gen: maze, params: config.Params{"braidingFactor": 2.0},
			wantContains: []string{`"braidingFactor"`}},
		{name: "maze negative complexity", gen: maze, params: config.Params{"complexity": -0.1},
			wantContains: []string{`"complexity"`}},
		{name: "maze density above one", gen: maze, params: config.Params{"density": 1.01},
			wantContains: []string{`"density"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.gen.ValidateParameters(tt.params)
			if len(tt.wantContains) == 0 {
				assert.Empty(t, errs)
				assert.True(t, tt.gen.SupportsParameters(tt.params))
				return
			}
			require.Len(t, errs, len(tt.wantContains), "errors: %v", errs)
			for _, want := range tt.wantContains {
				assert.True(t, hasErrorContaining(errs, want),
					"expected an error containing %q in %v", want, errs)
			}
			assert.False(t, tt.gen.SupportsParameters(tt.params))
		})
	}
}

func TestGenerateTerrain_ContractViolationsPanic(t *testing.T) {
	gens := []TerrainGenerator{
		NewNoiseGenerator(),
		NewAutomatonGenerator(),
		NewMazeGenerator(),
	}

	for _, gen := range gens {
		t.Run(gen.AlgorithmName(), func(t *testing.T) {
			assert.Panics(t, func() { gen.GenerateTerrain(nil, 1) })
			assert.Panics(t, func() {
				gen.GenerateTerrain(&config.GenerationConfig{Width: 0, Height: 10}, 1)
			})
			assert.Panics(t, func() {
				gen.GenerateTerrain(&config.GenerationConfig{Width: 10, Height: -1}, 1)
			})
		})
	}
}
