package generation

import (
	"math"

	"levelgen/config"
	"levelgen/logger"
	"levelgen/random"
	"levelgen/tiles"
)

// AutomatonGenerator produces cave-like terrain with a cellular automaton:
// a random wall/ground fill smoothed by a neighbour-count rule, followed by
// a cleanup pass that removes undersized disconnected pockets.
type AutomatonGenerator struct{}

// NewAutomatonGenerator creates a cellular-automaton terrain generator.
func NewAutomatonGenerator() *AutomatonGenerator { return &AutomatonGenerator{} }

// AlgorithmName returns "cellular".
func (g *AutomatonGenerator) AlgorithmName() string { return "cellular" }

// DefaultParameters returns the automaton's default parameter map.
func (g *AutomatonGenerator) DefaultParameters() config.Params {
	return config.Params{
		"fillProbability": 0.45,
		"iterations":      4,
		"birthLimit":      5,
		"deathLimit":      4,
		"minRegionSize":   16,
	}
}

var automatonRules = map[string]paramRule{
	"fillProbability": {kind: kindFloat, min: 0, max: 1},
	"iterations":      {kind: kindInt, min: 0, max: math.Inf(1)},
	"birthLimit":      {kind: kindInt, min: 0, max: 8},
	"deathLimit":      {kind: kindInt, min: 0, max: 8},
	"minRegionSize":   {kind: kindInt, min: 0, max: math.Inf(1)},
}

// ValidateParameters checks the parameter map against the automaton rule
// table and returns one message per problem.
func (g *AutomatonGenerator) ValidateParameters(params config.Params) []string {
	return validateParams(params, automatonRules)
}

// SupportsParameters reports whether the parameter map validates cleanly.
func (g *AutomatonGenerator) SupportsParameters(params config.Params) bool {
	return len(g.ValidateParameters(params)) == 0
}

// GenerateTerrain runs the random fill, the automaton iterations and the
// region cleanup. The border ring is wall throughout.
func (g *AutomatonGenerator) GenerateTerrain(cfg *config.GenerationConfig, seed int64) *tiles.Grid {
	requireConfig(cfg)
	params := mergedParams(g.DefaultParameters(), cfg.Params)

	fillProbability := floatParam(params, "fillProbability")
	iterations := intParam(params, "iterations")
	birthLimit := intParam(params, "birthLimit")
	deathLimit := intParam(params, "deathLimit")
	minRegionSize := intParam(params, "minRegionSize")

	rng := random.New(seed)
	grid := tiles.NewGrid(cfg.Width, cfg.Height)

	// Random interior fill.
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			if rng.Float64() < fillProbability {
				grid.SetTile(x, y, tiles.Wall)
			} else {
				grid.SetTile(x, y, tiles.Ground)
			}
		}
	}
	forceBorderWalls(grid)

	for i := 0; i < iterations; i++ {
		grid = g.step(grid, birthLimit, deathLimit)
	}

	removed := g.removeSmallRegions(grid, minRegionSize)

	logger.Debug("cellular terrain generated",
		"width", cfg.Width, "height", cfg.Height,
		"seed", seed, "iterations", iterations, "regions_removed", removed)
	return grid
}

// step applies one automaton iteration into a fresh grid: a ground cell
// becomes wall when its 8-neighbourhood wall count reaches birthLimit, and
// a wall cell stays wall only while the count stays at deathLimit or above.
func (g *AutomatonGenerator) step(grid *tiles.Grid, birthLimit, deathLimit int) *tiles.Grid {
	next := tiles.NewGrid(grid.Width(), grid.Height())
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			walls := countAdjacentWalls(grid, x, y)
			if grid.Tile(x, y) == tiles.Wall {
				if walls >= deathLimit {
					next.SetTile(x, y, tiles.Wall)
				} else {
					next.SetTile(x, y, tiles.Ground)
				}
			} else {
				if walls >= birthLimit {
					next.SetTile(x, y, tiles.Wall)
				} else {
					next.SetTile(x, y, tiles.Ground)
				}
			}
		}
	}
	forceBorderWalls(next)
	return next
}

// countAdjacentWalls counts wall tiles in the 8-neighbourhood of (x, y).
// Out-of-bounds neighbours count as walls.
func countAdjacentWalls(grid *tiles.Grid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if !grid.InBounds(nx, ny) || grid.Tile(nx, ny) == tiles.Wall {
				count++
			}
		}
	}
	return count
}

// removeSmallRegions converts walkable pockets below the size threshold to
// the majority type of the tiles surrounding them, and returns the number
// of pockets removed. This is the pass that turns automaton noise into
// coherent caves.
func (g *AutomatonGenerator) removeSmallRegions(grid *tiles.Grid, minRegionSize int) int {
	if minRegionSize <= 0 {
		return 0
	}
	removed := 0
	for _, region := range WalkableRegions(grid) {
		if len(region) >= minRegionSize {
			continue
		}
		filler := surroundingMajority(grid, region)
		for _, p := range region {
			grid.SetTile(p.X, p.Y, filler)
		}
		removed++
	}
	return removed
}

// surroundingMajority returns the most common tile type orthogonally
// adjacent to the region but not part of it. Defaults to wall when the
// region touches nothing (possible only on degenerate grids).
func surroundingMajority(grid *tiles.Grid, region []tiles.Point) tiles.TileType {
	inRegion := make(map[tiles.Point]bool, len(region))
	for _, p := range region {
		inRegion[p] = true
	}
	counts := make(map[tiles.TileType]int)
	for _, p := range region {
		for _, d := range cardinal {
			n := tiles.Point{X: p.X + d.X, Y: p.Y + d.Y}
			if !grid.InBounds(n.X, n.Y) || inRegion[n] {
				continue
			}
			counts[grid.Tile(n.X, n.Y)]++
		}
	}
	best := tiles.Wall
	bestCount := 0
	for t, c := range counts {
		if c > bestCount || (c == bestCount && t < best) {
			best = t
			bestCount = c
		}
	}
	return best
}
