package generation

import (
	"levelgen/config"
	"levelgen/logger"
	"levelgen/random"
	"levelgen/tiles"
)

// Maze carving algorithm names.
const (
	MazeRecursiveBacktracking = "recursive_backtracking"
	MazeSimple                = "simple"
)

// MazeGenerator produces corridor terrain. The recursive_backtracking
// algorithm carves a perfect maze (a spanning tree over the logical cell
// lattice, cells two tiles apart); the simple algorithm grows random wall
// segments into an open field instead. Braiding then opens some dead ends
// with a configurable probability.
type MazeGenerator struct{}

// NewMazeGenerator creates a maze terrain generator.
func NewMazeGenerator() *MazeGenerator { return &MazeGenerator{} }

// AlgorithmName returns "maze".
func (g *MazeGenerator) AlgorithmName() string { return "maze" }

// DefaultParameters returns the maze generator's default parameter map.
func (g *MazeGenerator) DefaultParameters() config.Params {
	return config.Params{
		"algorithm":      MazeRecursiveBacktracking,
		"complexity":     0.75,
		"density":        0.75,
		"braidingFactor": 0.0,
	}
}

var mazeRules = map[string]paramRule{
	"algorithm":      {kind: kindString, oneOf: []string{MazeRecursiveBacktracking, MazeSimple}},
	"complexity":     {kind: kindFloat, min: 0, max: 1},
	"density":        {kind: kindFloat, min: 0, max: 1},
	"braidingFactor": {kind: kindFloat, min: 0, max: 1},
}

// ValidateParameters checks the parameter map against the maze rule table
// and returns one message per problem.
func (g *MazeGenerator) ValidateParameters(params config.Params) []string {
	return validateParams(params, mazeRules)
}

// SupportsParameters reports whether the parameter map validates cleanly.
func (g *MazeGenerator) SupportsParameters(params config.Params) bool {
	return len(g.ValidateParameters(params)) == 0
}

// GenerateTerrain carves the maze with the selected algorithm and applies
// braiding. The border ring is always wall; a grid too small to hold a
// single cell comes back all wall.
func (g *MazeGenerator) GenerateTerrain(cfg *config.GenerationConfig, seed int64) *tiles.Grid {
	requireConfig(cfg)
	params := mergedParams(g.DefaultParameters(), cfg.Params)

	rng := random.New(seed)
	grid := tiles.NewGrid(cfg.Width, cfg.Height)
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			grid.SetTile(x, y, tiles.Wall)
		}
	}

	algorithm := stringParam(params, "algorithm")
	switch algorithm {
	case MazeSimple:
		g.carveSimple(grid, rng,
			floatParam(params, "complexity"),
			floatParam(params, "density"))
	default:
		g.carveBacktracking(grid, rng)
	}
	forceBorderWalls(grid)

	braided := 0
	if factor := floatParam(params, "braidingFactor"); factor > 0 {
		braided = g.braid(grid, rng, factor)
	}

	logger.Debug("maze terrain generated",
		"width", cfg.Width, "height", cfg.Height,
		"seed", seed, "algorithm", algorithm,
		"dead_ends", DeadEnds(grid), "braided", braided)
	return grid
}

// carveBacktracking runs a randomized depth-first carve over the logical
// cell lattice. Cells live at odd tile coordinates; carving a connection
// opens the wall tile between two cells. The result is a perfect maze:
// every cell reachable, no cycles.
func (g *MazeGenerator) carveBacktracking(grid *tiles.Grid, rng *random.Source) {
	cellsX := (grid.Width() - 1) / 2
	cellsY := (grid.Height() - 1) / 2
	if cellsX < 1 || cellsY < 1 {
		return
	}

	visited := make([][]bool, cellsY)
	for i := range visited {
		visited[i] = make([]bool, cellsX)
	}

	start := tiles.Point{X: rng.Intn(0, cellsX), Y: rng.Intn(0, cellsY)}
	visited[start.Y][start.X] = true
	grid.SetTile(2*start.X+1, 2*start.Y+1, tiles.Ground)

	stack := []tiles.Point{start}
	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var unvisited []tiles.Point
		for _, d := range cardinal {
			n := tiles.Point{X: current.X + d.X, Y: current.Y + d.Y}
			if n.X >= 0 && n.X < cellsX && n.Y >= 0 && n.Y < cellsY && !visited[n.Y][n.X] {
				unvisited = append(unvisited, n)
			}
		}
		if len(unvisited) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := unvisited[rng.Intn(0, len(unvisited))]
		// Open the wall between the two cells, then the cell itself.
		grid.SetTile(current.X+next.X+1, current.Y+next.Y+1, tiles.Ground)
		grid.SetTile(2*next.X+1, 2*next.Y+1, tiles.Ground)
		visited[next.Y][next.X] = true
		stack = append(stack, next)
	}
}

// carveSimple opens the whole interior and then grows random wall segments
// back into it. density scales the number of segment seeds, complexity the
// length of each segment. The result is open and corridor-ish rather than
// a spanning tree.
func (g *MazeGenerator) carveSimple(grid *tiles.Grid, rng *random.Source, complexity, density float64) {
	w, h := grid.Width(), grid.Height()
	if w < 3 || h < 3 {
		return
	}
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			grid.SetTile(x, y, tiles.Ground)
		}
	}

	steps := int(complexity * float64(w+h))
	seeds := int(density * float64((w/2)*(h/2)) / 2)
	for i := 0; i < seeds; i++ {
		// Wall segments anchor on the even sub-lattice so corridors stay
		// one tile wide.
		x := 2 * rng.Intn(0, (w+1)/2)
		y := 2 * rng.Intn(0, (h+1)/2)
		grid.SetTile(x, y, tiles.Wall)

		for j := 0; j < steps; j++ {
			var targets []tiles.Point
			for _, d := range cardinal {
				t := tiles.Point{X: x + 2*d.X, Y: y + 2*d.Y}
				if grid.InBounds(t.X, t.Y) {
					targets = append(targets, t)
				}
			}
			if len(targets) == 0 {
				break
			}
			t := targets[rng.Intn(0, len(targets))]
			if grid.Tile(t.X, t.Y) != tiles.Ground {
				continue
			}
			grid.SetTile(t.X, t.Y, tiles.Wall)
			grid.SetTile((x+t.X)/2, (y+t.Y)/2, tiles.Wall)
			x, y = t.X, t.Y
		}
	}
}

// braid opens one extra wall next to each dead end with the given
// probability, connecting it to a neighbouring corridor. Braiding reduces
// dead ends probabilistically; it does not promise to remove them all.
func (g *MazeGenerator) braid(grid *tiles.Grid, rng *random.Source, factor float64) int {
	opened := 0
	for _, p := range deadEndTiles(grid) {
		if rng.Float64() >= factor {
			continue
		}
		var candidates []tiles.Point
		for _, d := range cardinal {
			wall := tiles.Point{X: p.X + d.X, Y: p.Y + d.Y}
			beyond := tiles.Point{X: p.X + 2*d.X, Y: p.Y + 2*d.Y}
			if wall.X < 1 || wall.X >= grid.Width()-1 || wall.Y < 1 || wall.Y >= grid.Height()-1 {
				continue
			}
			if grid.Tile(wall.X, wall.Y) != tiles.Wall {
				continue
			}
			if !grid.InBounds(beyond.X, beyond.Y) || !grid.IsWalkable(beyond.X, beyond.Y) {
				continue
			}
			candidates = append(candidates, wall)
		}
		if len(candidates) == 0 {
			continue
		}
		c := candidates[rng.Intn(0, len(candidates))]
		grid.SetTile(c.X, c.Y, tiles.Ground)
		opened++
	}
	return opened
}

// DeadEnds counts walkable tiles with exactly one walkable orthogonal
// neighbour.
func DeadEnds(g *tiles.Grid) int {
	return len(deadEndTiles(g))
}

func deadEndTiles(g *tiles.Grid) []tiles.Point {
	var out []tiles.Point
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if !g.IsWalkable(x, y) {
				continue
			}
			exits := 0
			for _, d := range cardinal {
				nx, ny := x+d.X, y+d.Y
				if g.InBounds(nx, ny) && g.IsWalkable(nx, ny) {
					exits++
				}
			}
			if exits == 1 {
				out = append(out, tiles.Point{X: x, Y: y})
			}
		}
	}
	return out
}
