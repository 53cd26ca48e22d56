package tiles

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Grid is a dense width x height tile map. Dimensions are fixed at
// construction. All coordinate access is bounds-checked and panics on
// violation: an out-of-range index is a programmer error, not a condition
// the generators recover from.
type Grid struct {
	width    int
	height   int
	cells    []TileType
	walkable mapset.Set[TileType]
}

// NewGrid creates a grid of the given dimensions with every tile set to
// Ground and the default walkable set installed. Panics if either dimension
// is not positive.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tiles: non-positive grid dimensions %dx%d", width, height))
	}
	return &Grid{
		width:    width,
		height:   height,
		cells:    make([]TileType, width*height),
		walkable: DefaultWalkable(),
	}
}

// Width returns the grid width in tiles.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in tiles.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) is a valid coordinate.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Tile returns the tile type at (x, y). Panics if out of range.
func (g *Grid) Tile(x, y int) TileType {
	g.check(x, y)
	return g.cells[y*g.width+x]
}

// SetTile sets the tile type at (x, y). Panics if out of range.
func (g *Grid) SetTile(x, y int, t TileType) {
	g.check(x, y)
	g.cells[y*g.width+x] = t
}

// IsWalkable reports whether the tile at (x, y) belongs to the grid's
// walkable set. Panics if out of range.
func (g *Grid) IsWalkable(x, y int) bool {
	return g.walkable.Has(g.Tile(x, y))
}

// Walkable returns the grid's walkable tile set.
func (g *Grid) Walkable() mapset.Set[TileType] { return g.walkable }

// SetWalkable replaces the grid's walkable tile set. Generators use this to
// install their walkability policy on the grids they produce.
func (g *Grid) SetWalkable(set mapset.Set[TileType]) { g.walkable = set }

// WalkableTiles returns the coordinates of every walkable tile in row-major
// order.
func (g *Grid) WalkableTiles() []Point {
	var out []Point
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.walkable.Has(g.cells[y*g.width+x]) {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}
	return out
}

func (g *Grid) check(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("tiles: coordinate (%d,%d) out of range for %dx%d grid", x, y, g.width, g.height))
	}
}
