package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelgen/tiles"
)

// twoPocketGrid builds a 7x5 all-wall grid with a 3-tile pocket on the left
// and a 4-tile pocket on the right.
func twoPocketGrid() *tiles.Grid {
	g := tiles.NewGrid(7, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 7; x++ {
			g.SetTile(x, y, tiles.Wall)
		}
	}
	for _, p := range []tiles.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}} {
		g.SetTile(p.X, p.Y, tiles.Ground)
	}
	for _, p := range []tiles.Point{{X: 5, Y: 1}, {X: 5, Y: 2}, {X: 5, Y: 3}, {X: 4, Y: 3}} {
		g.SetTile(p.X, p.Y, tiles.Grass)
	}
	return g
}

func TestFloodFill(t *testing.T) {
	g := twoPocketGrid()

	left := FloodFill(g, 1, 1)
	assert.Len(t, left, 3)
	assert.ElementsMatch(t, []tiles.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 2}}, left)

	right := FloodFill(g, 5, 2)
	assert.Len(t, right, 4)
}

func TestFloodFill_InvalidStart(t *testing.T) {
	g := twoPocketGrid()

	assert.Empty(t, FloodFill(g, 0, 0), "wall start")
	assert.Empty(t, FloodFill(g, -1, 2), "out of bounds start")
	assert.Empty(t, FloodFill(g, 7, 0), "out of bounds start")
}

func TestWalkableRegions(t *testing.T) {
	g := twoPocketGrid()

	regions := WalkableRegions(g)
	require.Len(t, regions, 2)
	assert.Len(t, regions[0], 3, "left pocket discovered first in row-major order")
	assert.Len(t, regions[1], 4)
}

func TestLargestRegion(t *testing.T) {
	g := twoPocketGrid()

	assert.Len(t, LargestRegion(g), 4)

	empty := tiles.NewGrid(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			empty.SetTile(x, y, tiles.Wall)
		}
	}
	assert.Nil(t, LargestRegion(empty))
}

func TestConnectivityRatio(t *testing.T) {
	g := twoPocketGrid()
	assert.InDelta(t, 4.0/7.0, ConnectivityRatio(g), 1e-9)

	solid := tiles.NewGrid(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			solid.SetTile(x, y, tiles.Wall)
		}
	}
	assert.Equal(t, 0.0, ConnectivityRatio(solid))

	open := tiles.NewGrid(4, 4)
	assert.Equal(t, 1.0, ConnectivityRatio(open))
}
