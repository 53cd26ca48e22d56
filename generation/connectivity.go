package generation

import (
	"github.com/zyedidia/generic/mapset"

	"levelgen/tiles"
)

// orthogonal neighbour offsets, in scan order.
var cardinal = [4]tiles.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// FloodFill returns the connected component of walkable tiles containing
// (x, y), using orthogonal adjacency. The result is empty when the start
// tile is out of bounds or not walkable.
func FloodFill(g *tiles.Grid, x, y int) []tiles.Point {
	if !g.InBounds(x, y) || !g.IsWalkable(x, y) {
		return nil
	}
	visited := mapset.New[tiles.Point]()
	return fill(g, tiles.Point{X: x, Y: y}, visited)
}

func fill(g *tiles.Grid, start tiles.Point, visited mapset.Set[tiles.Point]) []tiles.Point {
	var region []tiles.Point
	queue := []tiles.Point{start}
	visited.Put(start)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		region = append(region, current)
		for _, d := range cardinal {
			next := tiles.Point{X: current.X + d.X, Y: current.Y + d.Y}
			if !g.InBounds(next.X, next.Y) || visited.Has(next) || !g.IsWalkable(next.X, next.Y) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return region
}

// WalkableRegions returns every connected component of walkable tiles, in
// row-major discovery order.
func WalkableRegions(g *tiles.Grid) [][]tiles.Point {
	visited := mapset.New[tiles.Point]()
	var regions [][]tiles.Point
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := tiles.Point{X: x, Y: y}
			if visited.Has(p) || !g.IsWalkable(x, y) {
				continue
			}
			regions = append(regions, fill(g, p, visited))
		}
	}
	return regions
}

// LargestRegion returns the biggest connected component of walkable tiles,
// or nil when the grid has none.
func LargestRegion(g *tiles.Grid) []tiles.Point {
	var largest []tiles.Point
	for _, region := range WalkableRegions(g) {
		if len(region) > len(largest) {
			largest = region
		}
	}
	return largest
}

// ConnectivityRatio returns the fraction of walkable tiles that belong to
// the largest connected component, or 0 for a grid with no walkable tiles.
// A fully navigable map has ratio 1.
func ConnectivityRatio(g *tiles.Grid) float64 {
	total := 0
	largest := 0
	for _, region := range WalkableRegions(g) {
		total += len(region)
		if len(region) > largest {
			largest = len(region)
		}
	}
	if total == 0 {
		return 0
	}
	return float64(largest) / float64(total)
}
