// Package tiles provides the 2D tile grid and tile type definitions shared
// by the terrain generators and the entity placer.
package tiles

import (
	"github.com/zyedidia/generic/mapset"
)

// TileType identifies the terrain type of a single grid cell.
type TileType int

// Tile types. Ground is the zero value, so a freshly constructed grid is
// all ground until a generator writes to it.
const (
	Ground TileType = iota
	Grass
	Sand
	Wall
	Water
	Stone
	Lava
	Ice
)

// String returns the lowercase name of the tile type, matching the names
// used in configuration terrain-type lists.
func (t TileType) String() string {
	switch t {
	case Ground:
		return "ground"
	case Grass:
		return "grass"
	case Sand:
		return "sand"
	case Wall:
		return "wall"
	case Water:
		return "water"
	case Stone:
		return "stone"
	case Lava:
		return "lava"
	case Ice:
		return "ice"
	}
	return "unknown"
}

// DefaultWalkable returns the standard walkable tile set: ground, grass and
// sand. Walkability is a generator-level policy; generators may install a
// different set on the grids they produce.
func DefaultWalkable() mapset.Set[TileType] {
	walkable := mapset.New[TileType]()
	walkable.Put(Ground)
	walkable.Put(Grass)
	walkable.Put(Sand)
	return walkable
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}
