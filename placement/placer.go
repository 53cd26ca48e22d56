// Package placement positions entities (player, enemies, items) on a
// generated grid under walkability and minimum-distance constraints.
package placement

import (
	"math"

	"levelgen/config"
	"levelgen/logger"
	"levelgen/random"
	"levelgen/tiles"
)

// Well-known entity type tags.
const (
	TypePlayer = "player"
	TypeEnemy  = "enemy"
	TypeItem   = "item"
)

// Entity is a positioned entity. Position is in tile coordinates, usually
// integral-valued; identity is the type tag, distinct from the position.
type Entity struct {
	Type string
	X, Y float64
}

// Placer places entities on finished grids. It is stateless; each
// PlaceEntities call owns its own seeded random source.
type Placer struct{}

// NewPlacer creates an entity placer.
func NewPlacer() *Placer { return &Placer{} }

// PlaceEntities samples positions for one player plus the configured
// entity requests, in request order. A candidate is accepted when it is
// in bounds, walkable, and at least the effective minimum distance from
// every entity placed so far. Each unit gets a bounded retry budget
// proportional to the remaining walkable capacity; units that find no
// valid position within the budget are skipped, so the result may hold
// fewer entities than requested. A grid with no walkable tile yields no
// entities at all.
func (p *Placer) PlaceEntities(grid *tiles.Grid, cfg *config.GenerationConfig, seed int64) []Entity {
	if grid == nil {
		panic("placement: nil grid")
	}
	if cfg == nil {
		panic("placement: nil configuration")
	}

	rng := random.New(seed)
	walkable := grid.WalkableTiles()
	if len(walkable) == 0 {
		return nil
	}

	var entities []Entity
	start := walkable[rng.Intn(0, len(walkable))]
	entities = append(entities, Entity{Type: TypePlayer, X: float64(start.X), Y: float64(start.Y)})

	requested := 0
	for _, req := range cfg.Entities {
		if req.Count <= 0 {
			continue
		}
		requested += req.Count
		minDistance := req.EffectiveMinDistance()
		if req.Strategy != "" && req.Strategy != "random" {
			logger.Debug("unsupported placement strategy, sampling randomly",
				"type", req.Type, "strategy", req.Strategy)
		}
		for unit := 0; unit < req.Count; unit++ {
			budget := 2 * (len(walkable) - len(entities))
			for attempt := 0; attempt < budget; attempt++ {
				c := walkable[rng.Intn(0, len(walkable))]
				x, y := float64(c.X), float64(c.Y)
				if validPosition(x, y, grid, entities, minDistance) {
					entities = append(entities, Entity{Type: req.Type, X: x, Y: y})
					break
				}
			}
		}
	}

	logger.Debug("entities placed",
		"seed", seed, "placed", len(entities), "requested", requested+1)
	return entities
}

// IsValidPosition reports whether the position is in bounds, walkable, and
// at least the default minimum distance from every entity in others. It is
// the same predicate PlaceEntities applies internally, exposed for
// external verification.
func (p *Placer) IsValidPosition(x, y float64, grid *tiles.Grid, others []Entity) bool {
	return validPosition(x, y, grid, others, config.DefaultMinDistance)
}

func validPosition(x, y float64, grid *tiles.Grid, others []Entity, minDistance float64) bool {
	tx := int(math.Floor(x))
	ty := int(math.Floor(y))
	if !grid.InBounds(tx, ty) || !grid.IsWalkable(tx, ty) {
		return false
	}
	for _, e := range others {
		if math.Hypot(e.X-x, e.Y-y) < minDistance {
			return false
		}
	}
	return true
}
