// Package generation implements the terrain generator family: coherent
// noise fields, cellular automata with region cleanup, and maze carving
// with probabilistic braiding. All generators share one contract and a
// deterministic seeded random source, so identical configuration and seed
// reproduce the grid tile for tile.
package generation

import (
	"fmt"
	"math"
	"sort"

	"levelgen/config"
	"levelgen/tiles"
)

// TerrainGenerator is the contract every terrain algorithm implements.
// GenerateTerrain panics on a nil config or non-positive dimensions;
// ValidateParameters reports expected, recoverable input problems as
// human-readable strings and never panics.
type TerrainGenerator interface {
	GenerateTerrain(cfg *config.GenerationConfig, seed int64) *tiles.Grid
	AlgorithmName() string
	DefaultParameters() config.Params
	ValidateParameters(params config.Params) []string
	SupportsParameters(params config.Params) bool
}

type paramKind int

const (
	kindFloat paramKind = iota
	kindInt
	kindString
	kindBool
)

// paramRule is one entry of a generator's validation rule table. Numeric
// bounds are inclusive; an infinite max means unbounded above. minExclusive
// turns the lower bound into a strict one (used for scale > 0).
type paramRule struct {
	kind         paramKind
	min, max     float64
	minExclusive bool
	oneOf        []string
}

// validateParams checks a parameter map against a rule table and returns
// one message per problem. Keys are processed in sorted order so the
// message list is stable.
func validateParams(params config.Params, rules map[string]paramRule) []string {
	var errs []string
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		rule, known := rules[key]
		if !known {
			errs = append(errs, fmt.Sprintf("unknown parameter %q", key))
			continue
		}
		if msg := rule.check(key, params[key]); msg != "" {
			errs = append(errs, msg)
		}
	}
	return errs
}

func (r paramRule) check(key string, value any) string {
	switch r.kind {
	case kindFloat:
		f, ok := toFloat(value)
		if !ok {
			return fmt.Sprintf("parameter %q must be a number", key)
		}
		return r.checkRange(key, f)
	case kindInt:
		i, ok := value.(int)
		if !ok {
			return fmt.Sprintf("parameter %q must be an integer", key)
		}
		return r.checkRange(key, float64(i))
	case kindString:
		s, ok := value.(string)
		if !ok {
			return fmt.Sprintf("parameter %q must be a string", key)
		}
		if len(r.oneOf) > 0 {
			for _, allowed := range r.oneOf {
				if s == allowed {
					return ""
				}
			}
			return fmt.Sprintf("parameter %q must be one of %v, got %q", key, r.oneOf, s)
		}
	case kindBool:
		if _, ok := value.(bool); !ok {
			return fmt.Sprintf("parameter %q must be a boolean", key)
		}
	}
	return ""
}

func (r paramRule) checkRange(key string, v float64) string {
	if r.minExclusive {
		if v <= r.min {
			return fmt.Sprintf("parameter %q must be greater than %g, got %g", key, r.min, v)
		}
	} else if v < r.min {
		return rangeMessage(key, r, v)
	}
	if v > r.max {
		return rangeMessage(key, r, v)
	}
	return ""
}

func rangeMessage(key string, r paramRule, v float64) string {
	if math.IsInf(r.max, 1) {
		return fmt.Sprintf("parameter %q must be at least %g, got %g", key, r.min, v)
	}
	return fmt.Sprintf("parameter %q must be between %g and %g, got %g", key, r.min, r.max, v)
}

// toFloat widens int parameter values into float64, since YAML and literal
// Go maps both produce ints for whole numbers.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// mergedParams overlays caller parameters onto a generator's defaults.
func mergedParams(defaults, overrides config.Params) config.Params {
	merged := make(config.Params, len(defaults))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

func floatParam(params config.Params, key string) float64 {
	f, _ := toFloat(params[key])
	return f
}

func intParam(params config.Params, key string) int {
	switch v := params[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func stringParam(params config.Params, key string) string {
	s, _ := params[key].(string)
	return s
}

// requireConfig enforces the fatal-error contract shared by all
// generators.
func requireConfig(cfg *config.GenerationConfig) {
	if cfg == nil {
		panic("generation: nil configuration")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		panic(fmt.Sprintf("generation: non-positive dimensions %dx%d", cfg.Width, cfg.Height))
	}
}

// forceBorderWalls overwrites the outer ring of the grid with wall tiles.
func forceBorderWalls(g *tiles.Grid) {
	for x := 0; x < g.Width(); x++ {
		g.SetTile(x, 0, tiles.Wall)
		g.SetTile(x, g.Height()-1, tiles.Wall)
	}
	for y := 0; y < g.Height(); y++ {
		g.SetTile(0, y, tiles.Wall)
		g.SetTile(g.Width()-1, y, tiles.Wall)
	}
}
