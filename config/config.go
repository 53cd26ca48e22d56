// Package config defines the value objects that drive terrain generation
// and entity placement, plus a loader for reading them from YAML files.
package config

// DefaultMinDistance is the minimum spacing, in world units, between placed
// entities when a request does not override it.
const DefaultMinDistance = 1.0

// Params is an algorithm-specific parameter mapping. Values are typed
// scalars (float64, int, bool or string); each generator validates its own
// parameters against an explicit rule table.
type Params map[string]any

// EntityConfig is one entity placement request.
type EntityConfig struct {
	Type        string  `yaml:"type"`
	Count       int     `yaml:"count"`
	Strategy    string  `yaml:"strategy"`
	MinDistance float64 `yaml:"minDistance"`
}

// EffectiveMinDistance returns the request's minimum-distance override, or
// DefaultMinDistance when none was given.
func (c EntityConfig) EffectiveMinDistance() float64 {
	if c.MinDistance <= 0 {
		return DefaultMinDistance
	}
	return c.MinDistance
}

// GenerationConfig describes one level generation call: grid dimensions,
// the chosen algorithm with its parameters, the ordered entity placement
// requests, and an optional list of permitted terrain-type names.
type GenerationConfig struct {
	Width        int            `yaml:"width"`
	Height       int            `yaml:"height"`
	Algorithm    string         `yaml:"algorithm"`
	Params       Params         `yaml:"parameters"`
	Entities     []EntityConfig `yaml:"entities"`
	TerrainTypes []string       `yaml:"terrainTypes"`
}

// TypePermitted reports whether the named terrain type may be emitted. An
// empty list permits every type.
func (c *GenerationConfig) TypePermitted(name string) bool {
	if len(c.TerrainTypes) == 0 {
		return true
	}
	for _, t := range c.TerrainTypes {
		if t == name {
			return true
		}
	}
	return false
}
