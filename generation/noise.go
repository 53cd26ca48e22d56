package generation

import (
	"math"

	"levelgen/config"
	"levelgen/logger"
	"levelgen/random"
	"levelgen/tiles"
)

// perlinNoise is a coherent 2D noise field with configurable octave
// stacking. The permutation table is shuffled with the deterministic
// source, so the field depends only on the seed.
type perlinNoise struct {
	octaves     int
	scale       float64
	persistence float64
	lacunarity  float64
	permutation []int
}

func newPerlinNoise(rng *random.Source, octaves int, scale, persistence, lacunarity float64) *perlinNoise {
	p := &perlinNoise{
		octaves:     octaves,
		scale:       scale,
		persistence: persistence,
		lacunarity:  lacunarity,
		permutation: make([]int, 256),
	}
	for i := range p.permutation {
		p.permutation[i] = i
	}
	rng.Shuffle(len(p.permutation), func(i, j int) {
		p.permutation[i], p.permutation[j] = p.permutation[j], p.permutation[i]
	})
	return p
}

// at returns the octave-summed noise value at (x, y), normalized to
// roughly [-1, 1].
func (p *perlinNoise) at(x, y float64) float64 {
	x /= p.scale
	y /= p.scale

	var sum float64
	amplitude := 1.0
	frequency := 1.0
	maxValue := 0.0
	for i := 0; i < p.octaves; i++ {
		sum += p.perlin(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= p.persistence
		frequency *= p.lacunarity
	}
	return sum / maxValue
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func grad(hash int, x, y float64) float64 {
	h := hash & 15

	u := y
	if h < 4 {
		u = x
	}
	v := x
	if h < 12 {
		v = y
	}

	result := u
	if (h & 1) != 0 {
		result = -u
	}
	if (h & 2) != 0 {
		result -= v
	} else {
		result += v
	}
	return result
}

func (p *perlinNoise) perlin(x, y float64) float64 {
	// Unit grid cell containing the point.
	X := int(math.Floor(x)) & 255
	Y := int(math.Floor(y)) & 255

	x -= math.Floor(x)
	y -= math.Floor(y)

	u := fade(x)
	v := fade(y)

	// Hash the four corners and blend.
	perm := p.permutation
	aa := perm[(perm[X]+Y)&255]
	ab := perm[(perm[X]+Y+1)&255]
	ba := perm[(perm[(X+1)&255]+Y)&255]
	bb := perm[(perm[(X+1)&255]+Y+1)&255]

	return lerp(
		lerp(grad(aa, x, y), grad(ba, x-1, y), u),
		lerp(grad(ab, x, y-1), grad(bb, x-1, y-1), u),
		v,
	)
}

// NoiseGenerator produces terrain by thresholding a coherent noise field:
// low values become water, mid values open ground, high values stone and
// wall. The border ring is always wall.
type NoiseGenerator struct{}

// NewNoiseGenerator creates a noise-based terrain generator.
func NewNoiseGenerator() *NoiseGenerator { return &NoiseGenerator{} }

// AlgorithmName returns "noise".
func (g *NoiseGenerator) AlgorithmName() string { return "noise" }

// DefaultParameters returns the noise generator's default parameter map.
func (g *NoiseGenerator) DefaultParameters() config.Params {
	return config.Params{
		"scale":         20.0,
		"octaves":       4,
		"persistence":   0.5,
		"lacunarity":    2.0,
		"waterLevel":    0.3,
		"mountainLevel": 0.7,
	}
}

var noiseRules = map[string]paramRule{
	"scale":         {kind: kindFloat, min: 0, max: math.Inf(1), minExclusive: true},
	"octaves":       {kind: kindInt, min: 1, max: math.Inf(1)},
	"persistence":   {kind: kindFloat, min: 0, max: 1},
	"lacunarity":    {kind: kindFloat, min: 1, max: math.Inf(1)},
	"waterLevel":    {kind: kindFloat, min: 0, max: 1},
	"mountainLevel": {kind: kindFloat, min: 0, max: 1},
}

// ValidateParameters checks the parameter map against the noise rule
// table and returns one message per problem.
func (g *NoiseGenerator) ValidateParameters(params config.Params) []string {
	return validateParams(params, noiseRules)
}

// SupportsParameters reports whether the parameter map validates cleanly.
func (g *NoiseGenerator) SupportsParameters(params config.Params) bool {
	return len(g.ValidateParameters(params)) == 0
}

// GenerateTerrain builds the noise field and classifies every cell against
// the water and mountain thresholds. Cosmetic variants (grass, sand, stone)
// respect the config's permitted terrain types and fall back to their
// structural equivalents.
func (g *NoiseGenerator) GenerateTerrain(cfg *config.GenerationConfig, seed int64) *tiles.Grid {
	requireConfig(cfg)
	params := mergedParams(g.DefaultParameters(), cfg.Params)

	rng := random.New(seed)
	noise := newPerlinNoise(rng,
		intParam(params, "octaves"),
		floatParam(params, "scale"),
		floatParam(params, "persistence"),
		floatParam(params, "lacunarity"))

	waterLevel := floatParam(params, "waterLevel")
	mountainLevel := floatParam(params, "mountainLevel")
	beachLevel := waterLevel + 0.05
	grassLevel := (waterLevel + mountainLevel) / 2
	stoneLevel := mountainLevel + 0.12

	grid := tiles.NewGrid(cfg.Width, cfg.Height)
	waterTiles := 0
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			// Map the field from [-1,1] into [0,1] before thresholding.
			v := (noise.at(float64(x), float64(y)) + 1) / 2
			var t tiles.TileType
			switch {
			case v < waterLevel:
				t = tiles.Water
				waterTiles++
			case v < beachLevel:
				t = pickPermitted(cfg, tiles.Sand, tiles.Ground)
			case v < grassLevel:
				t = pickPermitted(cfg, tiles.Grass, tiles.Ground)
			case v < mountainLevel:
				t = tiles.Ground
			case v < stoneLevel:
				t = pickPermitted(cfg, tiles.Stone, tiles.Wall)
			default:
				t = tiles.Wall
			}
			grid.SetTile(x, y, t)
		}
	}
	forceBorderWalls(grid)

	logger.Debug("noise terrain generated",
		"width", cfg.Width, "height", cfg.Height,
		"seed", seed, "water_tiles", waterTiles)
	return grid
}

// pickPermitted returns the preferred tile type when the config permits it,
// otherwise the structural fallback.
func pickPermitted(cfg *config.GenerationConfig, preferred, fallback tiles.TileType) tiles.TileType {
	if cfg.TypePermitted(preferred.String()) {
		return preferred
	}
	return fallback
}
