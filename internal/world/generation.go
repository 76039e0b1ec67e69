// Biome synthesis from coordinate-seeded noise.
// Elevation and moisture pick the terrain; a third, high-frequency layer picks
// the element tag. The same coordinate always classifies the same way; only
// cosmetic flavor choices draw from the injected random source.
package world

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/frontier-map/internal/entropy"
)

// NoiseLayer identifies one of the independent noise layers.
type NoiseLayer uint8

const (
	LayerElevation NoiseLayer = iota
	LayerMoisture
	LayerElement
)

// NoiseField samples a layer at a point, returning roughly [0, 1].
type NoiseField interface {
	Sample(layer NoiseLayer, x, y float64) float64
}

// Seed offsets for the trigonometric field, one per layer.
var trigSeeds = [3]float64{
	LayerElevation: 123.45,
	LayerMoisture:  987.65,
	LayerElement:   555.55,
}

// TrigNoise is layered sine/cosine noise at three frequency bands.
// It is the default field; the classification thresholds are tuned to it.
type TrigNoise struct{}

// Sample evaluates the field at (x, y) offset by the layer's seed.
func (TrigNoise) Sample(layer NoiseLayer, x, y float64) float64 {
	seed := trigSeeds[layer]
	sx := x + seed*100
	sy := y + seed*100
	n1 := math.Sin(sx*0.05) + math.Cos(sy*0.05)
	n2 := math.Sin(sx*0.1+2) + math.Cos(sy*0.1+4)
	n3 := math.Sin(sx*0.3-2) + math.Cos(sy*0.3-1)
	raw := n1*1.0 + n2*0.5 + n3*0.25
	return (raw + 2.5) / 5.0
}

// SimplexNoise is a seedable alternative built on OpenSimplex.
type SimplexNoise struct {
	layers [3]opensimplex.Noise
}

// NewSimplexNoise creates three independent simplex generators from one seed.
func NewSimplexNoise(seed int64) *SimplexNoise {
	return &SimplexNoise{
		layers: [3]opensimplex.Noise{
			opensimplex.NewNormalized(seed),
			opensimplex.NewNormalized(seed + 1),
			opensimplex.NewNormalized(seed + 2),
		},
	}
}

// Sample evaluates three octaves of the layer's generator.
func (s *SimplexNoise) Sample(layer NoiseLayer, x, y float64) float64 {
	return octaveNoise(s.layers[layer], x, y, 3, 0.08, 0.5)
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// Biome is the derived character of one terrain hex.
type Biome struct {
	Terrain   Terrain
	Element   Element
	Flavor    string
	Elevation float64
	Moisture  float64
}

// Classification thresholds.
const (
	elevationBias = 0.1   // Bias towards plateaus and peaks
	moistureBias  = -0.15 // Bias towards steppe and desert

	waterLevel    = 0.25
	mountainLevel = 0.80
	hillLevel     = 0.65

	desertMoisture = 0.25
	marshMoisture  = 0.70
	forestMoisture = 0.55

	settlementThreshold = 0.985
)

// BiomeGenerator classifies coordinates into biomes.
type BiomeGenerator struct {
	noise NoiseField
	rand  entropy.Source
}

// NewBiomeGenerator returns a generator over the given field and random source.
// A nil field means TrigNoise; a nil source means crypto/rand.
func NewBiomeGenerator(noise NoiseField, src entropy.Source) *BiomeGenerator {
	if noise == nil {
		noise = TrigNoise{}
	}
	if src == nil {
		src = entropy.Crypto{}
	}
	return &BiomeGenerator{noise: noise, rand: src}
}

// At returns the biome of the hex at c.
func (g *BiomeGenerator) At(c HexCoord) Biome {
	q, r := float64(c.Q), float64(c.R)

	elevation := g.noise.Sample(LayerElevation, q, r) + elevationBias
	moisture := g.noise.Sample(LayerMoisture, q, r) + moistureBias
	elementVal := g.noise.Sample(LayerElement, q*5, r*5)

	b := Biome{
		Terrain:   ClassifyTerrain(elevation, moisture),
		Elevation: elevation,
		Moisture:  moisture,
	}
	b.Flavor = g.flavor(b.Terrain, elevation, moisture)
	b.Element = ClassifyElement(elementVal, b.Terrain.Habitable())

	if b.Terrain.Habitable() && SettlementAt(c) {
		b.Terrain = TerrainSettlement
		b.Element = ElementFeature
		b.Flavor = g.pick("Frontier Trading Post", "Silk Road Caravanserai")
	}
	return b
}

// ClassifyTerrain maps elevation and moisture to a terrain category.
func ClassifyTerrain(elevation, moisture float64) Terrain {
	switch {
	case elevation < waterLevel:
		return TerrainWater
	case elevation > mountainLevel:
		return TerrainMountain
	case elevation > hillLevel:
		return TerrainHill
	case moisture < desertMoisture:
		return TerrainDesert
	case moisture > marshMoisture:
		return TerrainMarsh
	case moisture > forestMoisture:
		return TerrainForest
	default:
		return TerrainPlain
	}
}

// ClassifyElement maps the element-intensity noise to an element tag.
func ClassifyElement(v float64, habitable bool) Element {
	switch {
	case v > 0.85:
		if habitable && v > 0.92 {
			return ElementFeature
		}
		return ElementSecret
	case v < 0.15:
		return ElementDifficult
	case v > 0.70 && v < 0.75:
		return ElementResource
	default:
		return ElementStandard
	}
}

// SettlementAt reports whether the coordinate hash marks c as a settlement site.
func SettlementAt(c HexCoord) bool {
	h := math.Sin(float64(c.Q)*345+float64(c.R)*123) * 1000
	return h-math.Floor(h) > settlementThreshold
}

func (g *BiomeGenerator) flavor(t Terrain, elevation, moisture float64) string {
	switch t {
	case TerrainWater:
		return g.pick("Salt Lake", "River Canyon")
	case TerrainMountain:
		return "Jade Peaks"
	case TerrainHill:
		if moisture < 0.3 {
			return "Red Rock Badlands"
		}
		return "Rocky Foothills"
	case TerrainDesert:
		return g.pick("Dune Sea", "Cracked Earth Flats")
	case TerrainMarsh:
		return "River Delta Wetlands"
	case TerrainForest:
		if elevation > 0.5 {
			return "Alpine Pine"
		}
		return "Bamboo Thicket"
	case TerrainPlain:
		return g.pick("High Steppe", "Sagebrush Prairie")
	}
	return "Wilderness"
}

// pick is a fair coin flip between two flavor strings.
func (g *BiomeGenerator) pick(a, b string) string {
	if entropy.Chance(g.rand, 0.5) {
		return b
	}
	return a
}
