package rules

import (
	"github.com/talgya/frontier-map/internal/entropy"
	"github.com/talgya/frontier-map/internal/world"
)

// RollD20 returns 1–20.
func RollD20(src entropy.Source) int {
	return roll(src, 20)
}

func roll(src entropy.Source, sides int) int {
	n := int(src.Float()*float64(sides)) + 1
	if n > sides {
		n = sides
	}
	return n
}

// RandomTerrain rolls a d20 on the hand-placement terrain table.
// 17–20 repeats the previous terrain, or Plain when there is none.
func RandomTerrain(src entropy.Source, previous world.Terrain) world.Terrain {
	switch d := RollD20(src); {
	case d <= 3:
		return world.TerrainForest
	case d <= 6:
		return world.TerrainHill
	case d <= 8:
		return world.TerrainMarsh
	case d <= 10:
		return world.TerrainMountain
	case d <= 13:
		return world.TerrainPlain
	case d == 14:
		return world.TerrainSettlement
	case d <= 16:
		return world.TerrainWater
	}
	if previous == "" || previous == world.TerrainUnexplored {
		return world.TerrainPlain
	}
	return previous
}

// RandomElement rolls a d20 on the element table.
func RandomElement(src entropy.Source) world.Element {
	switch d := RollD20(src); {
	case d <= 3:
		return world.ElementDifficult
	case d <= 6:
		return world.ElementFeature
	case d <= 10:
		return world.ElementHuntingGround
	case d <= 12:
		return world.ElementResource
	case d <= 14:
		return world.ElementSecret
	}
	return world.ElementStandard
}
