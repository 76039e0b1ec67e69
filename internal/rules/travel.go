// Package rules holds the travel and exploration tables of the campaign.
// All inputs are closed enums; no function here can fail.
package rules

import (
	"math"

	"github.com/talgya/frontier-map/internal/world"
)

// Speed is the party's base movement speed in feet.
type Speed int

const (
	Speed15 Speed = 15
	Speed20 Speed = 20
	Speed30 Speed = 30
	Speed40 Speed = 40
	Speed50 Speed = 50

	DefaultSpeed = Speed30
)

// Speeds lists the five speed categories, slowest first.
var Speeds = []Speed{Speed15, Speed20, Speed30, Speed40, Speed50}

// Valid reports whether s is one of the five speed categories.
func (s Speed) Valid() bool {
	switch s {
	case Speed15, Speed20, Speed30, Speed40, Speed50:
		return true
	}
	return false
}

// Slower degrades a speed by one category, flooring at 15.
func Slower(s Speed) Speed {
	switch s {
	case Speed50:
		return Speed40
	case Speed40:
		return Speed30
	case Speed30:
		return Speed20
	default:
		return Speed15
	}
}

// travelHours per hex: [Plain, all other terrain].
var travelHours = map[Speed][2]float64{
	Speed15: {11, 16},
	Speed20: {8, 12},
	Speed30: {5, 8},
	Speed40: {4, 6},
	Speed50: {3, 5},
}

// explorationDays per hex: [Plain/Hill, Desert/Forest/Marsh, Mountain].
var explorationDays = map[Speed][3]float64{
	Speed15: {3, 4, 5},
	Speed20: {2, 3, 4},
	Speed30: {1, 2, 3},
	Speed40: {1, 1, 2},
	Speed50: {1, 1, 1},
}

// Stats is the cost of crossing and exploring one hex.
type Stats struct {
	TravelHours     float64 `json:"travelTimeHours"`
	ExplorationDays float64 `json:"explorationTimeDays"`
}

// TravelStats looks up travel and exploration time for one hex.
// Difficult ground treats the party as one speed category slower; settlements
// cut travel by a quarter; secrets hidden in forest take half again as long to find.
func TravelStats(speed Speed, terrain world.Terrain, element world.Element) Stats {
	if !speed.Valid() {
		speed = DefaultSpeed
	}
	if element == world.ElementDifficult {
		speed = Slower(speed)
	}

	travelRow := travelHours[speed]
	travel := travelRow[1]
	if terrain == world.TerrainPlain {
		travel = travelRow[0]
	}
	if terrain == world.TerrainSettlement {
		travel *= 0.75
	}

	exploreRow := explorationDays[speed]
	var explore float64
	switch terrain {
	case world.TerrainPlain, world.TerrainHill:
		explore = exploreRow[0]
	case world.TerrainMountain:
		explore = exploreRow[2]
	default:
		explore = exploreRow[1]
	}
	if element == world.ElementSecret && terrain == world.TerrainForest {
		explore *= 1.5
	}

	return Stats{
		TravelHours:     round1(travel),
		ExplorationDays: round1(explore),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
