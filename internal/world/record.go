package world

import (
	"fmt"

	"github.com/google/uuid"
)

// Terrain is the terrain category of a hex.
type Terrain string

const (
	TerrainForest     Terrain = "Forest"
	TerrainHill       Terrain = "Hill"
	TerrainMarsh      Terrain = "Marsh"
	TerrainMountain   Terrain = "Mountain"
	TerrainPlain      Terrain = "Plain"
	TerrainSettlement Terrain = "Settlement"
	TerrainWater      Terrain = "Water"
	TerrainDesert     Terrain = "Desert"
	TerrainUnexplored Terrain = "Unexplored" // Sector placeholders only
)

// Terrains lists every terrain category in display order.
var Terrains = []Terrain{
	TerrainForest, TerrainHill, TerrainMarsh, TerrainMountain, TerrainPlain,
	TerrainSettlement, TerrainWater, TerrainDesert, TerrainUnexplored,
}

// Valid reports whether t is a known terrain category.
func (t Terrain) Valid() bool {
	switch t {
	case TerrainForest, TerrainHill, TerrainMarsh, TerrainMountain, TerrainPlain,
		TerrainSettlement, TerrainWater, TerrainDesert, TerrainUnexplored:
		return true
	}
	return false
}

// Habitable reports whether settlements and features may appear on t.
func (t Terrain) Habitable() bool {
	return t != TerrainMountain && t != TerrainWater
}

// Element is a sub-feature of a hex, independent of its terrain.
type Element string

const (
	ElementDifficult     Element = "Difficult"
	ElementFeature       Element = "Feature"
	ElementHuntingGround Element = "Hunting Ground"
	ElementResource      Element = "Resource"
	ElementSecret        Element = "Secret"
	ElementStandard      Element = "Standard"
)

// Valid reports whether e is a known element tag.
func (e Element) Valid() bool {
	switch e {
	case ElementDifficult, ElementFeature, ElementHuntingGround,
		ElementResource, ElementSecret, ElementStandard:
		return true
	}
	return false
}

// Overlay is an elemental overlay category.
type Overlay string

const (
	OverlayNone     Overlay = "" // Clears effects when applied
	OverlayInfernal Overlay = "Infernal"
	OverlayFrozen   Overlay = "Frozen"
	OverlayNecrotic Overlay = "Necrotic"
	OverlayVerdant  Overlay = "Verdant"
	OverlayStorm    Overlay = "Storm"
	OverlayArcane   Overlay = "Arcane"
)

// Overlays lists the six overlay categories.
var Overlays = []Overlay{
	OverlayInfernal, OverlayFrozen, OverlayNecrotic, OverlayVerdant, OverlayStorm, OverlayArcane,
}

// Valid reports whether o is one of the six overlay categories.
// OverlayNone is not valid as an effect type.
func (o Overlay) Valid() bool {
	switch o {
	case OverlayInfernal, OverlayFrozen, OverlayNecrotic, OverlayVerdant, OverlayStorm, OverlayArcane:
		return true
	}
	return false
}

// Group identifiers that are not sectors.
const (
	BridgeGroupID  = "BRIDGE"
	ManualSourceID = "MANUAL" // Source of effects applied by hand
	UnknownGroupID = "UNKNOWN"
)

// Effect is an elemental influence attached to a hex.
type Effect struct {
	SourceGroupID string  `json:"sourceGroupId"`
	Type          Overlay `json:"type"`
	Strength      float64 `json:"strength"` // 0.0 to 1.0
}

// Hex is a single map record: real terrain, a bridge, or a sector placeholder.
type Hex struct {
	ID                  string   `json:"id"`
	GroupID             string   `json:"groupId,omitempty"`
	Terrain             Terrain  `json:"terrain"`
	Element             Element  `json:"element"`
	Description         string   `json:"description,omitempty"`
	TravelTimeHours     float64  `json:"travelTimeHours"`
	ExplorationTimeDays float64  `json:"explorationTimeDays"`
	Coord               HexCoord `json:"coordinates"`
	IsExplored          bool     `json:"isExplored"`
	Notes               string   `json:"notes"`
	Color               string   `json:"color,omitempty"` // CSS hex color override
	Icon                string   `json:"icon,omitempty"`  // SVG path override
	IsSectorPlaceholder bool     `json:"isSectorPlaceholder,omitempty"`
	Effects             []Effect `json:"effects,omitempty"`
}

// Clone returns a copy of h that shares no memory with it.
func (h Hex) Clone() Hex {
	if h.Effects != nil {
		h.Effects = append([]Effect(nil), h.Effects...)
	}
	return h
}

// hexNamespace scopes the name-based UUIDs of terrain hexes.
var hexNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("frontier-map/hex"))

// HexID returns the stable identifier of the terrain hex at c.
// The same coordinate always yields the same identifier.
func HexID(c HexCoord) string {
	return uuid.NewSHA1(hexNamespace, []byte(fmt.Sprintf("%d,%d", c.Q, c.R))).String()
}
