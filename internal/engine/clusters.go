package engine

import (
	"math"

	"github.com/talgya/frontier-map/internal/entropy"
	"github.com/talgya/frontier-map/internal/rules"
	"github.com/talgya/frontier-map/internal/world"
)

// Placeholder drawing scale relative to HexSize: a flat-top hex wide enough
// to cover a pointy-top cluster of SectorSize, padded in to its jagged edge.
const placeholderPad = 0.85

// ClusterSummary describes one group of hexes.
type ClusterSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Clusters summarizes the collection by group, in order of first appearance.
// A group is named after the notes of its first hex.
func Clusters(hexes []world.Hex) []ClusterSummary {
	pos := make(map[string]int)
	var out []ClusterSummary
	for _, h := range hexes {
		if h.GroupID == "" {
			continue
		}
		i, ok := pos[h.GroupID]
		if !ok {
			name := h.Notes
			if name == "" {
				name = h.GroupID
			}
			pos[h.GroupID] = len(out)
			out = append(out, ClusterSummary{ID: h.GroupID, Name: name})
			i = len(out) - 1
		}
		out[i].Count++
	}
	return out
}

// RemoveCluster drops every hex of a group.
func RemoveCluster(groupID string, hexes []world.Hex) []world.Hex {
	out := make([]world.Hex, 0, len(hexes))
	for _, h := range hexes {
		if h.GroupID == groupID {
			continue
		}
		out = append(out, h.Clone())
	}
	return out
}

// Retime recomputes travel and exploration time for a new party speed.
// Placeholders keep their zero stats.
func Retime(hexes []world.Hex, speed rules.Speed) []world.Hex {
	out := make([]world.Hex, 0, len(hexes))
	for _, h := range hexes {
		h = h.Clone()
		if !h.IsSectorPlaceholder {
			stats := rules.TravelStats(speed, h.Terrain, h.Element)
			h.TravelTimeHours = stats.TravelHours
			h.ExplorationTimeDays = stats.ExplorationDays
		}
		out = append(out, h)
	}
	return out
}

// TerrainLayout is the pointy-top layout terrain hexes are drawn with.
func (g *Generator) TerrainLayout() world.Layout {
	return world.Layout{Orientation: world.PointyTop, Size: g.cfg.HexSize}
}

// PlaceholderLayout is the flat-top layout of a placeholder tile, local to
// its own center.
func (g *Generator) PlaceholderLayout() world.Layout {
	scale := float64(g.cfg.SectorSize) * math.Sqrt(3) * placeholderPad
	return world.Layout{Orientation: world.FlatTop, Size: g.cfg.HexSize * scale}
}

// HexAtPixel hit-tests a map-space pixel. Terrain hexes win; otherwise the
// placeholder whose flat-top tile contains the point is returned.
func (g *Generator) HexAtPixel(p world.Point, hexes []world.Hex) (world.Hex, bool) {
	terrainLayout := g.TerrainLayout()
	c := terrainLayout.FromPixel(p)

	for _, h := range hexes {
		if !h.IsSectorPlaceholder && h.Coord == c {
			return h, true
		}
	}

	flat := g.PlaceholderLayout()
	for _, h := range hexes {
		if !h.IsSectorPlaceholder {
			continue
		}
		center := terrainLayout.ToPixel(h.Coord)
		local := world.Point{X: p.X - center.X, Y: p.Y - center.Y}
		if flat.FromPixel(local) == (world.HexCoord{}) {
			return h, true
		}
	}
	return world.Hex{}, false
}

// PlaceRandomHex adds one hand-rolled hex next to near (or near the origin
// when near is nil), using the d20 terrain and element tables.
// The new hex joins near's group.
func (g *Generator) PlaceRandomHex(near *world.Hex, hexes []world.Hex) []world.Hex {
	occ := world.NewOccupancy(hexes)
	start := world.HexCoord{}
	previous := world.Terrain("")
	groupID := ""
	if near != nil {
		start = near.Coord
		previous = near.Terrain
		groupID = near.GroupID
	}

	c := unoccupiedNear(start, occ, g.dice)
	terrain := rules.RandomTerrain(g.dice, previous)
	element := rules.RandomElement(g.dice)
	stats := rules.TravelStats(g.cfg.PartySpeed, terrain, element)

	out := clone(hexes, 1)
	return append(out, world.Hex{
		ID:                  world.HexID(c),
		GroupID:             groupID,
		Terrain:             terrain,
		Element:             element,
		TravelTimeHours:     stats.TravelHours,
		ExplorationTimeDays: stats.ExplorationDays,
		Coord:               c,
		IsExplored:          true,
	})
}

// unoccupiedNear picks a random free neighbor of start, falling back to a
// breadth-first search outward for the nearest free coordinate.
func unoccupiedNear(start world.HexCoord, occ *world.Occupancy, src entropy.Source) world.HexCoord {
	if !occ.Has(start) {
		return start
	}

	var free []world.HexCoord
	for _, n := range start.Neighbors() {
		if !occ.Has(n) {
			free = append(free, n)
		}
	}
	if len(free) > 0 {
		i := int(src.Float() * float64(len(free)))
		return free[min(i, len(free)-1)]
	}

	visited := map[world.HexCoord]bool{start: true}
	queue := []world.HexCoord{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range cur.Neighbors() {
			if visited[n] {
				continue
			}
			if !occ.Has(n) {
				return n
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return start
}

// Validate reports occupancy violations in a collection.
func Validate(hexes []world.Hex) []world.Collision {
	return world.Collisions(hexes)
}
