package engine

import (
	"github.com/talgya/frontier-map/internal/world"
)

// InitializeWorld generates the origin sector and one placeholder for every
// other sector within the world radius.
func (g *Generator) InitializeWorld() []world.Hex {
	occ := world.NewOccupancy(nil)
	hexes := g.cluster(g.sectorCenter(world.Origin), world.Origin.GroupID(), occ)

	for _, s := range world.SectorGrid(g.cfg.WorldRadius) {
		if s == world.Origin {
			continue
		}
		ph := g.placeholderHex(s)
		if !occ.Claim(ph.Coord) {
			continue
		}
		hexes = append(hexes, ph)
	}

	g.log.Debug("world initialized", "hexes", len(hexes), "world_radius", g.cfg.WorldRadius)
	return hexes
}

// RevealSector replaces a placeholder with its sector's terrain and stitches
// bridges to every neighboring sector that is already revealed.
// Anything other than a placeholder present in hexes is a no-op.
func (g *Generator) RevealSector(placeholder world.Hex, hexes []world.Hex) []world.Hex {
	if !placeholder.IsSectorPlaceholder || !containsPlaceholder(hexes, placeholder) {
		return hexes
	}

	out := make([]world.Hex, 0, len(hexes)+2*len(world.Disc(world.HexCoord{}, g.cfg.SectorSize)))
	for _, h := range hexes {
		if h.ID == placeholder.ID {
			continue
		}
		out = append(out, h.Clone())
	}

	occ := world.NewOccupancy(out)
	center := placeholder.Coord
	sector := g.cluster(center, groupOrUnknown(placeholder), occ)
	out = append(out, sector...)

	terrain := terrainIndex(out)
	var bridges []world.Hex
	for _, d := range world.SectorDirections() {
		neighbor := center.Add(g.sectorCenter(d))
		if !g.sectorActive(neighbor, terrain) {
			continue
		}
		bridges = append(bridges, g.bridge(center, neighbor, occ)...)
	}

	g.log.Debug("sector revealed",
		"group", placeholder.GroupID,
		"terrain_hexes", len(sector),
		"bridge_hexes", len(bridges),
	)
	return append(out, bridges...)
}

// sectorActive reports whether any revealed terrain lies within sector
// radius of center.
func (g *Generator) sectorActive(center world.HexCoord, terrain map[world.HexCoord]bool) bool {
	for _, c := range world.Disc(center, g.cfg.SectorSize) {
		if terrain[c] {
			return true
		}
	}
	return false
}

// terrainIndex returns the coordinates holding non-placeholder records.
func terrainIndex(hexes []world.Hex) map[world.HexCoord]bool {
	idx := make(map[world.HexCoord]bool, len(hexes))
	for _, h := range hexes {
		if !h.IsSectorPlaceholder {
			idx[h.Coord] = true
		}
	}
	return idx
}

func containsPlaceholder(hexes []world.Hex, placeholder world.Hex) bool {
	for _, h := range hexes {
		if h.ID == placeholder.ID && h.IsSectorPlaceholder {
			return true
		}
	}
	return false
}
