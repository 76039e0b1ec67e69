package engine

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/talgya/frontier-map/internal/world"
)

// ProgressFunc receives human-readable phase messages during long operations.
type ProgressFunc func(message string)

// RevealAll replaces every placeholder with generated terrain, then stitches
// bridges between every pair of adjacent active sectors. Progress messages go
// to onProgress (which may be nil) and never influence the result.
func (g *Generator) RevealAll(hexes []world.Hex, onProgress ProgressFunc) []world.Hex {
	emit := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		g.log.Debug(msg)
		if onProgress != nil {
			onProgress(msg)
		}
	}

	emit("Starting reveal of the entire map...")

	var placeholders, existing []world.Hex
	for _, h := range hexes {
		if h.IsSectorPlaceholder {
			placeholders = append(placeholders, h)
		} else {
			existing = append(existing, h.Clone())
		}
	}
	emit("Phase 1: Found %s placeholders.", comma(len(placeholders)))

	occ := world.NewOccupancy(existing)
	terrain := terrainIndex(existing)
	pending := make(map[world.HexCoord]bool, len(placeholders))
	for _, p := range placeholders {
		pending[p.Coord] = true
	}

	// A sector is active if it already has terrain or is about to be filled.
	active := make(map[world.SectorCoord]bool)
	var order []world.SectorCoord
	for _, s := range world.SectorGrid(g.cfg.WorldRadius) {
		c := g.sectorCenter(s)
		if pending[c] || g.sectorActive(c, terrain) {
			active[s] = true
			order = append(order, s)
		}
	}
	emit("Phase 1: Identified %s active sector centers.", comma(len(order)))

	var generated []world.Hex
	for _, p := range placeholders {
		generated = append(generated, g.cluster(p.Coord, groupOrUnknown(p), occ)...)
	}
	emit("Phase 2: Generated %s new terrain hexes.", comma(len(generated)))

	var bridges []world.Hex
	for _, s := range order {
		for _, d := range world.ForwardSectorDirections {
			n := s.Add(d)
			if !active[n] {
				continue
			}
			bridges = append(bridges, g.bridge(g.sectorCenter(s), g.sectorCenter(n), occ)...)
		}
	}
	emit("Phase 3: Generated %s bridge hexes.", comma(len(bridges)))

	out := make([]world.Hex, 0, len(existing)+len(generated)+len(bridges))
	out = append(out, existing...)
	out = append(out, generated...)
	out = append(out, bridges...)

	emit("Reveal complete. Map size: %s hexes.", comma(len(out)))
	return out
}

func comma(n int) string {
	return humanize.Comma(int64(n))
}
