package engine

import (
	"math"

	"github.com/talgya/frontier-map/internal/world"
)

// minEffectStrength is the weakest influence still recorded on a hex.
const minEffectStrength = 0.05

// ApplyOverlay spreads an elemental overlay from the sector nearest to target.
// Strength falls off quadratically with distance from that sector's center.
// OverlayNone clears every effect within reach instead. Manual effects of the
// same type are replaced, never duplicated; other effects are left alone.
// An overlay outside the six categories is a no-op.
func (g *Generator) ApplyOverlay(target world.Hex, overlay world.Overlay, hexes []world.Hex) []world.Hex {
	if overlay != world.OverlayNone && !overlay.Valid() {
		return hexes
	}

	anchor := g.NearestSectorCenter(target.Coord)
	out := make([]world.Hex, 0, len(hexes))
	touched := 0

	for _, h := range hexes {
		h = h.Clone()
		strength := EffectStrength(world.Distance(anchor, h.Coord), g.cfg.EffectRadius)
		if strength <= minEffectStrength {
			out = append(out, h)
			continue
		}
		touched++

		if overlay == world.OverlayNone {
			h.Effects = nil
			out = append(out, h)
			continue
		}

		kept := h.Effects[:0]
		for _, e := range h.Effects {
			if e.SourceGroupID == world.ManualSourceID && e.Type == overlay {
				continue
			}
			kept = append(kept, e)
		}
		h.Effects = append(kept, world.Effect{
			SourceGroupID: world.ManualSourceID,
			Type:          overlay,
			Strength:      math.Round(strength*100) / 100,
		})
		out = append(out, h)
	}

	g.log.Debug("overlay applied", "type", string(overlay), "anchor_q", anchor.Q, "anchor_r", anchor.R, "hexes", touched)
	return out
}

// EffectStrength is the quadratic falloff max(0, 1 - (d/radius)²).
func EffectStrength(distance, radius int) float64 {
	if radius <= 0 {
		return 0
	}
	ratio := float64(distance) / float64(radius)
	return math.Max(0, 1-ratio*ratio)
}

// NearestSectorCenter returns the sector center closest to c. It scans the
// whole sector grid, so the cost is O(world radius²) per call.
func (g *Generator) NearestSectorCenter(c world.HexCoord) world.HexCoord {
	best := g.sectorCenter(world.Origin)
	bestDist := world.Distance(best, c)
	for _, s := range world.SectorGrid(g.cfg.WorldRadius) {
		center := g.sectorCenter(s)
		if d := world.Distance(center, c); d < bestDist {
			best, bestDist = center, d
		}
	}
	return best
}
