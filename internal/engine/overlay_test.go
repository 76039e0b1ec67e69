package engine

import (
	"math"
	"testing"

	"github.com/talgya/frontier-map/internal/world"
)

func TestEffectStrength(t *testing.T) {
	tests := []struct {
		d, radius int
		want      float64
	}{
		{0, 12, 1},
		{6, 12, 0.75},
		{12, 12, 0},
		{20, 12, 0},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := EffectStrength(tt.d, tt.radius); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("EffectStrength(%d, %d) = %f, want %f", tt.d, tt.radius, got, tt.want)
		}
	}

	prev := 2.0
	for d := 0; d <= 12; d++ {
		s := EffectStrength(d, 12)
		if s > prev {
			t.Errorf("strength increased from %f to %f at distance %d", prev, s, d)
		}
		prev = s
	}
}

func hexAt(hexes []world.Hex, c world.HexCoord) (world.Hex, bool) {
	for _, h := range hexes {
		if h.Coord == c {
			return h, true
		}
	}
	return world.Hex{}, false
}

func TestApplyOverlay(t *testing.T) {
	g := newTestGenerator(SmallTestConfig())
	hexes := g.InitializeWorld()
	origin, _ := hexAt(hexes, world.HexCoord{})

	got := g.ApplyOverlay(origin, world.OverlayInfernal, hexes)

	center, _ := hexAt(got, world.HexCoord{})
	if len(center.Effects) != 1 {
		t.Fatalf("center effects = %+v", center.Effects)
	}
	e := center.Effects[0]
	if e.Type != world.OverlayInfernal || e.Strength != 1 || e.SourceGroupID != world.ManualSourceID {
		t.Errorf("center effect = %+v", e)
	}

	// Placeholder centers sit at distance 10: 1 - (10/12)² rounds to 0.31.
	ph, _ := hexAt(got, world.HexCoord{Q: 5, R: 5})
	if len(ph.Effects) != 1 || ph.Effects[0].Strength != 0.31 {
		t.Errorf("placeholder effects = %+v", ph.Effects)
	}

	for _, h := range hexes {
		if len(h.Effects) != 0 {
			t.Fatal("ApplyOverlay modified its input")
		}
	}
}

func TestApplyOverlay_SkipsOutOfReach(t *testing.T) {
	cfg := SmallTestConfig()
	cfg.EffectRadius = 3
	g := newTestGenerator(cfg)
	hexes := g.InitializeWorld()
	origin, _ := hexAt(hexes, world.HexCoord{})

	got := g.ApplyOverlay(origin, world.OverlayFrozen, hexes)
	for _, h := range got {
		d := world.Distance(world.HexCoord{}, h.Coord)
		// Distance 3 of radius 3 is zero strength; nothing past it is touched.
		if d >= 3 && len(h.Effects) != 0 {
			t.Errorf("hex %v at distance %d has effects %+v", h.Coord, d, h.Effects)
		}
		if d < 3 && len(h.Effects) != 1 {
			t.Errorf("hex %v at distance %d has %d effects", h.Coord, d, len(h.Effects))
		}
	}
}

func TestApplyOverlay_ReplacesAndStacks(t *testing.T) {
	g := newTestGenerator(SmallTestConfig())
	hexes := g.InitializeWorld()
	origin, _ := hexAt(hexes, world.HexCoord{})

	hexes = g.ApplyOverlay(origin, world.OverlayStorm, hexes)
	hexes = g.ApplyOverlay(origin, world.OverlayStorm, hexes)
	center, _ := hexAt(hexes, world.HexCoord{})
	if len(center.Effects) != 1 {
		t.Fatalf("same overlay twice gave %d effects", len(center.Effects))
	}

	hexes = g.ApplyOverlay(origin, world.OverlayVerdant, hexes)
	center, _ = hexAt(hexes, world.HexCoord{})
	if len(center.Effects) != 2 {
		t.Fatalf("two overlays gave %d effects", len(center.Effects))
	}

	hexes = g.ApplyOverlay(origin, world.OverlayNone, hexes)
	for _, h := range hexes {
		if world.Distance(world.HexCoord{}, h.Coord) < 12 && h.Effects != nil {
			t.Errorf("hex %v kept effects after clear: %+v", h.Coord, h.Effects)
		}
	}
}

func TestApplyOverlay_KeepsForeignEffects(t *testing.T) {
	g := newTestGenerator(SmallTestConfig())
	hexes := g.InitializeWorld()
	for i := range hexes {
		if hexes[i].Coord == (world.HexCoord{}) {
			hexes[i].Effects = []world.Effect{{SourceGroupID: "SECTOR-0-0", Type: world.OverlayArcane, Strength: 0.4}}
		}
	}
	origin, _ := hexAt(hexes, world.HexCoord{})

	got := g.ApplyOverlay(origin, world.OverlayArcane, hexes)
	center, _ := hexAt(got, world.HexCoord{})
	if len(center.Effects) != 2 {
		t.Errorf("effects = %+v, want sector effect plus manual effect", center.Effects)
	}
}

func TestApplyOverlay_InvalidIsNoop(t *testing.T) {
	g := newTestGenerator(SmallTestConfig())
	hexes := g.InitializeWorld()
	got := g.ApplyOverlay(hexes[0], world.Overlay("Radiant"), hexes)
	for _, h := range got {
		if len(h.Effects) != 0 {
			t.Fatal("unknown overlay added effects")
		}
	}
}

func TestNearestSectorCenter(t *testing.T) {
	g := newTestGenerator(SmallTestConfig())
	tests := []struct {
		in, want world.HexCoord
	}{
		{world.HexCoord{}, world.HexCoord{}},
		{world.HexCoord{Q: 1, R: 1}, world.HexCoord{}},
		{world.HexCoord{Q: 5, R: 4}, world.HexCoord{Q: 5, R: 5}},
		{world.HexCoord{Q: -5, R: 9}, world.HexCoord{Q: -5, R: 10}},
	}
	for _, tt := range tests {
		if got := g.NearestSectorCenter(tt.in); got != tt.want {
			t.Errorf("NearestSectorCenter(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
