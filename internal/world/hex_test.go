package world

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestLayout_PixelRoundTrip(t *testing.T) {
	for _, layout := range []Layout{
		{Orientation: PointyTop, Size: 50},
		{Orientation: FlatTop, Size: 50 * 4 * 1.732 * 0.85},
		{Orientation: PointyTop, Size: 1},
	} {
		for _, c := range Disc(HexCoord{Q: 3, R: -7}, 8) {
			got := layout.FromPixel(layout.ToPixel(c))
			if got != c {
				t.Errorf("orientation %d size %.1f: FromPixel(ToPixel(%v)) = %v", layout.Orientation, layout.Size, c, got)
			}
		}
	}
}

func TestLayout_FromPixelNearCenter(t *testing.T) {
	layout := Layout{Orientation: PointyTop, Size: 50}
	center := layout.ToPixel(HexCoord{Q: 2, R: 1})
	// A point well inside the hex (less than the inner radius away) maps back to it.
	p := Point{X: center.X + 20, Y: center.Y - 15}
	if got := layout.FromPixel(p); got != (HexCoord{Q: 2, R: 1}) {
		t.Errorf("FromPixel(%v) = %v, want (2, 1)", p, got)
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b HexCoord
		want int
	}{
		{HexCoord{}, HexCoord{}, 0},
		{HexCoord{}, HexCoord{Q: 1}, 1},
		{HexCoord{}, HexCoord{Q: 3, R: -3}, 3},
		{HexCoord{}, HexCoord{Q: 5, R: 5}, 10},
		{HexCoord{Q: -2, R: 4}, HexCoord{Q: 1, R: -1}, 5},
	}
	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := Distance(tt.b, tt.a); got != tt.want {
			t.Errorf("Distance(%v, %v) = %d, want %d (symmetry)", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestDistance_MetricProperties(t *testing.T) {
	coords := Disc(HexCoord{}, 6)
	for _, a := range coords {
		for _, b := range coords {
			ab := Distance(a, b)
			if (ab == 0) != (a == b) {
				t.Fatalf("Distance(%v, %v) = %d", a, b, ab)
			}
			for _, c := range coords {
				if ac := Distance(a, c); ac > ab+Distance(b, c) {
					t.Fatalf("triangle inequality: d(%v,%v)=%d > d(%v,%v)+d(%v,%v)=%d",
						a, c, ac, a, b, b, c, ab+Distance(b, c))
				}
			}
		}
	}
}

func TestNeighbors_AreAdjacent(t *testing.T) {
	c := HexCoord{Q: 4, R: -2}
	seen := map[HexCoord]bool{}
	for _, n := range c.Neighbors() {
		if d := Distance(c, n); d != 1 {
			t.Errorf("neighbor %v at distance %d", n, d)
		}
		seen[n] = true
	}
	if len(seen) != 6 {
		t.Errorf("expected 6 distinct neighbors, got %d", len(seen))
	}
}

func TestLine(t *testing.T) {
	t.Run("excludes endpoints", func(t *testing.T) {
		a, b := HexCoord{}, HexCoord{Q: 5, R: 5}
		line := Line(a, b)
		if len(line) != Distance(a, b)-1 {
			t.Fatalf("len(Line) = %d, want %d", len(line), Distance(a, b)-1)
		}
		prev := a
		for _, c := range line {
			if c == a || c == b {
				t.Errorf("line contains endpoint %v", c)
			}
			if Distance(prev, c) != 1 {
				t.Errorf("line step %v -> %v is not adjacent", prev, c)
			}
			prev = c
		}
		if Distance(prev, b) != 1 {
			t.Errorf("last line hex %v is not adjacent to %v", prev, b)
		}
	})

	t.Run("short lines are empty", func(t *testing.T) {
		if got := Line(HexCoord{}, HexCoord{}); len(got) != 0 {
			t.Errorf("Line(equal) = %v, want empty", got)
		}
		if got := Line(HexCoord{}, HexCoord{Q: 1}); len(got) != 0 {
			t.Errorf("Line(adjacent) = %v, want empty", got)
		}
	})
}

func TestDisc(t *testing.T) {
	for r := 0; r <= 6; r++ {
		center := HexCoord{Q: -3, R: 2}
		disc := Disc(center, r)
		if want := 1 + 3*r*(r+1); len(disc) != want {
			t.Errorf("radius %d: %d hexes, want %d", r, len(disc), want)
		}
		seen := map[HexCoord]bool{}
		for _, c := range disc {
			if Distance(center, c) > r {
				t.Errorf("radius %d: %v is outside", r, c)
			}
			if seen[c] {
				t.Errorf("radius %d: duplicate %v", r, c)
			}
			seen[c] = true
		}
	}
	if got := Disc(HexCoord{}, -1); got != nil {
		t.Errorf("Disc(negative) = %v, want nil", got)
	}
}

func TestSectorCenter_NeighborsTenApart(t *testing.T) {
	origin := SectorCenter(Origin, 5)
	if origin != (HexCoord{}) {
		t.Fatalf("origin sector center = %v", origin)
	}
	for _, d := range SectorDirections() {
		c := SectorCenter(d, 5)
		if got := Distance(origin, c); got != 10 {
			t.Errorf("sector %v center %v at distance %d, want 10", d, c, got)
		}
	}
	if got := SectorCenter(SectorCoord{SQ: 1, SR: 0}, 5); got != (HexCoord{Q: 5, R: 5}) {
		t.Errorf("SectorCenter(1,0) = %v, want (5, 5)", got)
	}
}

func TestSectorGrid(t *testing.T) {
	if got := len(SectorGrid(6)); got != 127 {
		t.Errorf("len(SectorGrid(6)) = %d, want 127", got)
	}
	for _, s := range SectorGrid(3) {
		if SectorDistance(Origin, s) > 3 {
			t.Errorf("sector %v outside radius 3", s)
		}
	}
}

func TestForwardSectorDirections_CoverEachPairOnce(t *testing.T) {
	all := map[SectorCoord]bool{}
	for _, d := range SectorDirections() {
		all[d] = true
	}
	for _, f := range ForwardSectorDirections {
		if !all[f] {
			t.Errorf("forward direction %v is not a neighbor offset", f)
		}
		opposite := SectorCoord{SQ: -f.SQ, SR: -f.SR}
		for _, g := range ForwardSectorDirections {
			if g == opposite {
				t.Errorf("forward directions contain both %v and %v", f, g)
			}
		}
	}
}

func TestSectorIDs(t *testing.T) {
	s := SectorCoord{SQ: -1, SR: 2}
	if got := s.GroupID(); got != "SECTOR--1-2" {
		t.Errorf("GroupID = %q", got)
	}
	if got := s.PlaceholderID(); got != "PLACEHOLDER--1_2" {
		t.Errorf("PlaceholderID = %q", got)
	}
}

func TestHex_JSONFieldNames(t *testing.T) {
	h := Hex{
		ID:      "abc",
		Terrain: TerrainPlain,
		Element: ElementStandard,
		Coord:   HexCoord{Q: 1, R: -2},
		Effects: []Effect{{SourceGroupID: ManualSourceID, Type: OverlayFrozen, Strength: 0.5}},
	}
	data, err := json.Marshal(h)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, want := range []string{
		`"coordinates":{"x":1,"y":-2}`,
		`"travelTimeHours":0`,
		`"explorationTimeDays":0`,
		`"isExplored":false`,
		`"sourceGroupId":"MANUAL"`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON %s missing %s", s, want)
		}
	}
	if strings.Contains(s, "isSectorPlaceholder") {
		t.Errorf("JSON %s should omit false isSectorPlaceholder", s)
	}
}

func TestHex_CloneIsIndependent(t *testing.T) {
	h := Hex{Effects: []Effect{{Type: OverlayStorm, Strength: 1}}}
	c := h.Clone()
	c.Effects[0].Strength = 0.1
	if h.Effects[0].Strength != 1 {
		t.Error("modifying clone changed original effects")
	}
}

func TestHexID_StablePerCoordinate(t *testing.T) {
	a := HexID(HexCoord{Q: 1, R: 2})
	if a != HexID(HexCoord{Q: 1, R: 2}) {
		t.Error("HexID is not stable")
	}
	if a == HexID(HexCoord{Q: 2, R: 1}) {
		t.Error("HexID collides for different coordinates")
	}
}
