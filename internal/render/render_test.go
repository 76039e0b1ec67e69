package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/talgya/frontier-map/internal/world"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
		ok   bool
	}{
		{"#86efac", RGB{0x86, 0xef, 0xac}, true},
		{"1e293b", RGB{0x1e, 0x29, 0x3b}, true},
		{"#fff", RGB{255, 255, 255}, true},
		{"#12345", RGB{}, false},
		{"#zzzzzz", RGB{}, false},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseHex(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if s := (RGB{0x86, 0xef, 0xac}).Hex(); s != "#86efac" {
		t.Errorf("Hex() = %q", s)
	}
}

func TestDisplayColor(t *testing.T) {
	t.Run("no effects uses override", func(t *testing.T) {
		h := world.Hex{Terrain: world.TerrainPlain, Color: "#102030"}
		if got := DisplayColor(h); got != (RGB{0x10, 0x20, 0x30}) {
			t.Errorf("DisplayColor = %v", got)
		}
	})

	t.Run("effects pull toward overlay color", func(t *testing.T) {
		base := world.Hex{Terrain: world.TerrainPlain, Color: "#000000"}
		weak := base
		weak.Effects = []world.Effect{{Type: world.OverlayFrozen, Strength: 0.2}}
		strong := base
		strong.Effects = []world.Effect{{Type: world.OverlayFrozen, Strength: 1}}

		overlay, err := ParseHex(world.OverlayColors[world.OverlayFrozen])
		if err != nil {
			t.Fatal(err)
		}
		w, s := DisplayColor(weak), DisplayColor(strong)
		if overlay.B > 0 && !(s.B > w.B && w.B > 0) {
			t.Errorf("blue channel weak=%d strong=%d, want increasing", w.B, s.B)
		}
		// Strength 1 weighs 1.2 against the base weight of 1.
		want := channel(float64(overlay.B) * 1.2 / 2.2)
		if s.B != want {
			t.Errorf("strong blue = %d, want %d", s.B, want)
		}
	})
}

func TestTerminal_Render(t *testing.T) {
	hexes := []world.Hex{
		{Terrain: world.TerrainPlain, Coord: world.HexCoord{Q: 0, R: 0}},
		{Terrain: world.TerrainWater, Coord: world.HexCoord{Q: 1, R: 0}},
		{Terrain: world.TerrainMountain, Coord: world.HexCoord{Q: 0, R: 1}},
	}
	var buf bytes.Buffer
	if err := (Terminal{}).Render(&buf, hexes); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{"..~~", " /\\"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestTerminal_RenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := (Terminal{}).Render(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "(empty map)\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestSummary(t *testing.T) {
	hexes := []world.Hex{
		{Terrain: world.TerrainPlain},
		{Terrain: world.TerrainPlain},
		{Terrain: world.TerrainForest},
		{Terrain: world.TerrainUnexplored, IsSectorPlaceholder: true},
	}
	var buf bytes.Buffer
	if err := Summary(&buf, hexes); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "4 hexes, 1 unrevealed sectors\n") {
		t.Errorf("summary header: %q", out)
	}
	if strings.Index(out, "Plain") > strings.Index(out, "Forest") {
		t.Errorf("terrain not sorted by count: %q", out)
	}
}
