// Package render turns hex collections into something to look at: blended
// display colors and a staggered true-color terminal map.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/talgya/frontier-map/internal/world"
)

// RGB is an 8-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex formats c as a CSS hex color.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" or "#rgb". Invalid input yields black and an error.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// effectWeight boosts effect strength so weak influence still shows.
const effectWeight = 1.2

// DisplayColor blends a hex's base color with its active effects.
// The base color (override or terrain palette) has weight 1; each effect adds
// its overlay color at weight strength × 1.2.
func DisplayColor(h world.Hex) RGB {
	baseHex := h.Color
	if baseHex == "" {
		baseHex = world.TerrainColors[h.Terrain]
	}
	base, err := ParseHex(baseHex)
	if err != nil {
		base, _ = ParseHex(world.TerrainColors[h.Terrain])
	}

	r, g, b := float64(base.R), float64(base.G), float64(base.B)
	total := 1.0
	for _, e := range h.Effects {
		ec, err := ParseHex(world.OverlayColors[e.Type])
		if err != nil {
			continue
		}
		w := e.Strength * effectWeight
		r += float64(ec.R) * w
		g += float64(ec.G) * w
		b += float64(ec.B) * w
		total += w
	}

	return RGB{
		R: channel(r / total),
		G: channel(g / total),
		B: channel(b / total),
	}
}

func channel(v float64) uint8 {
	return uint8(math.Min(255, math.Round(v)))
}
