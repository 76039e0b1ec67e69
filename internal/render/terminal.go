package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gookit/color"

	"github.com/talgya/frontier-map/internal/world"
)

// Two-character glyphs per terrain.
var glyphs = map[world.Terrain]string{
	world.TerrainForest:     "^^",
	world.TerrainHill:       "nn",
	world.TerrainMarsh:      "~,",
	world.TerrainMountain:   "/\\",
	world.TerrainPlain:      "..",
	world.TerrainSettlement: "[]",
	world.TerrainWater:      "~~",
	world.TerrainDesert:     "::",
	world.TerrainUnexplored: "??",
}

// Terminal draws a collection as staggered rows of two-character cells.
// Row r is shifted right by r cells so pointy-top neighbors line up.
type Terminal struct {
	Color bool // Emit 24-bit color escapes
}

// Render writes the map to w.
func (t Terminal) Render(w io.Writer, hexes []world.Hex) error {
	if len(hexes) == 0 {
		_, err := fmt.Fprintln(w, "(empty map)")
		return err
	}

	minX, maxX := 0, 0
	minR, maxR := 0, 0
	for i, h := range hexes {
		x := 2*h.Coord.Q + h.Coord.R
		if i == 0 || x < minX {
			minX = x
		}
		if i == 0 || x > maxX {
			maxX = x
		}
		if i == 0 || h.Coord.R < minR {
			minR = h.Coord.R
		}
		if i == 0 || h.Coord.R > maxR {
			maxR = h.Coord.R
		}
	}

	width := maxX - minX + 2
	rows := make([][]string, maxR-minR+1)
	for i := range rows {
		rows[i] = make([]string, width)
		for j := range rows[i] {
			rows[i][j] = " "
		}
	}

	for _, h := range hexes {
		row := rows[h.Coord.R-minR]
		x := 2*h.Coord.Q + h.Coord.R - minX
		row[x] = t.cell(h)
		row[x+1] = ""
	}

	for _, row := range rows {
		line := strings.TrimRight(strings.Join(row, ""), " ")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (t Terminal) cell(h world.Hex) string {
	g, ok := glyphs[h.Terrain]
	if !ok {
		g = "  "
	}
	if !t.Color {
		return g
	}
	bg := DisplayColor(h)
	style := color.NewRGBStyle(color.RGB(240, 240, 240), color.RGB(bg.R, bg.G, bg.B))
	return style.Sprint(g)
}

// Summary writes the terrain distribution and group counts.
func Summary(w io.Writer, hexes []world.Hex) error {
	counts := world.TerrainCounts(hexes)
	placeholders := 0
	for _, h := range hexes {
		if h.IsSectorPlaceholder {
			placeholders++
		}
	}

	if _, err := fmt.Fprintf(w, "%s hexes, %s unrevealed sectors\n",
		humanize.Comma(int64(len(hexes))), humanize.Comma(int64(placeholders))); err != nil {
		return err
	}

	terrains := make([]world.Terrain, 0, len(counts))
	for t := range counts {
		terrains = append(terrains, t)
	}
	sort.Slice(terrains, func(i, j int) bool {
		if counts[terrains[i]] != counts[terrains[j]] {
			return counts[terrains[i]] > counts[terrains[j]]
		}
		return terrains[i] < terrains[j]
	})
	for _, t := range terrains {
		if _, err := fmt.Fprintf(w, "  %-10s %2s %s\n", t, glyphs[t], humanize.Comma(int64(counts[t]))); err != nil {
			return err
		}
	}
	return nil
}
