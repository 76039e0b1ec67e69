package world

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Occupancy tracks which coordinates already hold a record.
// Every insertion path checks it so no two records share a coordinate.
type Occupancy struct {
	set mapset.Set[HexCoord]
}

// NewOccupancy returns an occupancy set seeded with the coordinates of hexes.
func NewOccupancy(hexes []Hex) *Occupancy {
	o := &Occupancy{set: mapset.New[HexCoord]()}
	for _, h := range hexes {
		o.set.Put(h.Coord)
	}
	return o
}

// Has reports whether c is occupied.
func (o *Occupancy) Has(c HexCoord) bool {
	return o.set.Has(c)
}

// Claim marks c as occupied. Returns false if it already was.
func (o *Occupancy) Claim(c HexCoord) bool {
	if o.set.Has(c) {
		return false
	}
	o.set.Put(c)
	return true
}

// Collision describes two records found at the same coordinate.
type Collision struct {
	Coord  HexCoord
	First  string
	Second string
}

func (c Collision) Error() string {
	return fmt.Sprintf("hexes %q and %q both occupy (%d, %d)", c.First, c.Second, c.Coord.Q, c.Coord.R)
}

// Collisions returns every pair of records that share a coordinate.
// An empty result means the collection satisfies the occupancy invariant.
func Collisions(hexes []Hex) []Collision {
	seen := make(map[HexCoord]string, len(hexes))
	var out []Collision
	for _, h := range hexes {
		if first, ok := seen[h.Coord]; ok {
			out = append(out, Collision{Coord: h.Coord, First: first, Second: h.ID})
			continue
		}
		seen[h.Coord] = h.ID
	}
	return out
}

// TerrainCounts returns the distribution of terrain types, excluding
// placeholders and unexplored records.
func TerrainCounts(hexes []Hex) map[Terrain]int {
	counts := make(map[Terrain]int)
	for _, h := range hexes {
		if h.IsSectorPlaceholder || h.Terrain == TerrainUnexplored {
			continue
		}
		counts[h.Terrain]++
	}
	return counts
}
