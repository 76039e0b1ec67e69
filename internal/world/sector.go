package world

import "fmt"

// SectorCoord is a position on the sector grid. Sectors tile the map as
// flat-top super-hexes, so the grid uses the same axial math as hexes.
type SectorCoord struct {
	SQ int `json:"sq"`
	SR int `json:"sr"`
}

// Origin is the sector generated at world initialization.
var Origin = SectorCoord{}

// SectorCenter maps a sector grid position to the axial coordinate of its
// center hex. The basis (k, k) / (-k, 2k) places every grid neighbor at hex
// distance 2k, which is what lets radius-(k-1) clusters tile with a one-hex seam
// that bridges fill.
func SectorCenter(s SectorCoord, spacing int) HexCoord {
	return HexCoord{
		Q: spacing * (s.SQ - s.SR),
		R: spacing * (s.SQ + 2*s.SR),
	}
}

// SectorDistance is the hex distance between two sector grid positions.
func SectorDistance(a, b SectorCoord) int {
	return Distance(HexCoord{Q: a.SQ, R: a.SR}, HexCoord{Q: b.SQ, R: b.SR})
}

// SectorGrid lists every sector within radius of the origin sector,
// ordered by sq then sr.
func SectorGrid(radius int) []SectorCoord {
	coords := Disc(HexCoord{}, radius)
	grid := make([]SectorCoord, len(coords))
	for i, c := range coords {
		grid[i] = SectorCoord{SQ: c.Q, SR: c.R}
	}
	return grid
}

// SectorDirections are the six sector grid neighbor offsets.
func SectorDirections() [6]SectorCoord {
	var dirs [6]SectorCoord
	for i, d := range Directions {
		dirs[i] = SectorCoord{SQ: d.Q, SR: d.R}
	}
	return dirs
}

// ForwardSectorDirections is half of SectorDirections: one direction per
// undirected neighbor pair, so walking it from every sector visits each edge once.
var ForwardSectorDirections = [3]SectorCoord{
	{SQ: 1, SR: 0},
	{SQ: 0, SR: 1},
	{SQ: 1, SR: -1},
}

// Add returns the component-wise sum of two sector coordinates.
func (s SectorCoord) Add(o SectorCoord) SectorCoord {
	return SectorCoord{SQ: s.SQ + o.SQ, SR: s.SR + o.SR}
}

// GroupID is the group identifier shared by every hex of this sector.
func (s SectorCoord) GroupID() string {
	return fmt.Sprintf("SECTOR-%d-%d", s.SQ, s.SR)
}

// PlaceholderID is the hex identifier of this sector's placeholder.
func (s SectorCoord) PlaceholderID() string {
	return fmt.Sprintf("PLACEHOLDER-%d_%d", s.SQ, s.SR)
}

func (s SectorCoord) String() string {
	return fmt.Sprintf("(%d, %d)", s.SQ, s.SR)
}
