// Package world provides the hex grid geometry, the hex record data model,
// and biome synthesis for the frontier map.
// Uses axial coordinates (q, r) for every hex, in two orientations.
package world

import (
	"math"

	"golang.org/x/exp/constraints"
)

// HexCoord represents a position on the hex grid using axial coordinates.
// The third cube coordinate s is derived: s = -q - r.
// On the wire the pair is written as {"x": q, "y": r}.
type HexCoord struct {
	Q int `json:"x"`
	R int `json:"y"`
}

// S returns the implicit third cube coordinate.
func (h HexCoord) S() int {
	return -h.Q - h.R
}

// Add returns the component-wise sum of two coordinates.
func (h HexCoord) Add(o HexCoord) HexCoord {
	return HexCoord{Q: h.Q + o.Q, R: h.R + o.R}
}

// Orientation selects which of the two projections a layout uses.
type Orientation uint8

const (
	PointyTop Orientation = iota // Terrain hexes
	FlatTop                      // Sector placeholders
)

// Point is a position in pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout pairs an orientation with a hex size (center-to-corner pixel radius).
type Layout struct {
	Orientation Orientation
	Size        float64
}

// ToPixel converts an axial coordinate to the pixel position of its center.
func (l Layout) ToPixel(h HexCoord) Point {
	q, r := float64(h.Q), float64(h.R)
	if l.Orientation == FlatTop {
		return Point{
			X: l.Size * 1.5 * q,
			Y: l.Size * math.Sqrt(3) * (r + q/2),
		}
	}
	return Point{
		X: l.Size * math.Sqrt(3) * (q + r/2),
		Y: l.Size * 1.5 * r,
	}
}

// FromPixel converts a pixel position to the axial coordinate of the hex containing it.
func (l Layout) FromPixel(p Point) HexCoord {
	q, r := l.FractionalFromPixel(p)
	return AxialRound(q, r)
}

// FractionalFromPixel applies the inverse projection without rounding.
func (l Layout) FractionalFromPixel(p Point) (float64, float64) {
	if l.Orientation == FlatTop {
		q := (2.0 / 3.0 * p.X) / l.Size
		r := (-1.0/3.0*p.X + math.Sqrt(3)/3.0*p.Y) / l.Size
		return q, r
	}
	q := (math.Sqrt(3)/3.0*p.X - 1.0/3.0*p.Y) / l.Size
	r := (2.0 / 3.0 * p.Y) / l.Size
	return q, r
}

// AxialRound snaps a fractional axial coordinate to the nearest hex.
// Both components are rounded, then the one with the larger remainder is
// re-snapped so the implied s component stays consistent.
func AxialRound(fq, fr float64) HexCoord {
	qg := math.Round(fq)
	rg := math.Round(fr)
	qrem := fq - qg
	rrem := fr - rg
	if math.Abs(qrem) >= math.Abs(rrem) {
		return HexCoord{Q: int(qg + math.Round(qrem+0.5*rrem)), R: int(rg)}
	}
	return HexCoord{Q: int(qg), R: int(rg + math.Round(rrem+0.5*qrem))}
}

// Directions defines the six neighbor offsets in axial coordinates.
var Directions = [6]HexCoord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent hex coordinates.
func (h HexCoord) Neighbors() [6]HexCoord {
	var result [6]HexCoord
	for i, dir := range Directions {
		result[i] = h.Add(dir)
	}
	return result
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b HexCoord) int {
	dq := a.Q - b.Q
	dr := a.R - b.R
	return (abs(dq) + abs(dq+dr) + abs(dr)) / 2
}

// Line returns the hexes strictly between start and end, ordered from start.
// Adjacent or equal endpoints yield an empty line.
func Line(start, end HexCoord) []HexCoord {
	dist := Distance(start, end)
	if dist <= 1 {
		return nil
	}
	line := make([]HexCoord, 0, dist-1)
	for i := 1; i < dist; i++ {
		t := float64(i) / float64(dist)
		q := float64(start.Q) + float64(end.Q-start.Q)*t
		r := float64(start.R) + float64(end.R-start.R)*t
		line = append(line, AxialRound(q, r))
	}
	return line
}

// Disc returns every coordinate within radius of center, ordered by q then r.
func Disc(center HexCoord, radius int) []HexCoord {
	if radius < 0 {
		return nil
	}
	coords := make([]HexCoord, 0, 1+3*radius*(radius+1))
	for dq := -radius; dq <= radius; dq++ {
		lo := max(-radius, -dq-radius)
		hi := min(radius, -dq+radius)
		for dr := lo; dr <= hi; dr++ {
			coords = append(coords, HexCoord{Q: center.Q + dq, R: center.R + dr})
		}
	}
	return coords
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
