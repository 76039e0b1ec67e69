package world

import "testing"

func TestOccupancy(t *testing.T) {
	occ := NewOccupancy([]Hex{{Coord: HexCoord{Q: 1, R: 1}}})
	if !occ.Has(HexCoord{Q: 1, R: 1}) {
		t.Fatal("seeded coordinate not occupied")
	}
	if occ.Claim(HexCoord{Q: 1, R: 1}) {
		t.Error("claimed an occupied coordinate")
	}
	if !occ.Claim(HexCoord{Q: 2, R: 0}) {
		t.Error("failed to claim a free coordinate")
	}
	if !occ.Has(HexCoord{Q: 2, R: 0}) {
		t.Error("claimed coordinate not occupied")
	}
}

func TestCollisions(t *testing.T) {
	hexes := []Hex{
		{ID: "a", Coord: HexCoord{Q: 0, R: 0}},
		{ID: "b", Coord: HexCoord{Q: 1, R: 0}},
		{ID: "c", Coord: HexCoord{Q: 0, R: 0}},
	}
	got := Collisions(hexes)
	if len(got) != 1 {
		t.Fatalf("got %d collisions, want 1", len(got))
	}
	if got[0].First != "a" || got[0].Second != "c" {
		t.Errorf("collision = %+v", got[0])
	}
	if Collisions(hexes[:2]) != nil {
		t.Error("expected no collisions for distinct coordinates")
	}
}

func TestTerrainCounts_SkipsPlaceholders(t *testing.T) {
	hexes := []Hex{
		{Terrain: TerrainPlain},
		{Terrain: TerrainPlain},
		{Terrain: TerrainWater},
		{Terrain: TerrainUnexplored, IsSectorPlaceholder: true},
	}
	counts := TerrainCounts(hexes)
	if counts[TerrainPlain] != 2 || counts[TerrainWater] != 1 {
		t.Errorf("counts = %v", counts)
	}
	if _, ok := counts[TerrainUnexplored]; ok {
		t.Error("placeholders should not be counted")
	}
}
