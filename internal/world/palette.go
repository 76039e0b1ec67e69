package world

// TerrainColors is the frontier palette, one CSS hex color per terrain.
var TerrainColors = map[Terrain]string{
	TerrainForest:     "#3f6212", // Olive/pine green
	TerrainHill:       "#92400e", // Red rock
	TerrainMarsh:      "#57534e", // Mud grey
	TerrainMountain:   "#064e3b", // Jade
	TerrainPlain:      "#d97706", // Steppe amber
	TerrainSettlement: "#be123c", // Crimson
	TerrainWater:      "#0e7490", // Teal river
	TerrainDesert:     "#7c2d12", // Burnt orange
	TerrainUnexplored: "#0f172a", // Map background
}

// OverlayColors tints hexes carrying an elemental effect.
var OverlayColors = map[Overlay]string{
	OverlayInfernal: "#ef4444",
	OverlayFrozen:   "#0ea5e9",
	OverlayNecrotic: "#9333ea",
	OverlayVerdant:  "#22c55e",
	OverlayStorm:    "#facc15",
	OverlayArcane:   "#db2777",
}

// TerrainIcons holds SVG path data (viewBox 0 0 24 24) per terrain.
var TerrainIcons = map[Terrain]string{
	TerrainForest:     "M10 10c0-5 3-8 3-8s3 3 3 8c0 .5 0 1.5-.5 2v3h-5v-3c-.5-.5-.5-1.5-.5-2Z M7 12c0-4 2.5-6 2.5-6S12 8 12 12c0 .5 0 1-.5 1.5v1.5H9.5v-1.5c-.5-.5-.5-1-.5-1.5Z",
	TerrainHill:       "M4.5 18C4.5 13.5 8 10.5 10 10.5c1 0 2 1 2 3M11 18c0-5.5 3.5-8.5 6.5-8.5 2.5 0 4.5 3 4.5 8.5",
	TerrainMarsh:      "M2 16c1.5-2 3-2 4.5 0s3 2 4.5 0s3-2 4.5 0s3 2 4.5 0 M6 12c0-3 2-4 2-4s2 1 2 4 M16 12c0-2.5 1.5-3.5 1.5-3.5s1.5 1 1.5 3.5",
	TerrainMountain:   "M8 3l-4 18h16l-4-18l-4 8z M10 14l-2 7 M14 14l2 7",
	TerrainPlain:      "M3 18h18 M5 14h8 M15 14h2 M8 10h4",
	TerrainSettlement: "M3 21h18v-8l-9-7-9 7v8zm5-8h8v8H8v-8z",
	TerrainWater:      "M2 12c2-3 5-3 7 0 2 3 5 3 7 0 2-3 5-3 7 0v6c-2 3-5 3-7 0-2-3-5-3-7 0-2 3-5 3-7 0v-6z",
	TerrainDesert:     "M12 2v2 M12 20v2 M2 12h2 M20 12h2 M5 5l1.5 1.5 M17.5 17.5L19 19 M5 19l1.5-1.5 M17.5 6.5L19 5",
	TerrainUnexplored: "M12 2a10 10 0 1 0 10 10A10 10 0 0 0 12 2zm0 18a8 8 0 1 1 8-8 8 8 0 0 1-8 8z M12 6v6l4 2",
}
