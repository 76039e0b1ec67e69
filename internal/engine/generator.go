// Package engine provides the map-generation engine: world initialization,
// sector reveal with bridge stitching, full-map reveal and elemental overlays.
// Every operation takes the hex collection by value and returns a new one;
// input records are never modified in place.
package engine

import (
	"log/slog"

	"github.com/talgya/frontier-map/internal/entropy"
	"github.com/talgya/frontier-map/internal/rules"
	"github.com/talgya/frontier-map/internal/world"
)

// Config holds map generation parameters.
type Config struct {
	HexSize       float64     // Pixel radius of one terrain hex
	SectorSize    int         // Radius of a generated sector, in hexes
	SectorSpacing int         // Sector grid basis; neighbors sit 2×spacing apart
	WorldRadius   int         // Sectors out from the origin sector
	BridgeRadius  int         // Half-width of land bridges
	EffectRadius  int         // Reach of an elemental overlay, in hexes
	PartySpeed    rules.Speed // Speed used for generated travel stats
}

// DefaultConfig returns the campaign's standard world dimensions.
func DefaultConfig() Config {
	return Config{
		HexSize:       50,
		SectorSize:    4,
		SectorSpacing: 5,
		WorldRadius:   6,
		BridgeRadius:  2,
		EffectRadius:  12,
		PartySpeed:    rules.DefaultSpeed,
	}
}

// SmallTestConfig returns a tiny world for rapid iteration.
func SmallTestConfig() Config {
	cfg := DefaultConfig()
	cfg.WorldRadius = 1
	return cfg
}

// Generator runs the engine operations for one world configuration.
// It holds no map state; callers own the collection and serialize calls.
type Generator struct {
	cfg    Config
	biomes *world.BiomeGenerator
	dice   entropy.Source
	log    *slog.Logger
}

// Option customizes a Generator.
type Option func(*options)

type options struct {
	noise  world.NoiseField
	rand   entropy.Source
	dice   entropy.Source
	logger *slog.Logger
}

// WithNoise replaces the default trigonometric noise field.
func WithNoise(n world.NoiseField) Option {
	return func(o *options) { o.noise = n }
}

// WithRandom sets the source for flavor text coin flips. It is drawn on
// every generated hex, so it must not block.
func WithRandom(src entropy.Source) Option {
	return func(o *options) { o.rand = src }
}

// WithDice sets the source for hand-placed hex rolls. Defaults to the
// WithRandom source.
func WithDice(src entropy.Source) Option {
	return func(o *options) { o.dice = src }
}

// WithLogger sets the logger used for progress diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates a generator for cfg.
func New(cfg Config, opts ...Option) *Generator {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rand == nil {
		o.rand = entropy.Crypto{}
	}
	if o.dice == nil {
		o.dice = o.rand
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if !cfg.PartySpeed.Valid() {
		cfg.PartySpeed = rules.DefaultSpeed
	}
	return &Generator{
		cfg:    cfg,
		biomes: world.NewBiomeGenerator(o.noise, o.rand),
		dice:   o.dice,
		log:    o.logger.With("component", "engine"),
	}
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// sectorCenter maps a sector grid position to its center hex.
func (g *Generator) sectorCenter(s world.SectorCoord) world.HexCoord {
	return world.SectorCenter(s, g.cfg.SectorSpacing)
}

// terrainHex builds the record for a generated hex at c.
func (g *Generator) terrainHex(c world.HexCoord, groupID string) world.Hex {
	b := g.biomes.At(c)
	stats := rules.TravelStats(g.cfg.PartySpeed, b.Terrain, b.Element)
	return world.Hex{
		ID:                  world.HexID(c),
		GroupID:             groupID,
		Terrain:             b.Terrain,
		Element:             b.Element,
		TravelTimeHours:     stats.TravelHours,
		ExplorationTimeDays: stats.ExplorationDays,
		Coord:               c,
		IsExplored:          true,
		Notes:               b.Flavor,
	}
}

// placeholderHex builds the stand-in record for an unrevealed sector.
func (g *Generator) placeholderHex(s world.SectorCoord) world.Hex {
	return world.Hex{
		ID:                  s.PlaceholderID(),
		GroupID:             s.GroupID(),
		Terrain:             world.TerrainUnexplored,
		Element:             world.ElementStandard,
		Description:         "A vast, uncharted region waiting to be explored.",
		Coord:               g.sectorCenter(s),
		IsSectorPlaceholder: true,
		Notes:               "Unexplored Sector " + s.String(),
	}
}

// cluster generates the hexagonal terrain blob around center, skipping
// occupied coordinates and claiming the ones it fills.
func (g *Generator) cluster(center world.HexCoord, groupID string, occ *world.Occupancy) []world.Hex {
	var out []world.Hex
	for _, c := range world.Disc(center, g.cfg.SectorSize) {
		if !occ.Claim(c) {
			continue
		}
		out = append(out, g.terrainHex(c, groupID))
	}
	return out
}

// bridge fills a band of radius BridgeRadius along the line between two
// sector centers, skipping occupied coordinates.
func (g *Generator) bridge(from, to world.HexCoord, occ *world.Occupancy) []world.Hex {
	var out []world.Hex
	for _, p := range world.Line(from, to) {
		for _, c := range world.Disc(p, g.cfg.BridgeRadius) {
			if !occ.Claim(c) {
				continue
			}
			out = append(out, g.terrainHex(c, world.BridgeGroupID))
		}
	}
	return out
}

// clone copies a collection so the caller's records stay untouched.
func clone(hexes []world.Hex, extra int) []world.Hex {
	out := make([]world.Hex, 0, len(hexes)+extra)
	for _, h := range hexes {
		out = append(out, h.Clone())
	}
	return out
}

func groupOrUnknown(h world.Hex) string {
	if h.GroupID == "" {
		return world.UnknownGroupID
	}
	return h.GroupID
}

// WithPartySpeed returns a generator that stamps travel stats for speed.
// An invalid speed keeps the current one.
func (g *Generator) WithPartySpeed(speed rules.Speed) *Generator {
	cp := *g
	if speed.Valid() {
		cp.cfg.PartySpeed = speed
	}
	return &cp
}
