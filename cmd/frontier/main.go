// Command frontier generates a hex map offline and prints or exports it.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gookit/color"
	"github.com/mattn/go-isatty"

	"github.com/talgya/frontier-map/internal/config"
	"github.com/talgya/frontier-map/internal/engine"
	"github.com/talgya/frontier-map/internal/entropy"
	"github.com/talgya/frontier-map/internal/mapjson"
	"github.com/talgya/frontier-map/internal/render"
	"github.com/talgya/frontier-map/internal/rules"
	"github.com/talgya/frontier-map/internal/world"
)

func main() {
	var (
		in        = flag.String("in", "", "load a JSON map instead of generating one")
		out       = flag.String("out", "", "write the resulting map as JSON to this file")
		radius    = flag.Int("radius", engine.DefaultConfig().WorldRadius, "world radius in sectors")
		speed     = flag.Int("speed", int(rules.DefaultSpeed), "party speed (15, 20, 30, 40, 50)")
		revealAll = flag.Bool("reveal-all", false, "reveal every sector")
		overlay   = flag.String("overlay", "", "apply an elemental overlay at the origin (Infernal, Frozen, ...)")
		noise     = flag.String("noise", "trig", "noise field: trig or simplex")
		seed      = flag.Int64("seed", 42, "simplex noise seed; also seeds flavor rolls")
		draw      = flag.Bool("render", true, "draw the map to the terminal")
		noColor   = flag.Bool("no-color", false, "disable colored output")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := "warn"
	if *verbose {
		level = "debug"
	}
	slog.SetDefault(config.NewLogger(config.LoggingConfig{Level: level, Format: "text"}, os.Stderr, true))

	cfg := engine.DefaultConfig()
	cfg.WorldRadius = *radius
	cfg.PartySpeed = rules.Speed(*speed)
	if !cfg.PartySpeed.Valid() {
		fatal("invalid speed %d", *speed)
	}

	noiseCfg := config.NoiseConfig{Kind: *noise, Seed: *seed}
	if noiseCfg.Kind != "trig" && noiseCfg.Kind != "simplex" {
		fatal("unknown noise %q", *noise)
	}
	gen := engine.New(cfg,
		engine.WithNoise(noiseCfg.Field()),
		engine.WithRandom(entropy.NewSeeded(*seed)),
	)

	var hexes []world.Hex
	if *in != "" {
		data, err := os.ReadFile(*in)
		if err != nil {
			fatal("read %s: %v", *in, err)
		}
		hexes, err = mapjson.Import(data)
		if err != nil {
			fatal("import %s: %v", *in, err)
		}
	} else {
		hexes = gen.InitializeWorld()
	}

	if *revealAll {
		hexes = gen.RevealAll(hexes, func(msg string) { fmt.Fprintln(os.Stderr, msg) })
	}

	if *overlay != "" {
		o := world.Overlay(*overlay)
		if o != "none" && !o.Valid() {
			fatal("unknown overlay %q", *overlay)
		}
		if o == "none" {
			o = world.OverlayNone
		}
		hexes = gen.ApplyOverlay(world.Hex{}, o, hexes)
	}

	if collisions := engine.Validate(hexes); len(collisions) > 0 {
		for _, c := range collisions {
			slog.Warn("occupancy violation", "error", c)
		}
	}

	if *draw {
		useColor := !*noColor && isatty.IsTerminal(os.Stdout.Fd()) && color.SupportTrueColor()
		if err := (render.Terminal{Color: useColor}).Render(os.Stdout, hexes); err != nil {
			fatal("render: %v", err)
		}
	}
	if err := render.Summary(os.Stdout, hexes); err != nil {
		fatal("summary: %v", err)
	}

	if *out != "" {
		data, err := mapjson.Export(hexes)
		if err != nil {
			fatal("export: %v", err)
		}
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			fatal("write %s: %v", *out, err)
		}
		fmt.Printf("wrote %s\n", *out)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "frontier: "+format+"\n", args...)
	os.Exit(1)
}
