// Command frontierd serves the frontier hex map over HTTP.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/talgya/frontier-map/internal/api"
	"github.com/talgya/frontier-map/internal/config"
	"github.com/talgya/frontier-map/internal/engine"
	"github.com/talgya/frontier-map/internal/entropy"
	"github.com/talgya/frontier-map/internal/llm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	config.SetupLogger(cfg.Logging)

	slog.Info("Frontier Map: hex crawl engine",
		"world_radius", cfg.Map.WorldRadius,
		"sector_size", cfg.Map.SectorSize,
		"noise", cfg.Noise.Kind,
		"party_speed", int(cfg.Map.PartySpeed),
	)

	// ── Randomness ───────────────────────────────────────────────────
	rng := entropy.NewClient(cfg.Secrets.RandomOrgKey)
	if rng.Enabled() {
		slog.Info("random.org entropy enabled for dice rolls")
	} else {
		slog.Info("RANDOM_ORG_API_KEY not set, using crypto/rand for dice rolls")
	}

	gen := engine.New(cfg.Map,
		engine.WithNoise(cfg.Noise.Field()),
		engine.WithRandom(entropy.Crypto{}),
		engine.WithDice(entropy.Default(rng)),
	)

	// ── LLM Client ───────────────────────────────────────────────────
	llmClient := llm.NewClient(cfg.Secrets.AnthropicKey)
	if llmClient != nil {
		slog.Info("LLM client enabled (Haiku)")
	} else {
		slog.Warn("ANTHROPIC_API_KEY not set, descriptions will use fallback text")
	}

	// ── HTTP API ──────────────────────────────────────────────────────
	if cfg.Secrets.AdminKey == "" {
		slog.Warn("FRONTIER_ADMIN_KEY not set, map import and reset are disabled")
	}

	server := api.NewServer(gen, llm.NewDescriber(llmClient), api.Options{
		Port:        cfg.Server.Port,
		AdminKey:    cfg.Secrets.AdminKey,
		CORSOrigins: cfg.Server.CORSOrigins,
		RateLimit: api.RateLimitConfig{
			Enabled:           cfg.RateLimit.Enabled,
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstSize:         cfg.RateLimit.BurstSize,
			TrustProxy:        cfg.RateLimit.TrustProxy,
		},
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})
	server.Start()

	fmt.Printf("\nThe frontier awaits: %d hexes charted.\n", len(server.Snapshot()))
	fmt.Printf("API: http://localhost:%d/api/v1/health\n", cfg.Server.Port)

	// ── Shutdown ──────────────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("received signal, shutting down", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
