// Package config loads runtime configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/talgya/frontier-map/internal/engine"
	"github.com/talgya/frontier-map/internal/rules"
	"github.com/talgya/frontier-map/internal/world"
)

// Config is the full runtime configuration.
type Config struct {
	Server    ServerConfig
	Map       engine.Config
	Noise     NoiseConfig
	Logging   LoggingConfig
	RateLimit RateLimitConfig
	Secrets   SecretsConfig
}

type ServerConfig struct {
	Port         int
	CORSOrigins  []string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type NoiseConfig struct {
	Kind string // "trig" or "simplex"
	Seed int64
}

type LoggingConfig struct {
	Level  string
	Format string // "text", "json", or "" to pick by terminal
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64
	BurstSize         int
	TrustProxy        bool
}

type SecretsConfig struct {
	AdminKey     string
	AnthropicKey string
	RandomOrgKey string
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using system environment variables")
	}

	cfg := &Config{
		Server:    loadServerConfig(),
		Map:       loadMapConfig(),
		Noise:     loadNoiseConfig(),
		Logging:   loadLoggingConfig(),
		RateLimit: loadRateLimitConfig(),
		Secrets: SecretsConfig{
			AdminKey:     os.Getenv("FRONTIER_ADMIN_KEY"),
			AnthropicKey: os.Getenv("ANTHROPIC_API_KEY"),
			RandomOrgKey: os.Getenv("RANDOM_ORG_API_KEY"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadServerConfig() ServerConfig {
	var origins []string
	for _, o := range strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return ServerConfig{
		Port:         getInt("FRONTIER_PORT", 8080),
		CORSOrigins:  origins,
		ReadTimeout:  time.Duration(getInt("SERVER_READ_TIMEOUT_SECONDS", 15)) * time.Second,
		WriteTimeout: time.Duration(getInt("SERVER_WRITE_TIMEOUT_SECONDS", 60)) * time.Second,
	}
}

func loadMapConfig() engine.Config {
	def := engine.DefaultConfig()
	return engine.Config{
		HexSize:       getFloat("FRONTIER_HEX_SIZE", def.HexSize),
		SectorSize:    getInt("FRONTIER_SECTOR_SIZE", def.SectorSize),
		SectorSpacing: getInt("FRONTIER_SECTOR_SPACING", def.SectorSpacing),
		WorldRadius:   getInt("FRONTIER_WORLD_RADIUS", def.WorldRadius),
		BridgeRadius:  getInt("FRONTIER_BRIDGE_RADIUS", def.BridgeRadius),
		EffectRadius:  getInt("FRONTIER_EFFECT_RADIUS", def.EffectRadius),
		PartySpeed:    rules.Speed(getInt("FRONTIER_PARTY_SPEED", int(def.PartySpeed))),
	}
}

func loadNoiseConfig() NoiseConfig {
	return NoiseConfig{
		Kind: strings.ToLower(getEnv("FRONTIER_NOISE", "trig")),
		Seed: int64(getInt("FRONTIER_SEED", 42)),
	}
}

func loadLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", ""),
	}
}

func loadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled:           getEnv("RATE_LIMIT_ENABLED", "true") == "true",
		RequestsPerSecond: getFloat("RATE_LIMIT_REQUESTS_PER_SECOND", 0.2),
		BurstSize:         getInt("RATE_LIMIT_BURST_SIZE", 5),
		TrustProxy:        getEnv("RATE_LIMIT_TRUST_PROXY", "false") == "true",
	}
}

// Field builds the configured noise field.
func (n NoiseConfig) Field() world.NoiseField {
	if n.Kind == "simplex" {
		return world.NewSimplexNoise(n.Seed)
	}
	return world.TrigNoise{}
}

// Validate rejects configurations the engine cannot generate.
func (c *Config) Validate() error {
	m := c.Map
	if m.HexSize <= 0 {
		return fmt.Errorf("FRONTIER_HEX_SIZE must be positive, got %v", m.HexSize)
	}
	if m.SectorSize < 1 {
		return fmt.Errorf("FRONTIER_SECTOR_SIZE must be at least 1, got %d", m.SectorSize)
	}
	if m.SectorSpacing < 1 {
		return fmt.Errorf("FRONTIER_SECTOR_SPACING must be at least 1, got %d", m.SectorSpacing)
	}
	if m.WorldRadius < 0 {
		return fmt.Errorf("FRONTIER_WORLD_RADIUS must not be negative, got %d", m.WorldRadius)
	}
	if m.SectorSize >= m.SectorSpacing {
		return fmt.Errorf("FRONTIER_SECTOR_SIZE must be smaller than FRONTIER_SECTOR_SPACING (%d), got %d", m.SectorSpacing, m.SectorSize)
	}
	if m.BridgeRadius < 0 {
		return fmt.Errorf("FRONTIER_BRIDGE_RADIUS must not be negative, got %d", m.BridgeRadius)
	}
	if m.EffectRadius < 1 {
		return fmt.Errorf("FRONTIER_EFFECT_RADIUS must be at least 1, got %d", m.EffectRadius)
	}
	if !m.PartySpeed.Valid() {
		return fmt.Errorf("FRONTIER_PARTY_SPEED must be one of 15, 20, 30, 40, 50, got %d", m.PartySpeed)
	}
	if c.Noise.Kind != "trig" && c.Noise.Kind != "simplex" {
		return fmt.Errorf("FRONTIER_NOISE must be trig or simplex, got %q", c.Noise.Kind)
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("FRONTIER_PORT must be positive, got %d", c.Server.Port)
	}
	return nil
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return def
	}
	return v
}

func getFloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return def
	}
	return v
}
