// Package api serves the current map over HTTP.
// Reads are public. Replacing or resetting the whole map requires the admin
// bearer token. Every engine call runs under one mutex, so the collection
// only ever changes by whole-value swaps.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/talgya/frontier-map/internal/engine"
	"github.com/talgya/frontier-map/internal/llm"
	"github.com/talgya/frontier-map/internal/world"
)

// Options configures a Server.
type Options struct {
	Port         int
	AdminKey     string // Bearer token for admin endpoints. Empty = admin disabled.
	CORSOrigins  []string
	RateLimit    RateLimitConfig
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server owns the current hex collection.
type Server struct {
	gen     *engine.Generator
	oracle  *llm.Describer
	opts    Options
	limiter *RateLimiter
	log     *slog.Logger
	http    *http.Server

	mu    sync.Mutex
	hexes []world.Hex
}

// NewServer starts from a freshly initialized world.
func NewServer(gen *engine.Generator, oracle *llm.Describer, opts Options) *Server {
	if oracle == nil {
		oracle = llm.NewDescriber(nil)
	}
	return &Server{
		gen:     gen,
		oracle:  oracle,
		opts:    opts,
		limiter: NewRateLimiter(opts.RateLimit),
		log:     slog.With("component", "api"),
		hexes:   gen.InitializeWorld(),
	}
}

// Handler builds the routed, CORS-wrapped handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Get("/map", s.handleExport)
		r.With(s.adminOnly).Put("/map", s.handleImport)
		r.With(s.adminOnly).Post("/map/reset", s.handleReset)
		r.Post("/map/party-speed", s.handleRetime)

		r.Post("/sectors/reveal-all", s.handleRevealAll)
		r.Post("/sectors/{id}/reveal", s.handleReveal)

		r.Get("/clusters", s.handleClusters)
		r.Delete("/clusters/{groupId}", s.handleRemoveCluster)

		r.Get("/stats", s.handleStats)
		r.Get("/palette", s.handlePalette)
		r.Get("/travel", s.handleTravel)

		r.Get("/hexes/at", s.handleHexAt)
		r.Post("/hexes/random", s.handleRandomHex)
		r.Post("/hexes/{id}/overlay", s.handleOverlay)
		r.With(s.limiter.Middleware).Post("/hexes/{id}/describe", s.handleDescribe)
		r.With(s.limiter.Middleware).Post("/hexes/{id}/encounter", s.handleEncounter)
	})

	c := cors.New(cors.Options{
		AllowedOrigins: s.opts.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
	return c.Handler(r)
}

// Start begins serving in a goroutine.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.opts.Port)
	s.http = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}
	s.log.Info("HTTP API starting", "addr", addr, "admin_auth", s.opts.AdminKey != "")

	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("HTTP server error", "error", err)
		}
	}()
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Snapshot returns the current collection. Callers must not modify it.
func (s *Server) Snapshot() []world.Hex {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hexes
}

// update swaps in fn's result under the lock.
func (s *Server) update(fn func([]world.Hex) []world.Hex) []world.Hex {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hexes = fn(s.hexes)
	return s.hexes
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

// checkBearerToken returns true if the request has a valid admin bearer token.
func (s *Server) checkBearerToken(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == s.opts.AdminKey
}

func (s *Server) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.opts.AdminKey == "" {
			respondError(w, http.StatusForbidden, "admin endpoints disabled (no FRONTIER_ADMIN_KEY set)")
			return
		}
		if !s.checkBearerToken(r) {
			respondError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
