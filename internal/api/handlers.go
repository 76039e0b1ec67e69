package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/talgya/frontier-map/internal/engine"
	"github.com/talgya/frontier-map/internal/llm"
	"github.com/talgya/frontier-map/internal/mapjson"
	"github.com/talgya/frontier-map/internal/rules"
	"github.com/talgya/frontier-map/internal/world"
)

// maxImportBytes caps an uploaded map document.
const maxImportBytes = 32 << 20

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"hexes":  len(s.Snapshot()),
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := mapjson.Export(s.Snapshot())
	if err != nil {
		s.log.Error("export failed", "error", err)
		respondError(w, http.StatusInternalServerError, "export failed")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="hex-map.json"`)
	w.Write(data)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		respondError(w, http.StatusRequestEntityTooLarge, "map document too large")
		return
	}

	hexes, err := mapjson.Import(data)
	if err != nil {
		s.log.Warn("map import rejected", "error", err)
		respondError(w, http.StatusBadRequest, "Failed to import map: "+err.Error())
		return
	}

	s.update(func([]world.Hex) []world.Hex { return hexes })
	s.log.Info("map imported", "hexes", len(hexes))
	respondJSON(w, http.StatusOK, map[string]int{"hexes": len(hexes)})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	hexes := s.update(func([]world.Hex) []world.Hex { return s.gen.InitializeWorld() })
	s.log.Info("map reset", "hexes", len(hexes))
	respondJSON(w, http.StatusOK, map[string]int{"hexes": len(hexes)})
}

func (s *Server) handleRetime(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Speed rules.Speed `json:"speed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || !body.Speed.Valid() {
		respondError(w, http.StatusBadRequest, "speed must be one of 15, 20, 30, 40, 50")
		return
	}
	hexes := s.update(func(hexes []world.Hex) []world.Hex {
		s.gen = s.gen.WithPartySpeed(body.Speed)
		return engine.Retime(hexes, body.Speed)
	})
	respondJSON(w, http.StatusOK, map[string]any{"speed": body.Speed, "hexes": len(hexes)})
}

func (s *Server) handleReveal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	revealed := false
	var found bool
	hexes := s.update(func(hexes []world.Hex) []world.Hex {
		var target world.Hex
		target, found = findByID(hexes, id)
		if !found {
			return hexes
		}
		revealed = target.IsSectorPlaceholder
		return s.gen.RevealSector(target, hexes)
	})
	if !found {
		respondError(w, http.StatusNotFound, "hex not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"revealed": revealed, "hexes": len(hexes)})
}

func (s *Server) handleRevealAll(w http.ResponseWriter, r *http.Request) {
	var progress []string
	hexes := s.update(func(hexes []world.Hex) []world.Hex {
		return s.gen.RevealAll(hexes, func(msg string) { progress = append(progress, msg) })
	})
	respondJSON(w, http.StatusOK, map[string]any{"progress": progress, "hexes": len(hexes)})
}

func (s *Server) handleOverlay(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Type *world.Overlay `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid overlay body")
		return
	}
	overlay := world.OverlayNone
	if body.Type != nil {
		overlay = *body.Type
	}
	if overlay != world.OverlayNone && !overlay.Valid() {
		respondError(w, http.StatusBadRequest, "unknown overlay type "+strconv.Quote(string(overlay)))
		return
	}

	id := chi.URLParam(r, "id")
	var updated world.Hex
	var found bool
	s.update(func(hexes []world.Hex) []world.Hex {
		var target world.Hex
		target, found = findByID(hexes, id)
		if !found {
			return hexes
		}
		out := s.gen.ApplyOverlay(target, overlay, hexes)
		updated, _ = findByID(out, id)
		return out
	})
	if !found {
		respondError(w, http.StatusNotFound, "hex not found")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleClusters(w http.ResponseWriter, r *http.Request) {
	clusters := engine.Clusters(s.Snapshot())
	if clusters == nil {
		clusters = []engine.ClusterSummary{}
	}
	respondJSON(w, http.StatusOK, clusters)
}

func (s *Server) handleRemoveCluster(w http.ResponseWriter, r *http.Request) {
	groupID := chi.URLParam(r, "groupId")
	removed := 0
	s.update(func(hexes []world.Hex) []world.Hex {
		out := engine.RemoveCluster(groupID, hexes)
		removed = len(hexes) - len(out)
		return out
	})
	if removed == 0 {
		respondError(w, http.StatusNotFound, "cluster not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"removed": removed})
}

type statsResponse struct {
	Total        int                   `json:"total"`
	Placeholders int                   `json:"placeholders"`
	Terrain      map[world.Terrain]int `json:"terrain"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	hexes := s.Snapshot()
	resp := statsResponse{Total: len(hexes), Terrain: world.TerrainCounts(hexes)}
	for _, h := range hexes {
		if h.IsSectorPlaceholder {
			resp.Placeholders++
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

type paletteEntry struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
}

// handlePalette lists display colors and icons so clients draw hexes the same way.
func (s *Server) handlePalette(w http.ResponseWriter, r *http.Request) {
	terrains := make([]paletteEntry, 0, len(world.Terrains))
	for _, t := range world.Terrains {
		terrains = append(terrains, paletteEntry{
			Name:  string(t),
			Color: world.TerrainColors[t],
			Icon:  world.TerrainIcons[t],
		})
	}
	overlays := make([]paletteEntry, 0, len(world.Overlays))
	for _, o := range world.Overlays {
		overlays = append(overlays, paletteEntry{Name: string(o), Color: world.OverlayColors[o]})
	}
	respondJSON(w, http.StatusOK, map[string][]paletteEntry{
		"terrains": terrains,
		"overlays": overlays,
	})
}

func (s *Server) handleTravel(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	speed := rules.DefaultSpeed
	if v := q.Get("speed"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "speed must be an integer")
			return
		}
		speed = rules.Speed(n)
	}
	terrain := world.Terrain(q.Get("terrain"))
	if !terrain.Valid() {
		respondError(w, http.StatusBadRequest, "unknown terrain "+strconv.Quote(string(terrain)))
		return
	}
	element := world.ElementStandard
	if v := q.Get("element"); v != "" {
		element = world.Element(v)
	}
	if !element.Valid() {
		respondError(w, http.StatusBadRequest, "unknown element "+strconv.Quote(string(element)))
		return
	}
	respondJSON(w, http.StatusOK, rules.TravelStats(speed, terrain, element))
}

func (s *Server) handleHexAt(w http.ResponseWriter, r *http.Request) {
	x, errX := strconv.ParseFloat(r.URL.Query().Get("x"), 64)
	y, errY := strconv.ParseFloat(r.URL.Query().Get("y"), 64)
	if errX != nil || errY != nil {
		respondError(w, http.StatusBadRequest, "x and y must be numbers")
		return
	}

	s.mu.Lock()
	h, ok := s.gen.HexAtPixel(world.Point{X: x, Y: y}, s.hexes)
	s.mu.Unlock()
	if !ok {
		respondError(w, http.StatusNotFound, "no hex at point")
		return
	}
	respondJSON(w, http.StatusOK, h)
}

func (s *Server) handleRandomHex(w http.ResponseWriter, r *http.Request) {
	nearID := r.URL.Query().Get("near")
	var added world.Hex
	var missing bool
	s.update(func(hexes []world.Hex) []world.Hex {
		var near *world.Hex
		if nearID != "" {
			h, ok := findByID(hexes, nearID)
			if !ok {
				missing = true
				return hexes
			}
			near = &h
		}
		out := s.gen.PlaceRandomHex(near, hexes)
		added = out[len(out)-1]
		return out
	})
	if missing {
		respondError(w, http.StatusNotFound, "hex not found")
		return
	}
	respondJSON(w, http.StatusCreated, added)
}

// handleDescribe asks the oracle for flavor text and stores it on the hex.
// The lock is not held during the model call.
func (s *Server) handleDescribe(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	target, ok := findByID(s.Snapshot(), id)
	if !ok {
		respondError(w, http.StatusNotFound, "hex not found")
		return
	}

	text := s.oracle.DescribeHex(r.Context(), target.Terrain, target.Element)
	switch text {
	case llm.DescriptionUnavailable, llm.DescriptionFailed, llm.DescriptionEmpty:
	default:
		s.update(func(hexes []world.Hex) []world.Hex {
			return setDescription(hexes, id, text)
		})
	}
	respondJSON(w, http.StatusOK, map[string]string{"description": text})
}

func (s *Server) handleEncounter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	target, ok := findByID(s.Snapshot(), id)
	if !ok {
		respondError(w, http.StatusNotFound, "hex not found")
		return
	}

	level := llm.DefaultPartyLevel
	if v := r.URL.Query().Get("level"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "level must be a positive integer")
			return
		}
		level = n
	}

	text := s.oracle.DescribeEncounter(r.Context(), target.Terrain, level)
	respondJSON(w, http.StatusOK, map[string]string{"encounter": text})
}

func findByID(hexes []world.Hex, id string) (world.Hex, bool) {
	for _, h := range hexes {
		if h.ID == id {
			return h, true
		}
	}
	return world.Hex{}, false
}

// setDescription returns a copy of hexes with one record's description replaced.
func setDescription(hexes []world.Hex, id, text string) []world.Hex {
	out := make([]world.Hex, 0, len(hexes))
	for _, h := range hexes {
		h = h.Clone()
		if h.ID == id {
			h.Description = text
		}
		out = append(out, h)
	}
	return out
}
