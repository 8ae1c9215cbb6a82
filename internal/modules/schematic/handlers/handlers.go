// Package handlers provides HTTP handlers for the schematic viewer.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/charlespers/boardroom/internal/modules/board"
	"github.com/charlespers/boardroom/internal/modules/schematic"
)

// Handler handles schematic HTTP requests.
type Handler struct {
	board *board.Store
	log   zerolog.Logger
}

// NewHandler creates a new schematic handler.
func NewHandler(boardStore *board.Store, log zerolog.Logger) *Handler {
	return &Handler{
		board: boardStore,
		log:   log.With().Str("handler", "schematic").Logger(),
	}
}

// RegisterRoutes registers all schematic routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/schematic", func(r chi.Router) {
		r.Get("/layout", h.HandleLayout)
		r.Get("/view", h.HandleDefaultView)
	})
}

// HandleLayout returns the grid layout for the current part list.
// GET /api/schematic/layout?cols=N
func (h *Handler) HandleLayout(w http.ResponseWriter, r *http.Request) {
	cols := 0
	if raw := r.URL.Query().Get("cols"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "cols must be an integer")
			return
		}
		cols = n
	}

	layout := schematic.Compute(h.board.Parts(), cols)
	h.writeJSON(w, http.StatusOK, layout)
}

// HandleDefaultView returns the initial zoom/pan state and its limits, so
// the viewer starts from the same defaults after a reload.
// GET /api/schematic/view
func (h *Handler) HandleDefaultView(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"view":     schematic.NewViewState(),
		"min_zoom": schematic.MinZoom,
		"max_zoom": schematic.MaxZoom,
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
