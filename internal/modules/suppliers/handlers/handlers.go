// Package handlers provides HTTP handlers for supplier link lookups.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/charlespers/boardroom/internal/modules/board"
	"github.com/charlespers/boardroom/internal/modules/suppliers"
)

// Handler handles supplier-link HTTP requests.
type Handler struct {
	board *board.Store
	log   zerolog.Logger
}

// NewHandler creates a new suppliers handler.
func NewHandler(boardStore *board.Store, log zerolog.Logger) *Handler {
	return &Handler{
		board: boardStore,
		log:   log.With().Str("handler", "suppliers").Logger(),
	}
}

// RegisterRoutes registers all supplier routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/suppliers", h.HandleLookup)
	r.Get("/bom/parts/{id}/suppliers", h.HandlePartLinks)
}

// HandleLookup returns search links for a bare MPN.
// GET /api/suppliers?mpn=NE555DR
func (h *Handler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	mpn := strings.TrimSpace(r.URL.Query().Get("mpn"))
	if mpn == "" {
		h.writeError(w, http.StatusBadRequest, "mpn query parameter is required")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"mpn":   mpn,
		"links": suppliers.LinksForMPN(mpn),
	})
}

// HandlePartLinks returns search links for one board part.
// GET /api/bom/parts/{id}/suppliers
func (h *Handler) HandlePartLinks(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	part, err := h.board.GetPart(id)
	if err != nil {
		h.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"part_id": part.ID,
		"mpn":     part.MPN,
		"links":   suppliers.LinksFor(part),
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
