// Package handlers provides HTTP handlers for the board's version history.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/charlespers/boardroom/internal/modules/board"
	"github.com/charlespers/boardroom/internal/modules/revisions"
)

// Handler handles version-history HTTP requests.
type Handler struct {
	revisions *revisions.Log
	board     *board.Store
	log       zerolog.Logger
}

// NewHandler creates a new revisions handler.
func NewHandler(revisionLog *revisions.Log, boardStore *board.Store, log zerolog.Logger) *Handler {
	return &Handler{
		revisions: revisionLog,
		board:     boardStore,
		log:       log.With().Str("handler", "revisions").Logger(),
	}
}

// RegisterRoutes registers all revision routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/revisions", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Get("/{id}", h.HandleGet)
		r.Post("/{id}/restore", h.HandleRestore)
	})
}

// HandleList returns the version history, newest first.
// GET /api/revisions
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	history := h.revisions.List()

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"revisions": history,
		"count":     len(history),
	})
}

// HandleGet returns one revision including its parts snapshot.
// GET /api/revisions/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	rev, err := h.revisions.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, rev)
}

// HandleRestore replaces the board's part list with a revision's snapshot.
// The restore itself is recorded as a new revision, so history stays
// append-only.
// POST /api/revisions/{id}/restore
func (h *Handler) HandleRestore(w http.ResponseWriter, r *http.Request) {
	rev, err := h.revisions.Get(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	h.board.ReplaceParts(rev.Parts)
	restored := h.revisions.Record("", fmt.Sprintf("Restored revision %d", rev.Number), rev.Parts)

	h.log.Info().
		Int("restored_from", rev.Number).
		Int("revision", restored.Number).
		Msg("Revision restored")

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"restored_from": rev.Number,
		"revision":      restored.Number,
		"parts":         len(rev.Parts),
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
