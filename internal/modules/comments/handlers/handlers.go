// Package handlers provides HTTP handlers for the comments panel.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/charlespers/boardroom/internal/modules/comments"
)

// Handler handles comment HTTP requests.
type Handler struct {
	store *comments.Store
	log   zerolog.Logger
}

// NewHandler creates a new comments handler.
func NewHandler(store *comments.Store, log zerolog.Logger) *Handler {
	return &Handler{
		store: store,
		log:   log.With().Str("handler", "comments").Logger(),
	}
}

// RegisterRoutes registers all comment routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/comments", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Post("/", h.HandleCreate)
		r.Post("/{id}/resolve", h.HandleResolve)
		r.Delete("/{id}", h.HandleDelete)
	})
}

// HandleList returns comments, optionally filtered by target.
// GET /api/comments?target=U1
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	list := h.store.List(r.URL.Query().Get("target"))

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"comments": list,
		"count":    len(list),
	})
}

type createRequest struct {
	Target   string `json:"target"`
	ParentID string `json:"parent_id"`
	Author   string `json:"author"`
	Body     string `json:"body"`
}

// HandleCreate adds a comment or a reply.
// POST /api/comments
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	comment, err := h.store.Add(req.Target, req.ParentID, req.Author, req.Body)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.writeJSON(w, http.StatusCreated, comment)
}

// HandleResolve marks a comment as resolved.
// POST /api/comments/{id}/resolve
func (h *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	comment, err := h.store.Resolve(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, comment)
}

// HandleDelete removes a comment and its replies.
// DELETE /api/comments/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.Delete(id); err != nil {
		h.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"deleted": id,
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
