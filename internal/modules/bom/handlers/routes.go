package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all BOM routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/bom", func(r chi.Router) {
		r.Get("/", h.HandleGetBOM)
		r.Get("/groups", h.HandleGetGroups)
		r.Post("/import", h.HandleImport)
		r.Put("/parts/{id}", h.HandleUpdatePart)
		r.Delete("/parts/{id}", h.HandleDeletePart)
	})
}
