// Package handlers provides HTTP handlers for the bill-of-materials API.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/charlespers/boardroom/internal/modules/board"
	"github.com/charlespers/boardroom/internal/modules/bom"
	"github.com/charlespers/boardroom/internal/modules/bom/importer"
	"github.com/charlespers/boardroom/internal/modules/revisions"
	"github.com/charlespers/boardroom/internal/utils"
)

// maxImportSize caps BOM uploads at 8 MiB. Real BOMs are a few kilobytes.
const maxImportSize = 8 << 20

// Handler handles BOM HTTP requests.
type Handler struct {
	board     *board.Store
	revisions *revisions.Log
	log       zerolog.Logger
}

// NewHandler creates a new BOM handler.
func NewHandler(boardStore *board.Store, revisionLog *revisions.Log, log zerolog.Logger) *Handler {
	return &Handler{
		board:     boardStore,
		revisions: revisionLog,
		log:       log.With().Str("handler", "bom").Logger(),
	}
}

// HandleGetBOM returns the full part list with its aggregate cost.
// GET /api/bom
func (h *Handler) HandleGetBOM(w http.ResponseWriter, r *http.Request) {
	parts := h.board.Parts()

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"board":      h.board.Name(),
		"parts":      parts,
		"count":      len(parts),
		"total_cost": bom.AggregateCost(parts),
	})
}

// HandleGetGroups returns the part list partitioned by the requested key.
// GET /api/bom/groups?by=category|manufacturer|package|none
func (h *Handler) HandleGetGroups(w http.ResponseWriter, r *http.Request) {
	key, err := bom.ParseGroupKey(r.URL.Query().Get("by"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	parts := h.board.Parts()
	groups := bom.Partition(parts, key)

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"group_key":  key,
		"groups":     groups,
		"total_cost": bom.AggregateCost(parts),
	})
}

// HandleImport replaces the board's part list from an uploaded CSV or XLSX
// file and records a revision.
// POST /api/bom/import (multipart, field "file")
func (h *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	timer := utils.NewTimer("bom_import", h.log)
	defer timer.Stop()

	// Cap the request body itself; ParseMultipartForm's limit only bounds
	// memory and spools the rest to disk.
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	var records []bom.PartRecord
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".csv":
		records, err = importer.ParseCSV(file)
	case ".xlsx":
		records, err = importer.ParseXLSX(file)
	default:
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("Unsupported file type %q", filepath.Ext(header.Filename)))
		return
	}
	if err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	h.board.ReplaceParts(records)
	author := strings.TrimSpace(r.FormValue("author"))
	rev := h.revisions.Record(author, fmt.Sprintf("Imported %s", header.Filename), records)

	h.log.Info().
		Str("file", header.Filename).
		Int("parts", len(records)).
		Int("revision", rev.Number).
		Msg("BOM imported")

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"imported":   len(records),
		"revision":   rev.Number,
		"total_cost": bom.AggregateCost(records),
	})
}

// HandleUpdatePart edits a single line item and records a revision.
// PUT /api/bom/parts/{id}
func (h *Handler) HandleUpdatePart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var part bom.PartRecord
	if err := json.NewDecoder(r.Body).Decode(&part); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.board.UpdatePart(id, part); err != nil {
		h.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	h.revisions.Record("", fmt.Sprintf("Edited part %s", id), h.board.Parts())

	updated, err := h.board.GetPart(id)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

// HandleDeletePart removes a line item and records a revision.
// DELETE /api/bom/parts/{id}
func (h *Handler) HandleDeletePart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.board.DeletePart(id); err != nil {
		h.writeError(w, http.StatusNotFound, err.Error())
		return
	}

	h.revisions.Record("", fmt.Sprintf("Removed part %s", id), h.board.Parts())

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
