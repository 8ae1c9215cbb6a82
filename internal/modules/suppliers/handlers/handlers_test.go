package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charlespers/boardroom/internal/modules/board"
	"github.com/charlespers/boardroom/internal/modules/suppliers"
)

func newRouter() *chi.Mux {
	boardStore := board.New("test-board", zerolog.Nop())
	boardStore.ReplaceParts(board.DemoParts())

	router := chi.NewRouter()
	NewHandler(boardStore, zerolog.Nop()).RegisterRoutes(router)
	return router
}

func TestHandleLookup(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/suppliers?mpn=NE555DR", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		MPN   string           `json:"mpn"`
		Links []suppliers.Link `json:"links"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "NE555DR", response.MPN)
	require.Len(t, response.Links, 4)
	assert.Contains(t, response.Links[0].URL, "NE555DR")
}

func TestHandleLookup_MissingMPN(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/suppliers", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePartLinks(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/bom/parts/U1/suppliers", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		PartID string           `json:"part_id"`
		MPN    string           `json:"mpn"`
		Links  []suppliers.Link `json:"links"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "U1", response.PartID)
	assert.Equal(t, "STM32F103C8T6", response.MPN)
	require.Len(t, response.Links, 4)
}

func TestHandlePartLinks_NotFound(t *testing.T) {
	router := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/bom/parts/ZZ9/suppliers", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
