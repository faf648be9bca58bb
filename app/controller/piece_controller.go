package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fanation-admin/client"
	"fanation-admin/models"
	"fanation-admin/state"

	"github.com/go-chi/chi/v5"
)

// PieceController handles HTTP requests for the pieces catalog.
type PieceController struct {
	api  client.RecortesAPI
	list *state.PieceListState
}

// NewPieceController creates a new PieceController
func NewPieceController(api client.RecortesAPI, list *state.PieceListState) *PieceController {
	return &PieceController{api: api, list: list}
}

// List handles GET /admin/pieces
// Query parameters mutate the list state before the fetch: search, tab,
// page, sort (selecting the active field toggles direction), clear=1, and
// the structured filters tipoRecorte/tipoProduto/material/cor.
func (c *PieceController) List(w http.ResponseWriter, r *http.Request) {
	c.applyQuery(r)
	c.list.Load(r.Context())

	snapshot := c.list.Snapshot()
	if snapshot.Error != "" {
		writeError(w, http.StatusBadGateway, snapshot.Error)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// Counts handles GET /admin/pieces/counts
// The three aggregate counts share the current search/filters; stale
// counts are returned when a branch fails.
func (c *PieceController) Counts(w http.ResponseWriter, r *http.Request) {
	c.list.LoadCounts(r.Context())
	writeJSON(w, http.StatusOK, c.list.Snapshot().Counts)
}

// Get handles GET /admin/pieces/{id}
func (c *PieceController) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	piece, err := c.api.GetRecorteByID(r.Context(), id)
	if err != nil {
		writeError(w, apiStatus(err, http.StatusNotFound), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, piece)
}

// GetBySKU handles GET /admin/pieces/sku/{sku}
// The SKU may arrive with or without the leading marker.
func (c *PieceController) GetBySKU(w http.ResponseWriter, r *http.Request) {
	sku := chi.URLParam(r, "sku")
	piece, err := c.api.GetRecorteBySKU(r.Context(), sku)
	if err != nil {
		writeError(w, apiStatus(err, http.StatusNotFound), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, piece)
}

// Create handles POST /admin/pieces
func (c *PieceController) Create(w http.ResponseWriter, r *http.Request) {
	var data models.CreatePieceData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	piece, err := c.api.CreateRecorte(r.Context(), data)
	if err != nil {
		writeError(w, apiStatus(err, http.StatusBadRequest), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, piece)
}

// Update handles PUT /admin/pieces/{id}
// Fields absent from the body are not forwarded to the remote API.
func (c *PieceController) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var data models.UpdatePieceData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	piece, err := c.api.UpdateRecorte(r.Context(), id, data)
	if err != nil {
		writeError(w, apiStatus(err, http.StatusBadRequest), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, piece)
}

// UpdateImage handles PUT /admin/pieces/{id}/image (multipart)
func (c *PieceController) UpdateImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Imagem é obrigatória")
		return
	}
	defer file.Close()

	piece, err := c.api.UpdateRecorteImage(r.Context(), id, header.Filename, file)
	if err != nil {
		writeError(w, apiStatus(err, http.StatusBadGateway), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, piece)
}

// Delete handles DELETE /admin/pieces/{id}
func (c *PieceController) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := c.api.DeleteRecorte(r.Context(), id); err != nil {
		writeError(w, apiStatus(err, http.StatusBadGateway), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// Upload handles POST /admin/pieces/upload (multipart image plus
// classification fields).
func (c *PieceController) Upload(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Imagem é obrigatória")
		return
	}
	defer file.Close()

	class := models.UploadClassification{
		TipoProduto: r.FormValue("tipoProduto"),
		TipoRecorte: r.FormValue("tipoRecorte"),
		Material:    r.FormValue("material"),
		Cor:         r.FormValue("cor"),
	}
	if !models.ValidOption(models.ProductTypes, class.TipoProduto) ||
		!models.ValidOption(models.CutTypes, class.TipoRecorte) ||
		!models.ValidOption(models.Materials, class.Material) ||
		!models.ValidOption(models.MaterialColors, class.Cor) {
		writeError(w, http.StatusBadRequest, "Classificação inválida")
		return
	}

	result, err := c.api.UploadImage(r.Context(), header.Filename, file, class)
	if err != nil {
		writeError(w, apiStatus(err, http.StatusBadGateway), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Options handles GET /admin/pieces/options and returns the closed
// enumerations the piece form selects offer.
func (c *PieceController) Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"cutTypes":       models.CutTypes,
		"productTypes":   models.ProductTypes,
		"positions":      models.Positions,
		"materials":      models.Materials,
		"materialColors": models.MaterialColors,
		"displayOrders":  models.DisplayOrders,
	})
}

func (c *PieceController) applyQuery(r *http.Request) {
	query := r.URL.Query()

	if query.Get("clear") == "1" {
		c.list.ClearAll()
	}
	if query.Has("search") {
		c.list.SetSearch(query.Get("search"))
	}
	if query.Has("tab") {
		c.list.SetTab(query.Get("tab"))
	}
	if query.Has("tipoRecorte") || query.Has("tipoProduto") || query.Has("material") || query.Has("cor") {
		c.list.ApplyFilters(state.StructuredFilters{
			TipoRecorte: query.Get("tipoRecorte"),
			TipoProduto: query.Get("tipoProduto"),
			Material:    query.Get("material"),
			Cor:         query.Get("cor"),
		})
	}
	if query.Has("sort") {
		c.list.SetSort(query.Get("sort"))
	}
	if query.Has("page") {
		if page, err := strconv.Atoi(query.Get("page")); err == nil {
			c.list.SetPage(page)
		}
	}
}

// apiStatus maps a client error to a dashboard response status, keeping
// the remote status when known.
func apiStatus(err error, fallback int) int {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode != 0 {
		return apiErr.StatusCode
	}
	return fallback
}
