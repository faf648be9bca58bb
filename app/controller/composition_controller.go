package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fanation-admin/state"

	"github.com/go-chi/chi/v5"
)

// CompositionController handles HTTP requests for the image composition view.
type CompositionController struct {
	composition *state.Composition
}

// NewCompositionController creates a new CompositionController
func NewCompositionController(composition *state.Composition) *CompositionController {
	return &CompositionController{composition: composition}
}

// Enter handles POST /admin/composite
// Body: {"skus": ["#101", "#102", ...]} — the selection from the pieces
// visualization view.
func (c *CompositionController) Enter(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SKUs []string `json:"skus"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	c.composition.Enter(r.Context(), body.SKUs)

	snapshot := c.composition.Snapshot()
	if snapshot.Phase == state.PhaseError {
		writeError(w, http.StatusUnprocessableEntity, snapshot.Error)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// Snapshot handles GET /admin/composite
func (c *CompositionController) Snapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.composition.Snapshot())
}

// Move handles POST /admin/composite/move
// Body: {"from": i, "to": j} — splice semantics, then recompose.
func (c *CompositionController) Move(w http.ResponseWriter, r *http.Request) {
	var body struct {
		From int `json:"from"`
		To   int `json:"to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	if err := c.composition.MoveLayer(r.Context(), body.From, body.To); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, c.composition.Snapshot())
}

// Remove handles DELETE /admin/composite/layers/{id}
func (c *CompositionController) Remove(w http.ResponseWriter, r *http.Request) {
	c.composition.RemoveLayer(r.Context(), chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, c.composition.Snapshot())
}

// Download handles GET /admin/composite/download and serves the current
// composite PNG. No composite means nothing to download.
func (c *CompositionController) Download(w http.ResponseWriter, r *http.Request) {
	image, ok := c.composition.Image()
	if !ok {
		writeError(w, http.StatusNotFound, "Nenhuma visualização gerada.")
		return
	}

	fileName := fmt.Sprintf("fanation-%s.png", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	w.Write(image)
}
