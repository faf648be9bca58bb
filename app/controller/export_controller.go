package controller

import (
	"fmt"
	"net/http"
	"time"

	"fanation-admin/client"
	"fanation-admin/models"
	"fanation-admin/service"
)

// catalogSheetLimit caps how many pieces a single exported sheet fetches.
const catalogSheetLimit = 90

// ExportController handles HTTP requests for catalog sheet export.
type ExportController struct {
	api    client.RecortesAPI
	export service.ExportServiceInterface
}

// NewExportController creates a new ExportController
func NewExportController(api client.RecortesAPI, export service.ExportServiceInterface) *ExportController {
	return &ExportController{api: api, export: export}
}

// Render handles GET /admin/catalog/render
// Returns the contact-sheet HTML for the filtered pieces; headless Chrome
// visits this page during export.
func (c *ExportController) Render(w http.ResponseWriter, r *http.Request) {
	pieces, err := c.fetchPieces(r)
	if err != nil {
		writeError(w, apiStatus(err, http.StatusBadGateway), err.Error())
		return
	}

	html, err := c.export.RenderCatalogHTML(r.Context(), pieces)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro ao gerar o catálogo")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// Export handles GET /admin/catalog/export and serves the rendered sheet
// as a PNG download. The query string is forwarded to the render page so
// the export matches the current filters.
func (c *ExportController) Export(w http.ResponseWriter, r *http.Request) {
	png, err := c.export.GeneratePNG(r.Context(), r.URL.RawQuery)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro ao exportar o catálogo")
		return
	}

	fileName := fmt.Sprintf("fanation-catalogo-%s.png", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// ExportPDF handles GET /admin/catalog/export.pdf and serves the rendered
// sheet as an A4 PDF download.
func (c *ExportController) ExportPDF(w http.ResponseWriter, r *http.Request) {
	pdf, err := c.export.GeneratePDF(r.Context(), r.URL.RawQuery)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro ao exportar o catálogo")
		return
	}

	fileName := fmt.Sprintf("fanation-catalogo-%s.pdf", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

func (c *ExportController) fetchPieces(r *http.Request) ([]models.Piece, error) {
	query := r.URL.Query()
	params := models.RecortesParams{
		Page:        1,
		Limit:       catalogSheetLimit,
		Search:      query.Get("search"),
		SortBy:      "ordem",
		SortOrder:   "asc",
		TipoRecorte: query.Get("tipoRecorte"),
		TipoProduto: query.Get("tipoProduto"),
		Material:    query.Get("material"),
		Cor:         query.Get("cor"),
	}
	switch query.Get("tab") {
	case "ativos":
		active := true
		params.Status = &active
	case "inativos":
		inactive := false
		params.Status = &inactive
	}

	resp, err := c.api.ListRecortes(r.Context(), params)
	if err != nil {
		return nil, err
	}
	return resp.Pieces, nil
}
