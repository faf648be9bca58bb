package utils

import (
	"fmt"
	"strings"
	"time"

	"fanation-admin/models"
)

// Defaults applied when a piece form omits a classification field.
const (
	DefaultCutType       = "frente"
	DefaultPosition      = "frente"
	DefaultProductType   = "americano"
	DefaultMaterial      = "linho"
	DefaultMaterialColor = "azul marinho"
)

// MapRecorteToPiece converts a remote recorte record to the Piece view model.
// The server's boolean status maps to the tri-state badge: true -> "Ativo",
// false -> "Inativo". "Expirado" has no server-side source field and is
// never derived here.
func MapRecorteToPiece(item models.RecorteAPIData) models.Piece {
	status := models.StatusInactive
	if item.Status {
		status = models.StatusActive
	}

	return models.Piece{
		ID:            item.ID,
		Title:         item.Nome,
		SKU:           item.SKU,
		ProductType:   item.TipoProduto,
		DisplayOrder:  item.Ordem,
		Status:        status,
		CutType:       item.TipoRecorte,
		Position:      item.Posicao,
		Material:      item.Material,
		MaterialColor: item.Cor,
		ImageURL:      item.URLImagem,
		IsActive:      item.Status,
		CreatedAt:     parseAPITime(item.CreatedAt),
		UpdatedAt:     parseAPITime(item.UpdatedAt),
	}
}

// MapRecortesToPieces converts a list of remote records.
func MapRecortesToPieces(items []models.RecorteAPIData) []models.Piece {
	pieces := make([]models.Piece, 0, len(items))
	for _, item := range items {
		pieces = append(pieces, MapRecorteToPiece(item))
	}
	return pieces
}

// MapPieceDataToRecorte converts piece form input to the create payload,
// validating required fields and applying classification defaults. The SKU
// marker is re-added before the payload is built.
func MapPieceDataToRecorte(data models.CreatePieceData) (*models.RecorteCreateData, error) {
	if strings.TrimSpace(data.Title) == "" {
		return nil, fmt.Errorf("nome do modelo é obrigatório")
	}
	if strings.TrimSpace(data.SKU) == "" {
		return nil, fmt.Errorf("SKU é obrigatório")
	}
	if strings.TrimSpace(data.ImageURL) == "" {
		return nil, fmt.Errorf("URL da imagem é obrigatória")
	}

	status := true
	if data.IsActive != nil {
		status = *data.IsActive
	}

	return &models.RecorteCreateData{
		Nome:        data.Title,
		Ordem:       data.DisplayOrder,
		SKU:         FormatSKU(data.SKU),
		TipoRecorte: defaultIfEmpty(data.CutType, DefaultCutType),
		Posicao:     defaultIfEmpty(data.Position, DefaultPosition),
		TipoProduto: defaultIfEmpty(data.ProductType, DefaultProductType),
		Material:    defaultIfEmpty(data.Material, DefaultMaterial),
		Cor:         defaultIfEmpty(data.MaterialColor, DefaultMaterialColor),
		URLImagem:   data.ImageURL,
		Status:      status,
	}, nil
}

// MapPieceUpdateToRecorte converts a partial update to the outgoing payload.
// Only fields set on the input are forwarded; omitted fields stay untouched
// server-side.
func MapPieceUpdateToRecorte(data models.UpdatePieceData) models.RecorteUpdateData {
	out := models.RecorteUpdateData{
		Ordem:       data.DisplayOrder,
		TipoRecorte: data.CutType,
		Posicao:     data.Position,
		TipoProduto: data.ProductType,
		Material:    data.Material,
		Cor:         data.MaterialColor,
		URLImagem:   data.ImageURL,
		Status:      data.IsActive,
	}
	// An explicitly empty title would erase the name; treat it as absent.
	if data.Title != nil && *data.Title != "" {
		out.Nome = data.Title
	}
	return out
}

func defaultIfEmpty(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// parseAPITime parses the RFC 3339 timestamps the remote API emits.
// Unparseable or empty values yield the zero time.
func parseAPITime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
