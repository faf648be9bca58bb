package service

import (
	"context"

	"fanation-admin/models"
)

// ExportServiceInterface defines the contract for catalog sheet export.
type ExportServiceInterface interface {
	RenderCatalogHTML(ctx context.Context, pieces []models.Piece) (string, error)
	GeneratePNG(ctx context.Context, rawQuery string) ([]byte, error)
	GeneratePDF(ctx context.Context, rawQuery string) ([]byte, error)
}
