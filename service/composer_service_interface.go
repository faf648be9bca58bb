package service

import (
	"context"

	"fanation-admin/models"
)

// ComposerServiceInterface defines the contract for composite rendering.
type ComposerServiceInterface interface {
	Compose(ctx context.Context, pieces []models.Piece) ([]byte, error)
}
