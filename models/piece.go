package models

import "time"

// PieceStatus is the human-facing status badge of a piece.
type PieceStatus string

const (
	StatusActive   PieceStatus = "Ativo"
	StatusInactive PieceStatus = "Inativo"
	// StatusExpired exists in the product model but no server field derives
	// it today. It is never produced by the mappers.
	StatusExpired PieceStatus = "Expirado"
)

// Piece is the client-side view model for a recorte (die-cut pattern piece).
// The server owns the record; this is a per-request projection.
type Piece struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	SKU           string      `json:"sku"`
	ProductType   string      `json:"productType"`
	DisplayOrder  int         `json:"displayOrder"`
	Status        PieceStatus `json:"status"`
	CutType       string      `json:"cutType,omitempty"`
	Position      string      `json:"position,omitempty"`
	Material      string      `json:"material,omitempty"`
	MaterialColor string      `json:"materialColor,omitempty"`
	ImageURL      string      `json:"imageUrl,omitempty"`
	IsActive      bool        `json:"isActive"`
	CreatedAt     time.Time   `json:"createdAt,omitempty"`
	UpdatedAt     time.Time   `json:"updatedAt,omitempty"`
}

// PieceListResponse is the paginated list view model returned to the dashboard.
type PieceListResponse struct {
	Pieces     []Piece `json:"pieces"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"totalPages"`
}

// CreatePieceData carries the piece form input.
type CreatePieceData struct {
	Title         string `json:"title"`
	SKU           string `json:"sku"`
	DisplayOrder  int    `json:"displayOrder"`
	CutType       string `json:"cutType"`
	Position      string `json:"position"`
	ProductType   string `json:"productType"`
	Material      string `json:"material"`
	MaterialColor string `json:"materialColor"`
	ImageURL      string `json:"imageUrl"`
	IsActive      *bool  `json:"isActive,omitempty"`
}

// UpdatePieceData is a partial update: nil fields are left untouched
// server-side and must never appear in the outgoing payload.
type UpdatePieceData struct {
	Title         *string `json:"title,omitempty"`
	DisplayOrder  *int    `json:"displayOrder,omitempty"`
	CutType       *string `json:"cutType,omitempty"`
	Position      *string `json:"position,omitempty"`
	ProductType   *string `json:"productType,omitempty"`
	Material      *string `json:"material,omitempty"`
	MaterialColor *string `json:"materialColor,omitempty"`
	ImageURL      *string `json:"imageUrl,omitempty"`
	IsActive      *bool   `json:"isActive,omitempty"`
}

// PieceCounts holds the aggregate tab counts for the pieces list view.
type PieceCounts struct {
	Total    int `json:"todos"`
	Active   int `json:"ativos"`
	Inactive int `json:"inativos"`
}
