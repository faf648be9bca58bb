package client

import (
	"context"
	"io"

	"fanation-admin/models"
)

// AuthAPI defines the contract for the remote auth endpoints.
type AuthAPI interface {
	Login(ctx context.Context, password string) (*models.LoginResponse, error)
	ValidateToken(ctx context.Context) (*models.ValidateResponse, error)
}

// RecortesAPI defines the contract for the remote recortes endpoints.
type RecortesAPI interface {
	ListRecortes(ctx context.Context, params models.RecortesParams) (*models.PieceListResponse, error)
	GetRecorteByID(ctx context.Context, id string) (*models.Piece, error)
	GetRecorteBySKU(ctx context.Context, sku string) (*models.Piece, error)
	CreateRecorte(ctx context.Context, data models.CreatePieceData) (*models.Piece, error)
	UpdateRecorte(ctx context.Context, id string, data models.UpdatePieceData) (*models.Piece, error)
	UpdateRecorteImage(ctx context.Context, id, fileName string, image io.Reader) (*models.Piece, error)
	DeleteRecorte(ctx context.Context, id string) error
	UploadImage(ctx context.Context, fileName string, image io.Reader, class models.UploadClassification) (*models.UploadResult, error)
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// UsersAPI defines the contract for the remote user endpoints.
type UsersAPI interface {
	ListUsers(ctx context.Context, params models.UsersParams) (*models.UserListResponse, error)
	CreateUser(ctx context.Context, data models.CreateUserData) (string, error)
	UpdateUser(ctx context.Context, data models.UpdateUserData) error
	DeleteUser(ctx context.Context, userID string) error
}
