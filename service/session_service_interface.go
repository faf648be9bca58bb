package service

import (
	"context"

	"fanation-admin/models"
)

// SessionServiceInterface defines the contract for session lifecycle operations.
type SessionServiceInterface interface {
	InitValidate(ctx context.Context)
	SignIn(ctx context.Context, password string) error
	SignOut()
	ForceTeardown()
	Session() models.Session
	IsAuthenticated() bool
}
