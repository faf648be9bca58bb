package client

import (
	"context"
	"net/http"

	"fanation-admin/models"
)

// Ensure Client implements AuthAPI
var _ AuthAPI = (*Client)(nil)

// Login authenticates against the remote API with the given password.
func (c *Client) Login(ctx context.Context, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	body := models.LoginRequest{Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", body, &resp, "Erro ao fazer login"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ValidateToken checks the stored bearer token against the remote API.
func (c *Client) ValidateToken(ctx context.Context) (*models.ValidateResponse, error) {
	var resp models.ValidateResponse
	if err := c.doJSON(ctx, http.MethodGet, "/auth/validate", nil, &resp, "Token inválido"); err != nil {
		return nil, err
	}
	return &resp, nil
}
