package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"fanation-admin/models"
	"fanation-admin/utils"
)

// Ensure Client implements UsersAPI
var _ UsersAPI = (*Client)(nil)

// ListUsers lists users with search and sorting. The remote API does not
// paginate users, so pagination is applied locally.
func (c *Client) ListUsers(ctx context.Context, params models.UsersParams) (*models.UserListResponse, error) {
	query := url.Values{}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	if params.SortBy != "" {
		query.Set("sortBy", params.SortBy)
	}
	if params.SortOrder != "" {
		query.Set("sortOrder", params.SortOrder)
	}

	path := "/users"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp models.UsersListResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp, "Erro ao buscar usuários"); err != nil {
		return nil, err
	}

	users := utils.MapAPIDataToUsers(resp.Users)
	result := utils.PaginateUsers(users, params.Page, params.Limit)
	return &result, nil
}

// CreateUser creates a user and returns the new user's id.
func (c *Client) CreateUser(ctx context.Context, data models.CreateUserData) (string, error) {
	payload, err := utils.MapUserDataToAPI(data)
	if err != nil {
		return "", err
	}

	var resp models.UserResponse
	if err := c.doJSON(ctx, http.MethodPost, "/users", payload, &resp, "Erro ao criar usuário"); err != nil {
		return "", err
	}
	if resp.UserID == "" {
		return "", fmt.Errorf("erro ao criar usuário: ID não retornado")
	}
	return resp.UserID, nil
}

// UpdateUser applies a partial user update via PUT /users/update.
func (c *Client) UpdateUser(ctx context.Context, data models.UpdateUserData) error {
	payload, err := utils.MapUserUpdateToAPI(data)
	if err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPut, "/users/update", payload, nil, "Erro ao atualizar usuário")
}

// DeleteUser deletes a user via DELETE /users/delete.
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("ID do usuário é obrigatório")
	}
	body := models.UserDeleteData{UserID: userID}
	return c.doJSON(ctx, http.MethodDelete, "/users/delete", body, nil, "Erro ao deletar usuário")
}
