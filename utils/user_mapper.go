package utils

import (
	"fmt"
	"strings"

	"fanation-admin/models"
)

// MapAPIDataToUser converts a remote user record to the User view model.
func MapAPIDataToUser(item models.UserAPIData) models.User {
	user := models.User{
		ID:          item.ID,
		Name:        item.Name,
		Role:        item.Role,
		Description: item.Description,
		CreatedAt:   parseAPITime(item.CreatedAt),
		CreatedBy:   item.CreatedBy,
		CreatorName: item.CreatorName,
	}
	if item.UpdatedAt != "" {
		t := parseAPITime(item.UpdatedAt)
		if !t.IsZero() {
			user.UpdatedAt = &t
		}
	}
	return user
}

// MapAPIDataToUsers converts a list of remote user records.
func MapAPIDataToUsers(items []models.UserAPIData) []models.User {
	users := make([]models.User, 0, len(items))
	for _, item := range items {
		users = append(users, MapAPIDataToUser(item))
	}
	return users
}

// MapUserDataToAPI converts user form input to the create payload,
// validating required fields.
func MapUserDataToAPI(data models.CreateUserData) (*models.UserCreateData, error) {
	if strings.TrimSpace(data.Name) == "" {
		return nil, fmt.Errorf("nome do usuário é obrigatório")
	}
	if strings.TrimSpace(data.Password) == "" {
		return nil, fmt.Errorf("senha é obrigatória")
	}
	if len(data.Password) < 4 {
		return nil, fmt.Errorf("senha deve ter pelo menos 4 caracteres")
	}

	return &models.UserCreateData{
		Name:        data.Name,
		Password:    data.Password,
		Description: data.Description,
	}, nil
}

// MapUserUpdateToAPI converts a partial user update to the outgoing payload.
func MapUserUpdateToAPI(data models.UpdateUserData) (*models.UserUpdateData, error) {
	if data.UserID == "" {
		return nil, fmt.Errorf("ID do usuário é obrigatório")
	}
	if data.Name != nil && strings.TrimSpace(*data.Name) == "" {
		return nil, fmt.Errorf("nome não pode estar vazio")
	}

	return &models.UserUpdateData{
		UserID:      data.UserID,
		Name:        data.Name,
		Description: data.Description,
	}, nil
}

// PaginateUsers applies local pagination to the full user list, since the
// remote API returns all users unpaginated.
func PaginateUsers(users []models.User, page, limit int) models.UserListResponse {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total := len(users)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return models.UserListResponse{
		Users:      users[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
