package models

import "time"

// User is the client-side view model for a dashboard user.
type User struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	CreatedBy   string     `json:"createdBy"`
	CreatorName string     `json:"creatorName"`
}

// UserListResponse is the paginated user list view model. The remote API
// does not paginate users, so pagination is applied locally.
type UserListResponse struct {
	Users      []User `json:"users"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"totalPages"`
}

// CreateUserData carries the user form input.
type CreateUserData struct {
	Name        string `json:"name"`
	Password    string `json:"password"`
	Description string `json:"description,omitempty"`
}

// UpdateUserData is a partial user update keyed by userId.
type UpdateUserData struct {
	UserID      string  `json:"userId"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UsersParams are the user list query parameters.
type UsersParams struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

// UserAPIData is a user record as returned by the remote API.
type UserAPIData struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
	CreatedBy   string `json:"createdBy"`
	CreatorName string `json:"creatorName"`
}

// UsersListResponse is the remote users list envelope.
type UsersListResponse struct {
	Success bool          `json:"success"`
	Users   []UserAPIData `json:"users"`
	Message string        `json:"message,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// UserResponse is the remote single-user envelope.
type UserResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// UserCreateData is the outgoing create payload.
type UserCreateData struct {
	Name        string `json:"name"`
	Password    string `json:"password"`
	Description string `json:"description,omitempty"`
}

// UserUpdateData is the outgoing update payload for PUT /users/update.
type UserUpdateData struct {
	UserID      string  `json:"userId"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UserDeleteData is the body of DELETE /users/delete.
type UserDeleteData struct {
	UserID string `json:"userId"`
}
