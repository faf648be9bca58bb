package state

import (
	"context"
	"strings"
	"sync"

	"fanation-admin/client"
	"fanation-admin/models"

	"go.uber.org/zap"
)

// Users sort fields.
const (
	SortByName    = "name"
	SortByRole    = "role"
	SortByCreated = "createdAt"
)

const usersPageSize = 10

// UserListViewModel is the snapshot the users view renders from.
type UserListViewModel struct {
	Users      []models.User `json:"users"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	Total      int           `json:"total"`
	SortBy     string        `json:"sortBy"`
	SortOrder  string        `json:"sortOrder"`
	SearchTerm string        `json:"searchTerm"`
	Loading    bool          `json:"loading"`
	Error      string        `json:"error,omitempty"`
}

// UserListState drives the users table with the same query rules as the
// pieces list: search changes reset the page, sort changes toggle
// direction, stale responses are dropped by generation.
type UserListState struct {
	api    client.UsersAPI
	logger *zap.Logger

	mu         sync.Mutex
	query      Query
	searchTerm string

	users      []models.User
	total      int
	totalPages int

	loading    bool
	errMsg     string
	generation uint64
}

// NewUserListState creates a users list state sorted by name ascending.
func NewUserListState(api client.UsersAPI, logger *zap.Logger) *UserListState {
	return &UserListState{
		api:    api,
		logger: logger,
		query:  NewQuery(SortByName),
	}
}

// SetSearch updates the search term, resetting the page when it changes.
func (s *UserListState) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if term == s.searchTerm {
		return
	}
	s.searchTerm = term
	s.query.SetPage(1)
}

// SetPage navigates to a page.
func (s *UserListState) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.SetPage(page)
}

// SetSort selects or toggles a sort field.
func (s *UserListState) SetSort(field string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query.SetSort(field)
}

// Load fetches the user list and applies it unless superseded.
func (s *UserListState) Load(ctx context.Context) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.loading = true
	s.errMsg = ""
	params := models.UsersParams{
		Page:      s.query.Page,
		Limit:     usersPageSize,
		SortBy:    s.query.SortBy,
		SortOrder: s.query.SortOrder,
		Search:    strings.TrimSpace(s.searchTerm),
	}
	s.mu.Unlock()

	resp, err := s.api.ListUsers(ctx, params)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return
	}
	s.loading = false
	if err != nil {
		s.logger.Warn("failed to load users", zap.Error(err))
		s.errMsg = "Erro ao carregar usuários. Tente novamente."
		s.users = nil
		s.total = 0
		s.totalPages = 0
		return
	}
	s.users = resp.Users
	s.total = resp.Total
	s.totalPages = resp.TotalPages
}

// Snapshot returns the current view model.
func (s *UserListState) Snapshot() UserListViewModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return UserListViewModel{
		Users:      s.users,
		Page:       s.query.Page,
		TotalPages: s.totalPages,
		Total:      s.total,
		SortBy:     s.query.SortBy,
		SortOrder:  s.query.SortOrder,
		SearchTerm: s.searchTerm,
		Loading:    s.loading,
		Error:      s.errMsg,
	}
}
