package state

import (
	"context"
	"errors"
	"testing"

	"fanation-admin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUsersAPI struct {
	listFn func(ctx context.Context, params models.UsersParams) (*models.UserListResponse, error)
}

func (f *fakeUsersAPI) ListUsers(ctx context.Context, params models.UsersParams) (*models.UserListResponse, error) {
	return f.listFn(ctx, params)
}

func (f *fakeUsersAPI) CreateUser(ctx context.Context, data models.CreateUserData) (string, error) {
	return "", errors.New("not implemented")
}

func (f *fakeUsersAPI) UpdateUser(ctx context.Context, data models.UpdateUserData) error {
	return errors.New("not implemented")
}

func (f *fakeUsersAPI) DeleteUser(ctx context.Context, userID string) error {
	return errors.New("not implemented")
}

func TestUserListDefaults(t *testing.T) {
	s := NewUserListState(&fakeUsersAPI{}, zap.NewNop())

	snap := s.Snapshot()
	assert.Equal(t, SortByName, snap.SortBy)
	assert.Equal(t, SortAsc, snap.SortOrder)
	assert.Equal(t, 1, snap.Page)
}

func TestUserListLoad(t *testing.T) {
	var got models.UsersParams
	fake := &fakeUsersAPI{
		listFn: func(ctx context.Context, params models.UsersParams) (*models.UserListResponse, error) {
			got = params
			return &models.UserListResponse{
				Users:      []models.User{{ID: "u1", Name: "Ana"}},
				Total:      12,
				TotalPages: 2,
			}, nil
		},
	}
	s := NewUserListState(fake, zap.NewNop())
	s.SetSearch("  ana  ")
	s.SetPage(2)
	s.SetSort(SortByName) // toggles the default field to descending

	s.Load(context.Background())

	assert.Equal(t, "ana", got.Search, "the search term is trimmed on the wire")
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 10, got.Limit)
	assert.Equal(t, SortDesc, got.SortOrder)

	snap := s.Snapshot()
	require.Len(t, snap.Users, 1)
	assert.Equal(t, 12, snap.Total)
	assert.Empty(t, snap.Error)
}

func TestUserListLoadFailure(t *testing.T) {
	fake := &fakeUsersAPI{
		listFn: func(ctx context.Context, params models.UsersParams) (*models.UserListResponse, error) {
			return nil, errors.New("boom")
		},
	}
	s := NewUserListState(fake, zap.NewNop())

	s.Load(context.Background())

	snap := s.Snapshot()
	assert.Equal(t, "Erro ao carregar usuários. Tente novamente.", snap.Error)
	assert.Empty(t, snap.Users)
}

func TestUserListSearchResetsPage(t *testing.T) {
	s := NewUserListState(&fakeUsersAPI{}, zap.NewNop())

	s.SetPage(3)
	s.SetSearch("ana")
	assert.Equal(t, 1, s.Snapshot().Page)

	s.SetPage(2)
	s.SetSearch("ana")
	assert.Equal(t, 2, s.Snapshot().Page, "unchanged search keeps the page")
}
