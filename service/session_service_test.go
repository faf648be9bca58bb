package service

import (
	"context"
	"errors"
	"testing"

	"fanation-admin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryTokenStore struct {
	token string
}

func (m *memoryTokenStore) Token() string { return m.token }

func (m *memoryTokenStore) SetToken(token string) error {
	m.token = token
	return nil
}

func (m *memoryTokenStore) ClearToken() error {
	m.token = ""
	return nil
}

type fakeAuthAPI struct {
	loginResp    *models.LoginResponse
	loginErr     error
	validateResp *models.ValidateResponse
	validateErr  error
}

func (f *fakeAuthAPI) Login(ctx context.Context, password string) (*models.LoginResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuthAPI) ValidateToken(ctx context.Context) (*models.ValidateResponse, error) {
	return f.validateResp, f.validateErr
}

func TestSessionStartsValidating(t *testing.T) {
	s := NewSessionService(&fakeAuthAPI{}, &memoryTokenStore{}, zap.NewNop())
	assert.Equal(t, models.SessionValidating, s.Session().State)
	assert.False(t, s.IsAuthenticated())
}

func TestInitValidateNoStoredToken(t *testing.T) {
	s := NewSessionService(&fakeAuthAPI{}, &memoryTokenStore{}, zap.NewNop())

	s.InitValidate(context.Background())

	assert.Equal(t, models.SessionUnauthenticated, s.Session().State)
}

func TestInitValidateRestoresSession(t *testing.T) {
	api := &fakeAuthAPI{
		validateResp: &models.ValidateResponse{
			Success: true,
			User:    models.UserInfo{ID: "u1", Name: "Ana"},
		},
	}
	tokens := &memoryTokenStore{token: "tk-1"}
	s := NewSessionService(api, tokens, zap.NewNop())

	s.InitValidate(context.Background())

	assert.True(t, s.IsAuthenticated())
	session := s.Session()
	require.NotNil(t, session.User)
	assert.Equal(t, "Ana", session.User.Name)
	assert.Equal(t, "tk-1", tokens.token, "a valid token is kept")
}

func TestInitValidateDiscardsRejectedToken(t *testing.T) {
	api := &fakeAuthAPI{validateResp: &models.ValidateResponse{Success: false}}
	tokens := &memoryTokenStore{token: "tk-stale"}
	s := NewSessionService(api, tokens, zap.NewNop())

	s.InitValidate(context.Background())

	assert.Equal(t, models.SessionUnauthenticated, s.Session().State)
	assert.Empty(t, tokens.token, "a rejected token is discarded")
}

func TestInitValidateNetworkFailureDiscardsToken(t *testing.T) {
	api := &fakeAuthAPI{validateErr: errors.New("connection refused")}
	tokens := &memoryTokenStore{token: "tk-stale"}
	s := NewSessionService(api, tokens, zap.NewNop())

	s.InitValidate(context.Background())

	assert.Equal(t, models.SessionUnauthenticated, s.Session().State)
	assert.Empty(t, tokens.token)
}

func TestSignIn(t *testing.T) {
	api := &fakeAuthAPI{
		loginResp: &models.LoginResponse{
			Success: true,
			Token:   "tk-new",
			User:    models.UserInfo{ID: "u1", Name: "Ana"},
		},
	}
	tokens := &memoryTokenStore{}
	s := NewSessionService(api, tokens, zap.NewNop())

	require.NoError(t, s.SignIn(context.Background(), "senha"))

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "tk-new", tokens.token)
}

func TestSignInFailureLeavesNoToken(t *testing.T) {
	api := &fakeAuthAPI{
		loginResp: &models.LoginResponse{Success: false, Message: "Senha incorreta"},
	}
	tokens := &memoryTokenStore{token: "tk-old"}
	s := NewSessionService(api, tokens, zap.NewNop())

	err := s.SignIn(context.Background(), "errada")

	require.Error(t, err)
	assert.Equal(t, "Senha incorreta", err.Error(), "the remote message is surfaced")
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, tokens.token, "a failed sign-in clears any stored token")
}

func TestSignInNetworkFailure(t *testing.T) {
	api := &fakeAuthAPI{loginErr: errors.New("timeout")}
	tokens := &memoryTokenStore{token: "tk-old"}
	s := NewSessionService(api, tokens, zap.NewNop())

	assert.Error(t, s.SignIn(context.Background(), "senha"))
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, tokens.token)
}

func TestSignOut(t *testing.T) {
	api := &fakeAuthAPI{
		loginResp: &models.LoginResponse{Success: true, Token: "tk", User: models.UserInfo{Name: "Ana"}},
	}
	tokens := &memoryTokenStore{}
	s := NewSessionService(api, tokens, zap.NewNop())
	require.NoError(t, s.SignIn(context.Background(), "senha"))

	s.SignOut()

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, tokens.token)
	assert.Nil(t, s.Session().User)
}

func TestForceTeardown(t *testing.T) {
	api := &fakeAuthAPI{
		loginResp: &models.LoginResponse{Success: true, Token: "tk", User: models.UserInfo{Name: "Ana"}},
	}
	tokens := &memoryTokenStore{}
	s := NewSessionService(api, tokens, zap.NewNop())
	require.NoError(t, s.SignIn(context.Background(), "senha"))

	s.ForceTeardown()

	assert.Equal(t, models.SessionUnauthenticated, s.Session().State)
	assert.Empty(t, tokens.token)
}
