package service

import (
	"context"
	"fmt"
	"sync"

	"fanation-admin/client"
	"fanation-admin/models"

	"go.uber.org/zap"
)

// TokenStore is the durable side of the session: a single namespaced
// bearer-token entry.
type TokenStore interface {
	Token() string
	SetToken(token string) error
	ClearToken() error
}

// SessionService owns the session lifecycle: initial validation of a
// stored token, sign-in, sign-out and forced teardown on an authentication
// rejection. It is the only writer of the token store.
// Implements SessionServiceInterface.
type SessionService struct {
	api    client.AuthAPI
	tokens TokenStore
	logger *zap.Logger

	mu    sync.RWMutex
	state models.SessionState
	user  *models.UserInfo
}

// NewSessionService creates a new SessionService instance. The session
// starts in the validating state until InitValidate runs.
func NewSessionService(api client.AuthAPI, tokens TokenStore, logger *zap.Logger) *SessionService {
	return &SessionService{
		api:    api,
		tokens: tokens,
		logger: logger,
		state:  models.SessionValidating,
	}
}

// Ensure SessionService implements SessionServiceInterface
var _ SessionServiceInterface = (*SessionService)(nil)

// InitValidate validates the stored token on application start. While it
// runs the session stays in the neutral validating state so the guard makes
// no redirect decision. An invalid token is discarded.
func (s *SessionService) InitValidate(ctx context.Context) {
	if s.tokens.Token() == "" {
		s.setUnauthenticated()
		return
	}

	resp, err := s.api.ValidateToken(ctx)
	if err != nil || !resp.Success {
		s.logger.Info("stored token rejected, discarding", zap.Error(err))
		if err := s.tokens.ClearToken(); err != nil {
			s.logger.Error("failed to clear rejected token", zap.Error(err))
		}
		s.setUnauthenticated()
		return
	}

	s.mu.Lock()
	s.state = models.SessionAuthenticated
	user := resp.User
	s.user = &user
	s.mu.Unlock()

	s.logger.Info("session restored", zap.String("user", resp.User.Name))
}

// SignIn authenticates with the given password. On any failure the stored
// token is cleared and the session stays unauthenticated.
func (s *SessionService) SignIn(ctx context.Context, password string) error {
	resp, err := s.api.Login(ctx, password)
	if err != nil {
		s.teardown()
		return err
	}
	if !resp.Success || resp.Token == "" {
		s.teardown()
		if resp.Message != "" {
			return fmt.Errorf("%s", resp.Message)
		}
		return fmt.Errorf("erro ao fazer login")
	}

	if err := s.tokens.SetToken(resp.Token); err != nil {
		s.teardown()
		return err
	}

	s.mu.Lock()
	s.state = models.SessionAuthenticated
	user := resp.User
	s.user = &user
	s.mu.Unlock()

	s.logger.Info("signed in", zap.String("user", resp.User.Name))
	return nil
}

// SignOut discards the token and clears the in-memory user.
func (s *SessionService) SignOut() {
	s.teardown()
	s.logger.Info("signed out")
}

// ForceTeardown is the 401 hook: the stored token is discarded and the
// in-memory user cleared. In-flight unrelated requests are not cancelled.
func (s *SessionService) ForceTeardown() {
	s.teardown()
	s.logger.Warn("session torn down after authentication rejection")
}

// Session returns the current session view model.
func (s *SessionService) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Session{State: s.state, User: s.user}
}

// IsAuthenticated reports whether a user is signed in.
func (s *SessionService) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == models.SessionAuthenticated
}

func (s *SessionService) teardown() {
	if err := s.tokens.ClearToken(); err != nil {
		s.logger.Error("failed to clear token", zap.Error(err))
	}
	s.setUnauthenticated()
}

func (s *SessionService) setUnauthenticated() {
	s.mu.Lock()
	s.state = models.SessionUnauthenticated
	s.user = nil
	s.mu.Unlock()
}
