package models

// UserInfo is the authenticated-user subset carried in the session.
type UserInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse is the remote login envelope.
type LoginResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token"`
	User    UserInfo `json:"user"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// ValidateResponse is the remote token-validation envelope.
type ValidateResponse struct {
	Success bool     `json:"success"`
	User    UserInfo `json:"user"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// SessionState describes the session lifecycle phase.
type SessionState string

const (
	// SessionValidating is the neutral state while the stored token is being
	// validated on startup; no redirect decision may be taken yet.
	SessionValidating      SessionState = "validating"
	SessionAuthenticated   SessionState = "authenticated"
	SessionUnauthenticated SessionState = "unauthenticated"
)

// Session is the current session view model.
type Session struct {
	State SessionState `json:"state"`
	User  *UserInfo    `json:"user,omitempty"`
}
