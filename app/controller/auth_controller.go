package controller

import (
	"encoding/json"
	"net/http"

	"fanation-admin/models"
	"fanation-admin/service"
)

// AuthController handles HTTP requests for the session lifecycle.
type AuthController struct {
	sessions service.SessionServiceInterface
}

// NewAuthController creates a new AuthController
func NewAuthController(sessions service.SessionServiceInterface) *AuthController {
	return &AuthController{sessions: sessions}
}

// Login handles POST /login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	// Authenticated users are sent away from the login view.
	if c.sessions.IsAuthenticated() {
		writeJSON(w, http.StatusOK, map[string]string{"redirect": "/"})
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "Senha é obrigatória")
		return
	}

	if err := c.sessions.SignIn(r.Context(), req.Password); err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, c.sessions.Session())
}

// Logout handles POST /logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	c.sessions.SignOut()
	writeJSON(w, http.StatusOK, map[string]string{"redirect": "/login"})
}

// Me handles GET /me and returns the current session, including the
// neutral validating state during startup token validation.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.sessions.Session())
}
