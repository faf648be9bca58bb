package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fanation-admin/client"
	"fanation-admin/models"
	"fanation-admin/state"

	"github.com/go-chi/chi/v5"
)

// UserController handles HTTP requests for user management.
type UserController struct {
	api  client.UsersAPI
	list *state.UserListState
}

// NewUserController creates a new UserController
func NewUserController(api client.UsersAPI, list *state.UserListState) *UserController {
	return &UserController{api: api, list: list}
}

// List handles GET /admin/users
// Query parameters mutate the list state before the fetch: search, page,
// sort (toggle on re-select).
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if query.Has("search") {
		c.list.SetSearch(query.Get("search"))
	}
	if query.Has("sort") {
		c.list.SetSort(query.Get("sort"))
	}
	if query.Has("page") {
		if page, err := strconv.Atoi(query.Get("page")); err == nil {
			c.list.SetPage(page)
		}
	}

	c.list.Load(r.Context())

	snapshot := c.list.Snapshot()
	if snapshot.Error != "" {
		writeError(w, http.StatusBadGateway, snapshot.Error)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// Create handles POST /admin/users
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var data models.CreateUserData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	userID, err := c.api.CreateUser(r.Context(), data)
	if err != nil {
		writeError(w, apiStatus(err, http.StatusBadRequest), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"userId": userID})
}

// Update handles PUT /admin/users/{id}
func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	var data models.UpdateUserData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		writeError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	data.UserID = chi.URLParam(r, "id")

	if err := c.api.UpdateUser(r.Context(), data); err != nil {
		writeError(w, apiStatus(err, http.StatusBadRequest), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"userId": data.UserID})
}

// Delete handles DELETE /admin/users/{id}
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if err := c.api.DeleteUser(r.Context(), userID); err != nil {
		writeError(w, apiStatus(err, http.StatusBadGateway), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"userId": userID})
}
