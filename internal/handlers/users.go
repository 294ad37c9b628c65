package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"userposts-api/internal/model"
	"userposts-api/internal/store"
)

// UsersHandler serves the in-memory users resource.
type UsersHandler struct {
	store *store.MemoryStore
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(s *store.MemoryStore) *UsersHandler {
	return &UsersHandler{store: s}
}

// Routes registers the user routes on the given chi router.
func (h *UsersHandler) Routes(r chi.Router) {
	r.Get("/", h.ListUsers)
	r.Post("/", h.CreateUser)
	r.Get("/{id}", h.GetUser)
	r.Delete("/{id}", h.DeleteUser)
}

// ListUsers returns all users.
func (h *UsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.FindAll())
}

// GetUser returns one user wrapped with an All-Users link.
func (h *UsersHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user := h.store.FindOne(id)
	if user == nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("id: %d", id))
		return
	}

	writeJSON(w, http.StatusOK, withAllUsersLink(*user, r))
}

// CreateUser validates and stores a new user, answering 201 with an empty
// body and a Location header pointing at the new resource.
func (h *UsersHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := user.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	// Ids are server-assigned; a client-supplied id must never collide with
	// an existing user.
	user.ID = 0
	saved := h.store.Save(&user)

	w.Header().Set("Location", createdLocation(r, saved.ID))
	w.WriteHeader(http.StatusCreated)
}

// DeleteUser removes a user. Deleting an absent id still answers 204.
func (h *UsersHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	h.store.DeleteByID(id)
	w.WriteHeader(http.StatusNoContent)
}
