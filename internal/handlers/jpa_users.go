package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"userposts-api/internal/model"
	"userposts-api/internal/store"
)

// JpaUsersHandler serves the database-backed users resource and its nested
// posts sub-resource. The route prefix stays /jpa/users for compatibility
// with clients of the original service.
type JpaUsersHandler struct {
	users *store.UserRepository
	posts *store.PostRepository
}

// NewJpaUsersHandler creates a new JpaUsersHandler.
func NewJpaUsersHandler(users *store.UserRepository, posts *store.PostRepository) *JpaUsersHandler {
	return &JpaUsersHandler{users: users, posts: posts}
}

// Routes registers the user and nested post routes on the given chi router.
func (h *JpaUsersHandler) Routes(r chi.Router) {
	r.Get("/", h.ListUsers)
	r.Post("/", h.CreateUser)
	r.Get("/{id}", h.GetUser)
	r.Delete("/{id}", h.DeleteUser)
	r.Get("/{id}/posts", h.ListPosts)
	r.Post("/{id}/posts", h.CreatePost)
	r.Get("/{id}/posts/{postID}", h.GetPost)
}

// ListUsers returns all users, posts included.
func (h *JpaUsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.FindAll(r.Context())
	if err != nil {
		serverError(w, "list users", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// GetUser returns one user wrapped with an All-Users link.
func (h *JpaUsersHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.users.FindByID(r.Context(), id)
	if err != nil {
		serverError(w, "get user", err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("id: %d", id))
		return
	}

	writeJSON(w, http.StatusOK, withAllUsersLink(*user, r))
}

// CreateUser validates and stores a new user.
func (h *JpaUsersHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := user.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	user.ID = 0
	if err := h.users.Save(r.Context(), &user); err != nil {
		serverError(w, "create user", err)
		return
	}

	w.Header().Set("Location", createdLocation(r, user.ID))
	w.WriteHeader(http.StatusCreated)
}

// DeleteUser removes a user. Deleting an absent id still answers 204; a
// referential constraint failure from the database surfaces as a 500.
func (h *JpaUsersHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.users.DeleteByID(r.Context(), id); err != nil {
		serverError(w, "delete user", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListPosts returns the posts owned by a user via an explicit query.
func (h *JpaUsersHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.users.FindByID(r.Context(), id)
	if err != nil {
		serverError(w, "list posts", err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("id: %d", id))
		return
	}

	posts, err := h.posts.FindByUserID(r.Context(), id)
	if err != nil {
		serverError(w, "list posts", err)
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// CreatePost validates and stores a new post under an existing user.
//
// No transaction spans the user read and the post write; a user deleted
// between the two leaves this insert racing against the foreign key.
func (h *JpaUsersHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	// The body is checked before the owner lookup, so an invalid post is a
	// 400 even when the user does not exist.
	var post model.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := post.Validate(); err != nil {
		writeValidationError(w, err)
		return
	}

	user, err := h.users.FindByID(r.Context(), id)
	if err != nil {
		serverError(w, "create post", err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("id: %d", id))
		return
	}

	post.ID = 0
	post.UserID = user.ID
	if err := h.posts.Save(r.Context(), &post); err != nil {
		serverError(w, "create post", err)
		return
	}

	w.Header().Set("Location", createdLocation(r, post.ID))
	w.WriteHeader(http.StatusCreated)
}

// GetPost returns one post only if it belongs to the user in the path. A
// post owned by a different user is indistinguishable from a missing one.
func (h *JpaUsersHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	postID, err := idParam(r, "postID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	post, err := h.posts.FindByIDAndUserID(r.Context(), postID, id)
	if err != nil {
		serverError(w, "get post", err)
		return
	}
	if post == nil {
		writeError(w, http.StatusNotFound,
			fmt.Sprintf("Post not found with id: %d for user with id: %d", postID, id))
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// serverError logs the underlying cause and answers a generic 500. Store
// failures are not translated further.
func serverError(w http.ResponseWriter, op string, err error) {
	log.Printf("%s: %v", op, err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}
