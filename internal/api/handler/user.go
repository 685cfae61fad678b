// internal/api/handler/user.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"payline/internal/domain"
	"payline/internal/service"
	"payline/internal/util"
)

// UserHandler handles login, profile and admin user management.
type UserHandler struct {
	baseHandler
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authSvc service.AuthService, userSvc service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		baseHandler: baseHandler{authService: authSvc, logger: logger},
		userService: userSvc,
	}
}

// AuthRequest represents the login request body.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileResponse is the user view returned by GET /user.
// The password digest is never exposed.
type ProfileResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func profileOf(user *domain.User) ProfileResponse {
	return ProfileResponse{ID: user.ID, Username: user.Username, Email: user.Email}
}

// Auth handles the login request.
// POST /user/auth
func (h *UserHandler) Auth(w http.ResponseWriter, r *http.Request) {
	var req AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}
	if req.Email == "" || req.Password == "" {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	token, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	h.respondWithJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Get handles the profile request: the caller's own profile, or with ?id=
// (admin only) any user's profile.
// GET /user
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.sessionUser(r)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		h.respondWithJSON(w, http.StatusOK, profileOf(user))
		return
	}

	if err := h.authService.RequireAdmin(user); err != nil {
		h.respondWithError(w, err)
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}
	target, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, profileOf(target))
}

// CreateUserRequest represents the admin create/update request body.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Create handles admin user creation.
// PUT /user
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, err := h.adminUser(r); err != nil {
		h.respondWithError(w, err)
		return
	}

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	user, err := h.userService.CreateUser(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, profileOf(user))
}

// Update handles admin user updates.
// POST /user/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, err := h.adminUser(r); err != nil {
		h.respondWithError(w, err)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), id, req.Username, req.Email, req.Password)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, profileOf(user))
}

// Delete handles admin user deletion; the user's session row goes with it.
// DELETE /user/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.adminUser(r); err != nil {
		h.respondWithError(w, err)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	if err := h.userService.DeleteUser(r.Context(), id); err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
}

// List handles the admin user listing.
// GET /users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, err := h.adminUser(r); err != nil {
		h.respondWithError(w, err)
		return
	}

	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	profiles := make([]ProfileResponse, 0, len(users))
	for i := range users {
		profiles = append(profiles, profileOf(&users[i]))
	}
	h.respondWithJSON(w, http.StatusOK, profiles)
}
