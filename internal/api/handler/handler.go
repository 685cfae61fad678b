// internal/api/handler/handler.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"payline/internal/domain"
	"payline/internal/service"
	"payline/internal/util"
)

// DefaultTimeout bounds request handling at the router level.
const DefaultTimeout = 15 * time.Second

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "cookie"

// baseHandler carries the pieces every handler needs: the session resolver
// and the response helpers.
type baseHandler struct {
	authService service.AuthService
	logger      *slog.Logger
}

// respondWithJSON sends a JSON response.
func (h *baseHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps service errors to transport status codes. Every
// authentication failure produces the same 401 body; webhook rejections keep
// their distinct messages because the caller is a trusted integration.
func (h *baseHandler) respondWithError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrUnauthenticated):
		statusCode = http.StatusUnauthorized
		message = "Unauthenticated"
	case util.IsError(err, util.ErrForbidden):
		statusCode = http.StatusForbidden
		message = "Access denied"
	case util.IsError(err, util.ErrNotFound), util.IsError(err, util.ErrUserNotFound):
		statusCode = http.StatusNotFound
		message = err.Error()
	case util.IsError(err, util.ErrDuplicateEmail),
		util.IsError(err, util.ErrInvalidSignature),
		util.IsError(err, util.ErrOwnershipMismatch):
		statusCode = http.StatusConflict
		message = err.Error()
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = err.Error()
	default:
		h.logger.Error("Unhandled service error", "error", err)
	}

	h.respondWithJSON(w, statusCode, map[string]string{"error": message})
}

// sessionUser resolves the request's session cookie to a user. An absent
// cookie is handled the same as an invalid one.
func (h *baseHandler) sessionUser(r *http.Request) (*domain.User, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return h.authService.ResolveSession(r.Context(), "")
	}
	return h.authService.ResolveSession(r.Context(), cookie.Value)
}

// adminUser resolves the session and additionally requires the admin flag.
func (h *baseHandler) adminUser(r *http.Request) (*domain.User, error) {
	user, err := h.sessionUser(r)
	if err != nil {
		return nil, err
	}
	if err := h.authService.RequireAdmin(user); err != nil {
		return nil, err
	}
	return user, nil
}
