// internal/api/handler/account.go
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"payline/internal/service"
	"payline/internal/util"
)

// AccountHandler handles account queries.
type AccountHandler struct {
	baseHandler
	accountService service.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(authSvc service.AuthService, accountSvc service.AccountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		baseHandler:    baseHandler{authService: authSvc, logger: logger},
		accountService: accountSvc,
	}
}

// List returns the caller's own accounts.
// GET /accounts
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	user, err := h.sessionUser(r)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	accounts, err := h.accountService.ListAccounts(r.Context(), user.ID)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, accounts)
}

// ListForUser returns the accounts of an arbitrary user, admin only.
// GET /user/{id}/accounts
func (h *AccountHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	if _, err := h.adminUser(r); err != nil {
		h.respondWithError(w, err)
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	accounts, err := h.accountService.ListUserAccounts(r.Context(), id)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, accounts)
}
