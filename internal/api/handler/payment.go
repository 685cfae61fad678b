// internal/api/handler/payment.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"payline/internal/service"
	"payline/internal/util"
)

// PaymentHandler handles the payment webhook and payment history.
type PaymentHandler struct {
	baseHandler
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(authSvc service.AuthService, paymentSvc service.PaymentService, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		baseHandler:    baseHandler{authService: authSvc, logger: logger},
		paymentService: paymentSvc,
	}
}

// WebhookRequest represents the payment provider's webhook body.
type WebhookRequest struct {
	UserID        int64  `json:"user_id"`
	AccountID     int64  `json:"account_id"`
	Amount        int64  `json:"amount"`
	TransactionID string `json:"transaction_id"`
	Signature     string `json:"signature"`
}

// Webhook handles a payment notification. There is no session here: the
// HMAC-style signature is the caller's authentication. Retried deliveries
// of the same transaction id get the same 200 as the first one.
// POST /webhook/payment
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	var req WebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	err := h.paymentService.IngestPayment(r.Context(),
		req.UserID, req.AccountID, req.Amount, req.TransactionID, req.Signature)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, map[string]string{"message": "Payment accepted"})
}

// List returns the caller's payment history.
// GET /payment
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	user, err := h.sessionUser(r)
	if err != nil {
		h.respondWithError(w, err)
		return
	}

	payments, err := h.paymentService.ListPaymentsByUser(r.Context(), user.ID)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, payments)
}
