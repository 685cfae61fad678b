// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"payline/internal/api/handler"
)

// NewRouter sets up and returns the HTTP router.
func NewRouter(
	userHandler *handler.UserHandler,
	accountHandler *handler.AccountHandler,
	paymentHandler *handler.PaymentHandler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Login and profile
	r.Post("/user/auth", userHandler.Auth)
	r.Get("/user", userHandler.Get)

	// Admin user management
	r.Put("/user", userHandler.Create)
	r.Post("/user/{id}", userHandler.Update)
	r.Delete("/user/{id}", userHandler.Delete)
	r.Get("/users", userHandler.List)

	// Accounts
	r.Get("/accounts", accountHandler.List)
	r.Get("/user/{id}/accounts", accountHandler.ListForUser)

	// Payments
	r.Get("/payment", paymentHandler.List)
	r.Post("/webhook/payment", paymentHandler.Webhook)

	return r
}
