// internal/repository/payment_repo.go
package repository

import (
	"context"

	"payline/internal/domain"
)

// PaymentRepository defines the interface for payment data operations.
type PaymentRepository interface {
	// CreateIfAbsent inserts a payment row keyed uniquely by transaction id.
	// If a row with that transaction id already exists the insert is a no-op
	// and nil is returned; the unique constraint is the sole de-duplication
	// mechanism for webhook retries.
	CreateIfAbsent(ctx context.Context, q DBExecutor, userID, accountID, amount int64, transactionID string) (*domain.Payment, error)
	// ListByUserID returns all payments credited to a user's accounts.
	ListByUserID(ctx context.Context, q DBExecutor, userID int64) ([]domain.Payment, error)
}
