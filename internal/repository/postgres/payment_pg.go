// internal/repository/postgres/payment_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"payline/internal/domain"
	"payline/internal/repository"

	"github.com/jmoiron/sqlx"
)

// PaymentRepository implements repository.PaymentRepository for PostgreSQL.
type PaymentRepository struct{}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(db *sqlx.DB) repository.PaymentRepository {
	return &PaymentRepository{}
}

// CreateIfAbsent inserts a payment row unless one with the same transaction
// id already exists. The unique constraint on transaction_id serializes
// concurrent deliveries of the same webhook: exactly one insert wins and
// every other caller gets (nil, nil).
func (r *PaymentRepository) CreateIfAbsent(ctx context.Context, q repository.DBExecutor, userID, accountID, amount int64, transactionID string) (*domain.Payment, error) {
	var payment domain.Payment
	query := `INSERT INTO payment (user_id, account_id, amount, transaction_id)
              VALUES ($1, $2, $3, $4)
              ON CONFLICT (transaction_id) DO NOTHING
              RETURNING id, user_id, account_id, amount, transaction_id, created_timestamp`
	err := q.QueryRowContext(ctx, query, userID, accountID, amount, transactionID).Scan(
		&payment.ID, &payment.UserID, &payment.AccountID,
		&payment.Amount, &payment.TransactionID, &payment.CreatedTimestamp,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to create payment for transaction '%s': %w", transactionID, err)
	}
	return &payment, nil
}

// ListByUserID returns all payments credited to a user's accounts.
func (r *PaymentRepository) ListByUserID(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Payment, error) {
	payments := []domain.Payment{}
	query := `SELECT id, user_id, account_id, amount, transaction_id, created_timestamp
              FROM payment WHERE user_id = $1 ORDER BY id`
	if err := q.SelectContext(ctx, &payments, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list payments for user %d: %w", userID, err)
	}
	return payments, nil
}
