// internal/repository/postgres/account_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"payline/internal/domain"
	"payline/internal/repository"
	"payline/internal/util"

	"github.com/jmoiron/sqlx"
)

// AccountRepository implements repository.AccountRepository for PostgreSQL.
type AccountRepository struct{}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(db *sqlx.DB) repository.AccountRepository {
	return &AccountRepository{}
}

// GetByID retrieves an account by its external id.
func (r *AccountRepository) GetByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Account, error) {
	var account domain.Account
	query := `SELECT id, user_id, balance, created_timestamp FROM accounts WHERE id = $1`
	err := q.GetContext(ctx, &account, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account by ID %d: %w", id, err)
	}
	return &account, nil
}

// ListByUserID returns all accounts owned by a user.
func (r *AccountRepository) ListByUserID(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Account, error) {
	accounts := []domain.Account{}
	query := `SELECT id, user_id, balance, created_timestamp FROM accounts WHERE user_id = $1 ORDER BY id`
	if err := q.SelectContext(ctx, &accounts, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list accounts for user %d: %w", userID, err)
	}
	return accounts, nil
}

// CreateIfAbsent inserts an account with the caller-supplied id. On a
// conflicting id the insert does nothing and the existing row is fetched
// instead, so two concurrent first-webhooks for the same account converge
// on a single row and exactly one caller observes created=true.
func (r *AccountRepository) CreateIfAbsent(ctx context.Context, q repository.DBExecutor, id, userID, balance int64) (*domain.Account, bool, error) {
	var account domain.Account
	query := `INSERT INTO accounts (id, user_id, balance)
              VALUES ($1, $2, $3)
              ON CONFLICT (id) DO NOTHING
              RETURNING id, user_id, balance, created_timestamp`
	err := q.QueryRowContext(ctx, query, id, userID, balance).Scan(
		&account.ID, &account.UserID, &account.Balance, &account.CreatedTimestamp,
	)
	if err == nil {
		return &account, true, nil
	}
	if err != sql.ErrNoRows {
		return nil, false, fmt.Errorf("failed to create account %d: %w", id, err)
	}
	// Lost the race or the account already existed: return the winner's row.
	existing, err := r.GetByID(ctx, q, id)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// IncrementBalance adds delta to an account balance in a single SQL-side
// update, so concurrent credits to one account never lose updates.
func (r *AccountRepository) IncrementBalance(ctx context.Context, q repository.DBExecutor, id, delta int64) error {
	query := `UPDATE accounts SET balance = balance + $1 WHERE id = $2`
	result, err := q.ExecContext(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("failed to increment balance of account %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after crediting account %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
