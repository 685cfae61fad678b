// internal/repository/account_repo.go
package repository

import (
	"context"

	"payline/internal/domain"
)

// AccountRepository defines the interface for account data operations.
type AccountRepository interface {
	// GetByID retrieves an account by its external id.
	GetByID(ctx context.Context, q DBExecutor, id int64) (*domain.Account, error)
	// ListByUserID returns all accounts owned by a user.
	ListByUserID(ctx context.Context, q DBExecutor, userID int64) ([]domain.Account, error)
	// CreateIfAbsent inserts an account with the caller-supplied id and
	// initial balance. If the id already exists the insert is a no-op and
	// the existing row is returned with created=false, so a caller losing a
	// creation race can still see who owns the account.
	CreateIfAbsent(ctx context.Context, q DBExecutor, id, userID, balance int64) (acct *domain.Account, created bool, err error)
	// IncrementBalance adds delta to the account balance as a single
	// SQL-side update. It must never be implemented as fetch-then-store:
	// concurrent credits to one account have to sum correctly.
	IncrementBalance(ctx context.Context, q DBExecutor, id, delta int64) error
}
