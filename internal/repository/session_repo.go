// internal/repository/session_repo.go
package repository

import (
	"context"

	"payline/internal/domain"
)

// SessionRepository defines the interface for session data operations.
// The table holds at most one row per user; UpsertByUserID enforces the
// replace-by-key contract (a new login overwrites the previous token).
type SessionRepository interface {
	// GetByToken retrieves a session by the presented cookie token.
	GetByToken(ctx context.Context, q DBExecutor, token string) (*domain.Session, error)
	// GetByUserID retrieves the session of one user, if any.
	GetByUserID(ctx context.Context, q DBExecutor, userID int64) (*domain.Session, error)
	// UpsertByUserID creates the user's session row or replaces its token.
	UpsertByUserID(ctx context.Context, q DBExecutor, userID int64, token string) (*domain.Session, error)
	// DeleteByUserID removes the user's session row. Deleting a missing row
	// is not an error.
	DeleteByUserID(ctx context.Context, q DBExecutor, userID int64) error
}
