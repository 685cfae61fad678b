// internal/repository/postgres/session_pg.go
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

// SessionRepository implements repository.SessionRepository for PostgreSQL.
type SessionRepository struct{}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(db *sqlx.DB) repository.SessionRepository {
	return &SessionRepository{}
}

// GetByToken retrieves a session by the presented cookie token.
func (r *SessionRepository) GetByToken(ctx context.Context, q repository.DBExecutor, token string) (*domain.Session, error) {
	var session domain.Session
	query := `SELECT id, user_id, token, created_timestamp FROM user_sessions WHERE token = $1`
	err := q.GetContext(ctx, &session, query, token)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session by token: %w", err)
	}
	return &session, nil
}

// GetByUserID retrieves the session of one user, if any.
func (r *SessionRepository) GetByUserID(ctx context.Context, q repository.DBExecutor, userID int64) (*domain.Session, error) {
	var session domain.Session
	query := `SELECT id, user_id, token, created_timestamp FROM user_sessions WHERE user_id = $1`
	err := q.GetContext(ctx, &session, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session by user ID %d: %w", userID, err)
	}
	return &session, nil
}

// UpsertByUserID creates the user's session row or replaces its token.
// user_id is unique, so a second login simply swaps the stored token and
// invalidates the previous cookie.
func (r *SessionRepository) UpsertByUserID(ctx context.Context, q repository.DBExecutor, userID int64, token string) (*domain.Session, error) {
	var session domain.Session
	query := `INSERT INTO user_sessions (user_id, token)
              VALUES ($1, $2)
              ON CONFLICT (user_id) DO UPDATE SET token = EXCLUDED.token
              RETURNING id, user_id, token, created_timestamp`
	err := q.QueryRowContext(ctx, query, userID, token).Scan(
		&session.ID, &session.UserID, &session.Token, &session.CreatedTimestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert session for user %d: %w", userID, err)
	}
	return &session, nil
}

// DeleteByUserID removes the user's session row; a missing row is not an error.
func (r *SessionRepository) DeleteByUserID(ctx context.Context, q repository.DBExecutor, userID int64) error {
	query := `DELETE FROM user_sessions WHERE user_id = $1`
	if _, err := q.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to delete session for user %d: %w", userID, err)
	}
	return nil
}
