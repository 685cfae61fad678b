// internal/domain/session.go
package domain

import "time"

// Session binds a signed cookie token to one user.
// At most one session row exists per user; a new login replaces the token.
type Session struct {
	ID               int64     `db:"id" json:"id"`           // Primary key, BIGSERIAL in DB
	UserID           int64     `db:"user_id" json:"user_id"` // Unique: one live session per user
	Token            string    `db:"token" json:"token"`     // The signed cookie value
	CreatedTimestamp time.Time `db:"created_timestamp" json:"created_timestamp"`
}
