// internal/domain/user.go
package domain

import "time"

// User represents an account-service user.
type User struct {
	ID               int64     `db:"id" json:"id"`             // Primary key, BIGSERIAL in DB
	Username         string    `db:"username" json:"username"` // Display name
	Email            string    `db:"email" json:"email"`       // Unique login identity
	Password         string    `db:"password" json:"-"`        // Salted sha256 hex digest, never plaintext
	IsAdmin          bool      `db:"is_admin" json:"is_admin"` // Grants access to admin operations
	CreatedTimestamp time.Time `db:"created_timestamp" json:"created_timestamp"`
}

// NewUser creates a new User instance with an already-hashed password.
func NewUser(username, email, passwordDigest string) *User {
	return &User{
		Username:         username,
		Email:            email,
		Password:         passwordDigest,
		CreatedTimestamp: time.Now().UTC(),
	}
}
