// internal/repository/user_repo.go
package repository

import (
	"context"

	"payline/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser inserts a new user using the provided DBExecutor.
	// A duplicate email reports util.ErrDuplicateEmail.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetUserByID retrieves a user by primary id.
	GetUserByID(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
	// GetUserByEmail retrieves a user by their unique email.
	GetUserByEmail(ctx context.Context, q DBExecutor, email string) (*domain.User, error)
	// UpdateUser replaces username, email and password digest of an existing user.
	UpdateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// DeleteUser removes a user row by id.
	DeleteUser(ctx context.Context, q DBExecutor, id int64) error
	// ListUsers returns all users.
	ListUsers(ctx context.Context, q DBExecutor) ([]domain.User, error)
}
