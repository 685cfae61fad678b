// internal/service/user_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"payline/internal/auth"
	"payline/internal/domain"
	"payline/internal/repository"
	"payline/internal/util"
	"payline/pkg/db"
)

// UserService defines the interface for admin user management.
// Admin gating itself happens at the handler layer via AuthService.
type UserService interface {
	CreateUser(ctx context.Context, username, email, password string) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	UpdateUser(ctx context.Context, id int64, username, email, password string) (*domain.User, error)
	// DeleteUser removes the user and cascades their session row in one
	// database transaction, so a crash cannot leave a live session for a
	// deleted user. Accounts and payments are append-only history and stay.
	DeleteUser(ctx context.Context, id int64) error
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// userService implements the UserService interface.
type userService struct {
	dbBeginner  db.DBTxBeginner
	dbExecutor  repository.DBExecutor
	codec       *auth.Codec
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	beginTx     db.BeginTxFunc
	commitTx    db.CommitTxFunc
	rollbackTx  db.RollbackTxFunc
	logger      *slog.Logger
}

// NewUserService creates a new instance of UserService.
func NewUserService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	codec *auth.Codec,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
	logger *slog.Logger,
) UserService {
	return &userService{
		dbBeginner:  dbBeginner,
		dbExecutor:  dbExecutor,
		codec:       codec,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		beginTx:     beginTx,
		commitTx:    commitTx,
		rollbackTx:  rollbackTx,
		logger:      logger,
	}
}

// CreateUser stores a new user with a hashed password. A duplicate email is
// reported as ErrDuplicateEmail; the unique index backs the pre-check, so a
// creation race still cannot produce two rows.
func (s *userService) CreateUser(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, util.ErrInvalidInput
	}

	if _, err := s.userRepo.GetUserByEmail(ctx, s.dbExecutor, email); err == nil {
		s.logger.Info("user already exists", "email", email)
		return nil, util.ErrDuplicateEmail
	} else if !util.IsError(err, util.ErrNotFound) {
		return nil, fmt.Errorf("create user: failed to check existing email: %w", err)
	}

	user := domain.NewUser(username, email, s.codec.HashPassword(password))
	if err := s.userRepo.CreateUser(ctx, s.dbExecutor, user); err != nil {
		if util.IsError(err, util.ErrDuplicateEmail) {
			return nil, util.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// GetUser retrieves one user by id.
func (s *userService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// UpdateUser replaces username, email and password of an existing user.
// The password is re-hashed; the stored digest is never updatable directly.
func (s *userService) UpdateUser(ctx context.Context, id int64, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, util.ErrInvalidInput
	}

	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("update user: failed to get user %d: %w", id, err)
	}

	user.Username = username
	user.Email = email
	user.Password = s.codec.HashPassword(password)

	if err := s.userRepo.UpdateUser(ctx, s.dbExecutor, user); err != nil {
		if util.IsError(err, util.ErrDuplicateEmail) || util.IsError(err, util.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes the user row and the user's session row atomically.
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return fmt.Errorf("delete user: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return fmt.Errorf("delete user: transaction controller does not implement DBExecutor")
	}

	if err := s.userRepo.DeleteUser(ctx, txExecutor, id); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return util.ErrNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}

	if err := s.sessionRepo.DeleteByUserID(ctx, txExecutor, id); err != nil {
		return fmt.Errorf("delete user: failed to delete session: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return fmt.Errorf("delete user: failed to commit transaction: %w", err)
	}

	s.logger.Info("user deleted", "user_id", id)
	return nil
}

// ListUsers returns all users.
func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
