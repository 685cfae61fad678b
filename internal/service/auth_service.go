// internal/service/auth_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"payline/internal/auth"
	"payline/internal/domain"
	"payline/internal/repository"
	"payline/internal/util"
)

// AuthService defines the interface for authentication business logic.
type AuthService interface {
	// Authenticate checks credentials and, on success, signs a session token
	// and upserts the user's session row (replacing any previous token).
	Authenticate(ctx context.Context, email, password string) (string, error)
	// ResolveSession turns a presented cookie value into an authenticated
	// user, or fails with util.ErrUnauthenticated.
	ResolveSession(ctx context.Context, cookie string) (*domain.User, error)
	// RequireAdmin rejects non-admin users with util.ErrForbidden.
	RequireAdmin(user *domain.User) error
}

// authService implements the AuthService interface.
type authService struct {
	dbExecutor  repository.DBExecutor
	codec       *auth.Codec
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	logger      *slog.Logger
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	dbExecutor repository.DBExecutor,
	codec *auth.Codec,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	logger *slog.Logger,
) AuthService {
	return &authService{
		dbExecutor:  dbExecutor,
		codec:       codec,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Authenticate verifies email+password and establishes a session.
// Unknown email and wrong password both collapse to ErrUnauthenticated so
// the login endpoint cannot be used to enumerate accounts; the precise
// reason goes to the log only.
func (s *authService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, s.dbExecutor, email)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			s.logger.Info("login rejected: unknown email")
			return "", util.ErrUnauthenticated
		}
		return "", fmt.Errorf("authenticate: failed to look up user: %w", err)
	}

	if user.Password != s.codec.HashPassword(password) {
		s.logger.Info("login rejected: wrong password", "user_id", user.ID)
		return "", util.ErrUnauthenticated
	}

	token := s.codec.SignToken(email)
	if _, err := s.sessionRepo.UpsertByUserID(ctx, s.dbExecutor, user.ID, token); err != nil {
		return "", fmt.Errorf("authenticate: failed to upsert session: %w", err)
	}
	return token, nil
}

// ResolveSession runs the full session check chain. Every failure path
// returns the same ErrUnauthenticated so callers cannot tell which check
// failed; the reason is logged for operators.
func (s *authService) ResolveSession(ctx context.Context, cookie string) (*domain.User, error) {
	if cookie == "" {
		s.logger.Info("no session cookie")
		return nil, util.ErrUnauthenticated
	}

	email, ok := s.codec.VerifyToken(cookie)
	if !ok {
		s.logger.Info("invalid session cookie")
		return nil, util.ErrUnauthenticated
	}

	user, err := s.userRepo.GetUserByEmail(ctx, s.dbExecutor, email)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			s.logger.Info("session user not found")
			return nil, util.ErrUnauthenticated
		}
		return nil, fmt.Errorf("resolve session: failed to look up user: %w", err)
	}

	session, err := s.sessionRepo.GetByToken(ctx, s.dbExecutor, cookie)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			s.logger.Info("session not found", "user_id", user.ID)
			return nil, util.ErrUnauthenticated
		}
		return nil, fmt.Errorf("resolve session: failed to look up session: %w", err)
	}

	if session.UserID != user.ID {
		s.logger.Info("session user mismatch", "user_id", user.ID)
		return nil, util.ErrUnauthenticated
	}

	return user, nil
}

// RequireAdmin gates admin-only operations on an already-resolved user.
func (s *authService) RequireAdmin(user *domain.User) error {
	if !user.IsAdmin {
		s.logger.Info("access denied", "user_id", user.ID)
		return util.ErrForbidden
	}
	return nil
}
