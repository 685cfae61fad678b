// internal/service/account_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"payline/internal/domain"
	"payline/internal/repository"
	"payline/internal/util"
)

// AccountService defines the interface for account queries.
type AccountService interface {
	// ListAccounts returns the accounts owned by an already-authenticated user.
	ListAccounts(ctx context.Context, userID int64) ([]domain.Account, error)
	// ListUserAccounts is the admin variant: it verifies the target user
	// exists before listing, so a bad id yields ErrNotFound rather than an
	// empty list.
	ListUserAccounts(ctx context.Context, userID int64) ([]domain.Account, error)
}

// accountService implements the AccountService interface.
type accountService struct {
	dbExecutor  repository.DBExecutor
	userRepo    repository.UserRepository
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// NewAccountService creates a new instance of AccountService.
func NewAccountService(
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	accountRepo repository.AccountRepository,
	logger *slog.Logger,
) AccountService {
	return &accountService{
		dbExecutor:  dbExecutor,
		userRepo:    userRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (s *accountService) ListAccounts(ctx context.Context, userID int64) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListByUserID(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) ListUserAccounts(ctx context.Context, userID int64) ([]domain.Account, error) {
	if _, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, userID); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("list user accounts: failed to get user %d: %w", userID, err)
	}
	accounts, err := s.accountRepo.ListByUserID(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("list user accounts: %w", err)
	}
	return accounts, nil
}
