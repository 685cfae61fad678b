// internal/service/payment_service.go
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

// PaymentService defines the interface for payment ingestion and history.
type PaymentService interface {
	// IngestPayment processes one webhook delivery: verifies the signature,
	// lazily creates the account, records the payment at most once per
	// transaction id and credits the balance. A nil return means
	// "processing accepted" whether or not this delivery was the one that
	// recorded the payment.
	IngestPayment(ctx context.Context, userID, accountID, amount int64, transactionID, signature string) error
	// ListPaymentsByUser returns the payment history of one user.
	ListPaymentsByUser(ctx context.Context, userID int64) ([]domain.Payment, error)
}

// paymentService implements the PaymentService interface.
type paymentService struct {
	dbExecutor  repository.DBExecutor
	verifier    *auth.WebhookVerifier
	userRepo    repository.UserRepository
	accountRepo repository.AccountRepository
	paymentRepo repository.PaymentRepository
	logger      *slog.Logger
}

// NewPaymentService creates a new instance of PaymentService.
func NewPaymentService(
	dbExecutor repository.DBExecutor,
	verifier *auth.WebhookVerifier,
	userRepo repository.UserRepository,
	accountRepo repository.AccountRepository,
	paymentRepo repository.PaymentRepository,
	logger *slog.Logger,
) PaymentService {
	return &paymentService{
		dbExecutor:  dbExecutor,
		verifier:    verifier,
		userRepo:    userRepo,
		accountRepo: accountRepo,
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// IngestPayment is the webhook core. Each repository call is its own
// transactional round trip; idempotence comes from the transaction_id
// unique constraint and lost-update safety from the SQL-side increment,
// not from application-side locking.
func (s *paymentService) IngestPayment(ctx context.Context, userID, accountID, amount int64, transactionID, signature string) error {
	if amount <= 0 || transactionID == "" {
		return util.ErrInvalidInput
	}

	if !s.verifier.Verify(userID, accountID, amount, transactionID, signature) {
		s.logger.Info("webhook rejected: wrong signature", "account_id", accountID)
		return util.ErrInvalidSignature
	}

	// accountCreated tracks whether this call created the account. A fresh
	// account is seeded with the payment amount, so crediting it again in
	// the increment step below would double-count.
	accountCreated := false
	account, err := s.accountRepo.GetByID(ctx, s.dbExecutor, accountID)
	if err != nil {
		if !util.IsError(err, util.ErrNotFound) {
			return fmt.Errorf("ingest payment: failed to get account %d: %w", accountID, err)
		}
		if _, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, userID); err != nil {
			if util.IsError(err, util.ErrNotFound) {
				s.logger.Info("webhook rejected: user does not exist", "user_id", userID)
				return util.ErrUserNotFound
			}
			return fmt.Errorf("ingest payment: failed to get user %d: %w", userID, err)
		}
		account, accountCreated, err = s.accountRepo.CreateIfAbsent(ctx, s.dbExecutor, accountID, userID, amount)
		if err != nil {
			return fmt.Errorf("ingest payment: failed to create account %d: %w", accountID, err)
		}
	}

	// An account's owner is immutable; a webhook naming someone else's
	// account is rejected before any row is written.
	if account.UserID != userID {
		s.logger.Info("webhook rejected: account ownership mismatch",
			"account_id", accountID, "user_id", userID)
		return util.ErrOwnershipMismatch
	}

	payment, err := s.paymentRepo.CreateIfAbsent(ctx, s.dbExecutor, userID, accountID, amount, transactionID)
	if err != nil {
		return fmt.Errorf("ingest payment: failed to record payment: %w", err)
	}
	if payment == nil {
		// Retried delivery: the transaction id was already processed.
		s.logger.Info("webhook deduplicated", "transaction_id", transactionID)
		return nil
	}

	if !accountCreated {
		if err := s.accountRepo.IncrementBalance(ctx, s.dbExecutor, accountID, amount); err != nil {
			return fmt.Errorf("ingest payment: failed to credit account %d: %w", accountID, err)
		}
	}

	s.logger.Info("payment recorded",
		"transaction_id", transactionID, "account_id", accountID, "amount", amount)
	return nil
}

// ListPaymentsByUser returns the payment history of one user.
func (s *paymentService) ListPaymentsByUser(ctx context.Context, userID int64) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListByUserID(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for user %d: %w", userID, err)
	}
	return payments, nil
}
