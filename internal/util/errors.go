// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	// ErrUnauthenticated covers every session failure: missing cookie, bad
	// signature, unknown identity, stale or mismatched session row. Callers
	// must not be able to tell which check failed.
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input provided")
	ErrDuplicateEmail  = errors.New("user with this email already exists")

	// Webhook rejections. The payment provider is a trusted integration
	// partner, so unlike session failures these stay distinguishable.
	ErrInvalidSignature  = errors.New("invalid webhook signature")
	ErrUserNotFound      = errors.New("user not found")
	ErrOwnershipMismatch = errors.New("account is owned by a different user")
)

// IsError reports whether err wraps target.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
