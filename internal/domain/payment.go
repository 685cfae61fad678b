// internal/domain/payment.go
package domain

import "time"

// Payment records one credited transaction. Rows are append-only: created at
// most once per transaction id, never mutated or deleted.
type Payment struct {
	ID               int64     `db:"id" json:"id"` // Primary key, BIGSERIAL in DB
	UserID           int64     `db:"user_id" json:"user_id"`
	AccountID        int64     `db:"account_id" json:"account_id"`
	Amount           int64     `db:"amount" json:"amount"`                 // Positive, minor units
	TransactionID    string    `db:"transaction_id" json:"transaction_id"` // Unique; the sole de-duplication key
	CreatedTimestamp time.Time `db:"created_timestamp" json:"created_timestamp"`
}
