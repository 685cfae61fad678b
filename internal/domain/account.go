// internal/domain/account.go
package domain

import "time"

// Account is a balance-holding ledger entity owned by exactly one user.
// Its id is supplied by the payment provider, not generated by the database,
// and the owning user never changes after creation.
type Account struct {
	ID               int64     `db:"id" json:"id"`           // External account identifier, unique
	UserID           int64     `db:"user_id" json:"user_id"` // Owner; a user may hold several accounts
	Balance          int64     `db:"balance" json:"balance"` // Minor units; only verified payments increase it
	CreatedTimestamp time.Time `db:"created_timestamp" json:"created_timestamp"`
}
