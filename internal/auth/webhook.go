// internal/auth/webhook.go
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// WebhookVerifier validates the signature the payment provider attaches to
// each webhook call.
type WebhookVerifier struct {
	key string
}

// NewWebhookVerifier creates a verifier bound to the shared webhook key.
func NewWebhookVerifier(key string) *WebhookVerifier {
	return &WebhookVerifier{key: key}
}

// Verify recomputes the expected signature and compares it to the presented
// one. The preimage is the concatenation of the decimal forms of
// accountID, amount, transactionID, userID followed by the key, with no
// separators, in that exact order; the digest is lowercase hex sha256.
// Any mismatch yields false, never an error.
func (v *WebhookVerifier) Verify(userID, accountID, amount int64, transactionID, signature string) bool {
	preimage := strconv.FormatInt(accountID, 10) +
		strconv.FormatInt(amount, 10) +
		transactionID +
		strconv.FormatInt(userID, 10) +
		v.key
	sum := sha256.Sum256([]byte(preimage))
	return hex.EncodeToString(sum[:]) == signature
}
