// internal/auth/webhook_test.go
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testWebhookKey = "test-webhook-key"

// signWebhook builds a provider-side signature for the given fields.
func signWebhook(key string, userID, accountID, amount int64, transactionID string) string {
	preimage := fmt.Sprintf("%d%d%s%d%s", accountID, amount, transactionID, userID, key)
	sum := sha256.Sum256([]byte(preimage))
	return hex.EncodeToString(sum[:])
}

func TestVerifyAcceptsValidSignature(t *testing.T) {
	v := NewWebhookVerifier(testWebhookKey)
	sig := signWebhook(testWebhookKey, 1, 100, 500, "t1")
	assert.True(t, v.Verify(1, 100, 500, "t1", sig))
}

func TestVerifyRejectsAnyChangedField(t *testing.T) {
	v := NewWebhookVerifier(testWebhookKey)
	sig := signWebhook(testWebhookKey, 1, 100, 500, "t1")

	assert.False(t, v.Verify(2, 100, 500, "t1", sig), "changed user id")
	assert.False(t, v.Verify(1, 101, 500, "t1", sig), "changed account id")
	assert.False(t, v.Verify(1, 100, 501, "t1", sig), "changed amount")
	assert.False(t, v.Verify(1, 100, 500, "t2", sig), "changed transaction id")
	assert.False(t, v.Verify(1, 100, 500, "t1", sig+"00"), "changed signature")
	assert.False(t, v.Verify(1, 100, 500, "t1", ""), "empty signature")
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	sig := signWebhook("other-key", 1, 100, 500, "t1")
	assert.False(t, NewWebhookVerifier(testWebhookKey).Verify(1, 100, 500, "t1", sig))
}

func TestVerifyFieldOrderMatters(t *testing.T) {
	v := NewWebhookVerifier(testWebhookKey)

	// A digest over the same fields in a different order must not verify.
	preimage := fmt.Sprintf("%d%d%s%d%s", int64(1), int64(500), "t1", int64(100), testWebhookKey)
	sum := sha256.Sum256([]byte(preimage))
	assert.False(t, v.Verify(1, 100, 500, "t1", hex.EncodeToString(sum[:])))
}

func TestVerifyBoundaryShiftBetweenFields(t *testing.T) {
	v := NewWebhookVerifier(testWebhookKey)

	// The preimage has no separators, so moving a digit between adjacent
	// numeric fields changes the concatenation and must invalidate it.
	sig := signWebhook(testWebhookKey, 1, 100, 500, "t1")
	assert.False(t, v.Verify(1, 1005, 0, "t1", sig))
	assert.False(t, v.Verify(1, 10, 500, "t1", sig))
}
