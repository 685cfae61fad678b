// internal/auth/codec.go
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// Codec hashes passwords and signs/verifies the session cookie token.
// It is stateless; the secrets are injected at construction so nothing in
// this package reads process-global configuration.
type Codec struct {
	passwordSalt string
	cookieKey    []byte
}

// NewCodec creates a Codec from the process-wide password salt and cookie
// signing key.
func NewCodec(passwordSalt, cookieKey string) *Codec {
	return &Codec{
		passwordSalt: passwordSalt,
		cookieKey:    []byte(cookieKey),
	}
}

// HashPassword returns the lowercase hex sha256 digest of password+salt.
// The salt is a single process-wide constant, so equal passwords produce
// equal digests. Stored digests depend on this exact construction; changing
// it invalidates every existing user row.
func (c *Codec) HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password + c.passwordSalt))
	return hex.EncodeToString(sum[:])
}

// signData computes the uppercase hex HMAC-SHA256 tag over data.
func (c *Codec) signData(data string) string {
	mac := hmac.New(sha256.New, c.cookieKey)
	mac.Write([]byte(data))
	return strings.ToUpper(hex.EncodeToString(mac.Sum(nil)))
}

// SignToken encodes the identity into a cookie token:
// base64(email) + "." + uppercase hex HMAC-SHA256(email, key).
func (c *Codec) SignToken(email string) string {
	return base64.StdEncoding.EncodeToString([]byte(email)) + "." + c.signData(email)
}

// VerifyToken checks a presented cookie token and returns the embedded
// identity. Malformed tokens (no dot, undecodable payload) and bad tags all
// report ok=false; the function never panics on hostile input.
func (c *Codec) VerifyToken(token string) (email string, ok bool) {
	i := strings.LastIndexByte(token, '.')
	if i <= 0 || i == len(token)-1 {
		return "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(token[:i])
	if err != nil {
		return "", false
	}
	email = string(decoded)
	if !hmac.Equal([]byte(c.signData(email)), []byte(token[i+1:])) {
		return "", false
	}
	return email, true
}
