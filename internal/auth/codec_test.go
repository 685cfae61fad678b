// internal/auth/codec_test.go
package auth

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec() *Codec {
	return NewCodec("test-password-salt", "test-cookie-key")
}

func TestHashPasswordDeterministic(t *testing.T) {
	codec := newTestCodec()

	first := codec.HashPassword("hunter2")
	second := codec.HashPassword("hunter2")
	assert.Equal(t, first, second)

	// sha256 hex digest: 64 lowercase hex characters.
	assert.Len(t, first, 64)
	assert.Equal(t, strings.ToLower(first), first)
}

func TestHashPasswordDiffersPerInput(t *testing.T) {
	codec := newTestCodec()
	assert.NotEqual(t, codec.HashPassword("hunter2"), codec.HashPassword("hunter3"))
}

func TestHashPasswordDependsOnSalt(t *testing.T) {
	a := NewCodec("salt-a", "key").HashPassword("hunter2")
	b := NewCodec("salt-b", "key").HashPassword("hunter2")
	assert.NotEqual(t, a, b)
}

func TestTokenRoundTrip(t *testing.T) {
	codec := newTestCodec()

	for _, email := range []string{"a@x.com", "first.last@example.org", "юзер@пример.рф"} {
		token := codec.SignToken(email)
		got, ok := codec.VerifyToken(token)
		require.True(t, ok, "token for %q should verify", email)
		assert.Equal(t, email, got)
	}
}

func TestTokenFormat(t *testing.T) {
	codec := newTestCodec()
	token := codec.SignToken("a@x.com")

	i := strings.LastIndexByte(token, '.')
	require.Greater(t, i, 0)

	payload, tag := token[:i], token[i+1:]
	decoded, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", string(decoded))

	// Tag is uppercase hex HMAC-SHA256.
	assert.Len(t, tag, 64)
	assert.Equal(t, strings.ToUpper(tag), tag)
}

func TestVerifyTokenRejectsTamperedTag(t *testing.T) {
	codec := newTestCodec()
	token := codec.SignToken("a@x.com")

	// Flip one character of the signature segment.
	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	_, ok := codec.VerifyToken(string(tampered))
	assert.False(t, ok)
}

func TestVerifyTokenRejectsForeignKey(t *testing.T) {
	token := NewCodec("salt", "key-one").SignToken("a@x.com")
	_, ok := NewCodec("salt", "key-two").VerifyToken(token)
	assert.False(t, ok)
}

func TestVerifyTokenRejectsMalformedInput(t *testing.T) {
	codec := newTestCodec()

	cases := map[string]string{
		"empty":              "",
		"no dot":             "YUB4LmNvbQ",
		"dot only":           ".",
		"missing tag":        "YUB4LmNvbQ==.",
		"missing payload":    ".ABCDEF",
		"undecodable base64": "not-base64!.ABCDEF",
	}
	for name, token := range cases {
		_, ok := codec.VerifyToken(token)
		assert.False(t, ok, "case %s", name)
	}
}

func TestVerifyTokenRejectsSwappedIdentity(t *testing.T) {
	codec := newTestCodec()
	token := codec.SignToken("a@x.com")
	i := strings.LastIndexByte(token, '.')

	// Keep the valid tag but replace the identity payload.
	forged := base64.StdEncoding.EncodeToString([]byte("b@x.com")) + token[i:]
	_, ok := codec.VerifyToken(forged)
	assert.False(t, ok)
}
