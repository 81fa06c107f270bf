package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	h := NewArgon2Hasher()

	encoded, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))

	ok, err := h.Verify(encoded, "correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify(encoded, "wrong password")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHash_EmptyPassword(t *testing.T) {
	h := NewArgon2Hasher()
	_, err := h.Hash("")
	require.Error(t, err)
}

func TestHash_SaltsDiffer(t *testing.T) {
	h := NewArgon2Hasher()

	a, err := h.Hash("same password")
	require.NoError(t, err)
	b, err := h.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "each hash should use a fresh salt")
}

func TestVerify_MalformedHash(t *testing.T) {
	h := NewArgon2Hasher()

	for _, bad := range []string{"", "not-a-hash", "$argon2id$v=19$m=65536,t=3,p=4$short"} {
		ok, err := h.Verify(bad, "anything")
		require.NoError(t, err)
		assert.False(t, ok, "malformed hash %q must not verify", bad)
	}
}

func TestVerify_OversizedPassword(t *testing.T) {
	h := NewArgon2Hasher()

	encoded, err := h.Hash("pw")
	require.NoError(t, err)

	ok, err := h.Verify(encoded, strings.Repeat("a", 2048))
	require.NoError(t, err)
	assert.False(t, ok)
}
