package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashVerifyRoundTrip(t *testing.T) {
	h := New(4) // min cost to keep the test fast

	hash, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	ok, err := h.Verify("secret1", hash)
	require.NoError(t, err)
	assert.True(t, ok, "correct password should verify")

	ok, err = h.Verify("secret2", hash)
	require.NoError(t, err)
	assert.False(t, ok, "wrong password should not verify")
}

func TestHashIsRandomized(t *testing.T) {
	h := New(4)

	first, err := h.Hash("secret1")
	require.NoError(t, err)
	second, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "bcrypt salts must differ between calls")
}

func TestVerifyMalformedHash(t *testing.T) {
	h := New(4)

	_, err := h.Verify("secret1", "not-a-bcrypt-hash")
	require.Error(t, err)
}

func TestNewClampsInvalidCost(t *testing.T) {
	h := New(0)
	assert.Equal(t, DefaultCost, h.cost)
}
