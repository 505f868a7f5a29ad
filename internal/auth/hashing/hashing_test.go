package hashing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	secret := "Str0ng!Passw0rd123"
	digest, err := h.Hash(secret)
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, secret, digest)

	assert.True(t, h.Verify(secret, digest))
	assert.False(t, h.Verify("wrong-password", digest))
}

func TestBcryptHasher_SaltedDigestsDiffer(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	secret := "Str0ng!Passw0rd123"
	first, err := h.Hash(secret)
	require.NoError(t, err)
	second, err := h.Hash(secret)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify(secret, first))
	assert.True(t, h.Verify(secret, second))
}

func TestBcryptHasher_VerifyMalformedDigest(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	// A malformed digest must read as a mismatch, never an error or panic.
	assert.False(t, h.Verify("anything", "not-a-bcrypt-digest"))
	assert.False(t, h.Verify("anything", ""))
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	tests := []struct {
		name     string
		cost     int
		expected int
	}{
		{name: "valid cost", cost: 12, expected: 12},
		{name: "below minimum", cost: 2, expected: bcrypt.DefaultCost},
		{name: "above maximum", cost: 40, expected: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBcryptHasher(tt.cost)
			assert.Equal(t, tt.expected, h.Cost())
		})
	}
}
