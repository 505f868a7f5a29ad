// Package hashing provides one-way credential hashing and verification.
package hashing

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher is the credential hashing contract. Implementations must be safe
// for concurrent use.
type Hasher interface {
	// Hash returns a salted digest of secret. Two calls with the same secret
	// produce different digests.
	Hash(secret string) (string, error)

	// Verify reports whether secret matches digest. It never returns an
	// error: any internal failure, including a malformed digest, reads as a
	// mismatch so callers cannot distinguish a bad hash from a wrong password.
	Verify(secret, digest string) bool
}

// BcryptHasher hashes credentials with bcrypt. The work factor is tunable at
// construction; bcrypt generates and embeds the salt itself.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given work factor. Costs outside
// the valid bcrypt range fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(secret string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(digest), nil
}

func (h *BcryptHasher) Verify(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}

// Cost returns the configured work factor.
func (h *BcryptHasher) Cost() int {
	return h.cost
}
