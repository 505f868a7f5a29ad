package domain

import "time"

// RefreshToken is the stored record behind an opaque refresh credential.
// Once revoked it is never reactivated; expired rows are garbage collected.
type RefreshToken struct {
	ID        int64
	UserID    int64
	Token     string
	IPAddress string
	UserAgent string
	ExpiresAt time.Time
	CreatedAt time.Time
	Revoked   bool
}

// TokenKind discriminates the two single-use ephemeral token flavours.
type TokenKind string

const (
	TokenKindVerify TokenKind = "verify"
	TokenKindReset  TokenKind = "reset"
)

// EphemeralToken is a time-boxed, single-use token for out-of-band flows
// (email verification, password reset). Once Used is set it stays invalid
// regardless of expiry.
type EphemeralToken struct {
	ID        int64
	UserID    int64
	Token     string
	Kind      TokenKind
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

type PasswordHistoryEntry struct {
	ID           int64
	UserID       int64
	PasswordHash string
	CreatedAt    time.Time
}
