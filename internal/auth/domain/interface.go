package domain

//go:generate mockgen -destination=../../mocks/mock_repository.go -package=mocks -source=interface.go

import (
	"context"
	"time"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string, changedAt time.Time) error
	MarkVerified(ctx context.Context, userID int64) error
	// IncrementFailedLogin bumps the failure counter and, when the counter
	// reaches threshold, sets locked_until in the same statement.
	IncrementFailedLogin(ctx context.Context, userID int64, threshold, lockMinutes int) error
	ResetFailedLogin(ctx context.Context, userID int64, lastLogin time.Time) error
}

type RefreshTokenRepository interface {
	StoreRefreshToken(ctx context.Context, rt *RefreshToken) error
	GetRefreshToken(ctx context.Context, token string) (*RefreshToken, error)
	// RevokeRefreshToken reports whether a record matched the presented value.
	RevokeRefreshToken(ctx context.Context, token string) (bool, error)
	DeleteExpiredRefreshTokens(ctx context.Context) (int64, error)
}

type PasswordHistoryRepository interface {
	AddPasswordHistory(ctx context.Context, userID int64, passwordHash string) error
	ListPasswordHistory(ctx context.Context, userID int64, limit int) ([]PasswordHistoryEntry, error)
	PrunePasswordHistory(ctx context.Context, userID int64, keep int) error
}

type EphemeralTokenRepository interface {
	StoreEphemeralToken(ctx context.Context, et *EphemeralToken) error
	// ConsumeEphemeralToken atomically marks a matching, unused, unexpired
	// record as used and returns it. Returns (nil, nil) when no such record
	// exists, so two concurrent consumers can never both succeed.
	ConsumeEphemeralToken(ctx context.Context, token string, kind TokenKind) (*EphemeralToken, error)
}
