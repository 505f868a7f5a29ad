package service

import (
	"context"
	"time"

	"github.com/lumenchat/auth-service/config"
	"github.com/lumenchat/auth-service/internal/auth/domain"
)

// LockoutTracker counts failed logins and applies a timed lock once the
// configured threshold is reached. It is only consulted for accounts that
// exist; unknown emails never touch lockout state.
type LockoutTracker struct {
	users       domain.UserRepository
	maxAttempts int
	lockMinutes int
}

func NewLockoutTracker(users domain.UserRepository, cfg *config.Config) *LockoutTracker {
	return &LockoutTracker{
		users:       users,
		maxAttempts: cfg.LoginMaxAttempts,
		lockMinutes: cfg.LockoutDurationMin,
	}
}

func (t *LockoutTracker) IsLocked(user *domain.User) bool {
	return user.Locked(time.Now().UTC())
}

// RecordFailure increments the failure counter. The counter is not reset
// here; only a successful authentication clears it.
func (t *LockoutTracker) RecordFailure(ctx context.Context, user *domain.User) error {
	return t.users.IncrementFailedLogin(ctx, user.ID, t.maxAttempts, t.lockMinutes)
}

// RecordSuccess zeroes the counter, clears any lock and stamps the login time.
func (t *LockoutTracker) RecordSuccess(ctx context.Context, user *domain.User) error {
	return t.users.ResetFailedLogin(ctx, user.ID, time.Now().UTC())
}
