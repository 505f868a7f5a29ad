package domain

import "time"

type User struct {
	ID                  int64
	Email               string
	FirstName           string
	LastName            string
	PasswordHash        string
	Active              bool
	Verified            bool
	FailedLoginAttempts int
	LockedUntil         *time.Time
	PasswordChangedAt   time.Time
	LastLoginAt         *time.Time
	MFAEnabled          bool   // reserved, not enforced
	MFASecret           string // reserved, not enforced
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Locked reports whether the account is currently under a timed lockout.
func (u *User) Locked(now time.Time) bool {
	return u.LockedUntil != nil && u.LockedUntil.After(now)
}
