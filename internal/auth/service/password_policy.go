package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/lumenchat/auth-service/config"
	"github.com/lumenchat/auth-service/internal/auth/domain"
	"github.com/lumenchat/auth-service/internal/auth/hashing"
	errs "github.com/lumenchat/auth-service/internal/errors"
)

// maxRepeatRun is the longest allowed run of identical characters.
const maxRepeatRun = 3

var weakSequences = []string{"123456789", "abcdefgh", "qwertyuiop"}

var weakPasswords = map[string]struct{}{
	"password":    {},
	"password123": {},
	"admin":       {},
	"admin123":    {},
	"letmein":     {},
	"12345678":    {},
}

// PasswordPolicy enforces strength requirements on candidate passwords and
// the reuse window against retained history.
type PasswordPolicy struct {
	history      domain.PasswordHistoryRepository
	hasher       hashing.Hasher
	minLength    int
	historyCount int
}

func NewPasswordPolicy(history domain.PasswordHistoryRepository, hasher hashing.Hasher, cfg *config.Config) *PasswordPolicy {
	return &PasswordPolicy{
		history:      history,
		hasher:       hasher,
		minLength:    cfg.PasswordMinLength,
		historyCount: cfg.PasswordHistoryCount,
	}
}

// ValidateStrength is a pure function of the candidate. It collects every
// violation rather than stopping at the first.
func (p *PasswordPolicy) ValidateStrength(candidate string) error {
	v := errs.NewValidationError()

	if len(candidate) < p.minLength {
		v.Add("password", fmt.Sprintf("must be at least %d characters long", p.minLength))
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range candidate {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	if !hasUpper {
		v.Add("password", "must contain at least one uppercase letter")
	}
	if !hasLower {
		v.Add("password", "must contain at least one lowercase letter")
	}
	if !hasDigit {
		v.Add("password", "must contain at least one number")
	}
	if !hasSymbol {
		v.Add("password", "must contain at least one special character")
	}

	if hasRepeatedRun(candidate, maxRepeatRun) {
		v.Add("password", "cannot contain too many repeated characters")
	}

	lower := strings.ToLower(candidate)
	if _, weak := weakPasswords[lower]; weak {
		v.Add("password", "is too common or contains obvious sequences")
	} else {
		for _, seq := range weakSequences {
			if strings.Contains(lower, seq) {
				v.Add("password", "is too common or contains obvious sequences")
				break
			}
		}
	}

	if !v.Empty() {
		return v
	}
	return nil
}

// CheckReuse denies candidates that match any retained history entry.
func (p *PasswordPolicy) CheckReuse(ctx context.Context, userID int64, candidate string) error {
	entries, err := p.history.ListPasswordHistory(ctx, userID, p.historyCount)
	if err != nil {
		return fmt.Errorf("failed to load password history: %w", err)
	}
	for _, entry := range entries {
		if p.hasher.Verify(candidate, entry.PasswordHash) {
			return errs.ErrPasswordReused
		}
	}
	return nil
}

// Record appends a history entry and prunes everything beyond the retention
// window.
func (p *PasswordPolicy) Record(ctx context.Context, userID int64, digest string) error {
	if err := p.history.AddPasswordHistory(ctx, userID, digest); err != nil {
		return fmt.Errorf("failed to record password history: %w", err)
	}
	if err := p.history.PrunePasswordHistory(ctx, userID, p.historyCount); err != nil {
		return fmt.Errorf("failed to prune password history: %w", err)
	}
	return nil
}

// hasRepeatedRun reports whether s contains a run of more than max identical
// characters.
func hasRepeatedRun(s string, max int) bool {
	runes := []rune(s)
	run := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run > max {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}
