package service

import (
	"context"
	"log"
	"time"

	"github.com/lumenchat/auth-service/internal/auth/domain"
	"github.com/lumenchat/auth-service/internal/auth/dto"
	"github.com/lumenchat/auth-service/internal/auth/hashing"
	errs "github.com/lumenchat/auth-service/internal/errors"
	"github.com/lumenchat/auth-service/internal/mailer"
	"github.com/lumenchat/auth-service/pkg/constant"
)

// UserService orchestrates the credential and session flows: it composes the
// hasher, password policy, lockout tracker and token issuer. Every request is
// independent; all shared state lives in the store.
type UserService struct {
	users        domain.UserRepository
	tokenService TokenGenerator
	hasher       hashing.Hasher
	policy       *PasswordPolicy
	lockout      *LockoutTracker
	mailer       mailer.Mailer
}

func NewUserService(users domain.UserRepository, tokenService TokenGenerator, hasher hashing.Hasher,
	policy *PasswordPolicy, lockout *LockoutTracker, m mailer.Mailer) *UserService {
	return &UserService{
		users:        users,
		tokenService: tokenService,
		hasher:       hasher,
		policy:       policy,
		lockout:      lockout,
		mailer:       m,
	}
}

// Register creates a new account, seeds its password history with the initial
// hash and hands a verification token to the mailer. There is no reuse check
// here: a fresh account has no history.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	existing, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.ErrEmailAlreadyInUse
	}

	if err := s.policy.ValidateStrength(input.Password); err != nil {
		return nil, err
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:             input.Email,
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		PasswordHash:      digest,
		Active:            true,
		Verified:          false,
		PasswordChangedAt: now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.policy.Record(ctx, user.ID, digest); err != nil {
		return nil, err
	}

	token, err := s.tokenService.IssueEphemeralToken(ctx, user.ID, domain.TokenKindVerify)
	if err != nil {
		return nil, err
	}
	if err := s.mailer.SendVerificationEmail(ctx, user.Email, token); err != nil {
		log.Printf("warn: failed to hand off verification email for %s: %v", user.Email, err)
	}

	return user, nil
}

// Login authenticates an email/password pair. An unknown email and a wrong
// password produce the same error; lockout state is only touched when the
// account exists.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.ErrInvalidCredentials
	}

	if s.lockout.IsLocked(user) {
		return nil, errs.ErrAccountLocked
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		if err := s.lockout.RecordFailure(ctx, user); err != nil {
			return nil, err
		}
		return nil, errs.ErrInvalidCredentials
	}

	if !user.Active {
		return nil, errs.ErrAccountDisabled
	}

	if err := s.lockout.RecordSuccess(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokenPair(ctx, user.ID, input.IPAddress, input.UserAgent)
}

// Refresh exchanges a valid refresh token for a new access token and rotates
// the refresh token; the presented value is dead after this call.
func (s *UserService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.TokenResponse, error) {
	token, err := s.tokenService.VerifyRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.ErrInvalidToken
	}
	if !user.Active {
		return nil, errs.ErrAccountDisabled
	}

	accessToken, _, err := s.tokenService.IssueAccessToken(user.ID)
	if err != nil {
		return nil, err
	}
	newRefresh, err := s.tokenService.RotateRefreshToken(ctx, token, input.IPAddress, input.UserAgent)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
		TokenType:    constant.DefaultTokenType,
		ExpiresIn:    int(s.tokenService.AccessTokenTTL().Seconds()),
	}, nil
}

// Logout revokes the presented refresh token.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	found, err := s.tokenService.RevokeRefreshToken(ctx, refreshToken)
	if err != nil {
		return err
	}
	if !found {
		return errs.ErrRefreshTokenNotFound
	}
	return nil
}

// ForgotPassword creates a reset token for an existing account. A nil error
// for an unknown email is deliberate: the caller response must not reveal
// whether the address is registered.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	token, err := s.tokenService.IssueEphemeralToken(ctx, user.ID, domain.TokenKindReset)
	if err != nil {
		return err
	}
	if err := s.mailer.SendPasswordResetEmail(ctx, user.Email, token); err != nil {
		log.Printf("warn: failed to hand off password reset email for %s: %v", user.Email, err)
	}
	return nil
}

// ResetPassword redeems a reset token and installs a new password. Strength
// is checked before the token is consumed so a weak candidate does not burn
// the single-use token.
func (s *UserService) ResetPassword(ctx context.Context, input dto.ResetPasswordInput) error {
	if err := s.policy.ValidateStrength(input.NewPassword); err != nil {
		return err
	}

	token, err := s.tokenService.ConsumeEphemeralToken(ctx, input.Token, domain.TokenKindReset)
	if err != nil {
		return err
	}

	if err := s.policy.CheckReuse(ctx, token.UserID, input.NewPassword); err != nil {
		return err
	}

	digest, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, token.UserID, digest, time.Now().UTC()); err != nil {
		return err
	}
	return s.policy.Record(ctx, token.UserID, digest)
}

// ChangePassword requires the current secret and enforces the reuse window.
// The same-as-current comparison goes through the hasher, never plaintext
// equality.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, input dto.ChangePasswordInput) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return errs.ErrInvalidCredentials
	}

	if !s.hasher.Verify(input.CurrentPassword, user.PasswordHash) {
		return errs.ErrWrongPassword
	}

	if err := s.policy.ValidateStrength(input.NewPassword); err != nil {
		return err
	}
	if s.hasher.Verify(input.NewPassword, user.PasswordHash) {
		return errs.ErrSamePassword
	}
	if err := s.policy.CheckReuse(ctx, user.ID, input.NewPassword); err != nil {
		return err
	}

	digest, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, digest, time.Now().UTC()); err != nil {
		return err
	}
	return s.policy.Record(ctx, user.ID, digest)
}

// VerifyEmail redeems a verification token and marks the account verified.
func (s *UserService) VerifyEmail(ctx context.Context, token string) error {
	et, err := s.tokenService.ConsumeEphemeralToken(ctx, token, domain.TokenKindVerify)
	if err != nil {
		return err
	}
	return s.users.MarkVerified(ctx, et.UserID)
}

// GetByID resolves the account behind a validated identity.
func (s *UserService) GetByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.ErrInvalidToken
	}
	return user, nil
}

func (s *UserService) issueTokenPair(ctx context.Context, userID int64, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	accessToken, _, err := s.tokenService.IssueAccessToken(userID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokenService.IssueRefreshToken(ctx, userID, ipAddress, userAgent)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    constant.DefaultTokenType,
		ExpiresIn:    int(s.tokenService.AccessTokenTTL().Seconds()),
	}, nil
}
