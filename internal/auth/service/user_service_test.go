package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/lumenchat/auth-service/config"
	"github.com/lumenchat/auth-service/internal/auth/domain"
	"github.com/lumenchat/auth-service/internal/auth/dto"
	"github.com/lumenchat/auth-service/internal/auth/hashing"
	"github.com/lumenchat/auth-service/internal/auth/service"
	errs "github.com/lumenchat/auth-service/internal/errors"
	"github.com/lumenchat/auth-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testEmail    = "alice@example.com"
	testPassword = "Str0ng!Passw0rd123"
	testUserID   = int64(42)
)

type userServiceFixture struct {
	users   *mocks.MockUserRepository
	history *mocks.MockPasswordHistoryRepository
	tokens  *mocks.MockTokenGenerator
	mailer  *mocks.MockMailer
	hasher  hashing.Hasher
	svc     *service.UserService
}

func newUserServiceFixture(t *testing.T) *userServiceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{
		PasswordMinLength:    12,
		PasswordHistoryCount: 5,
		LoginMaxAttempts:     5,
		LockoutDurationMin:   30,
	}

	f := &userServiceFixture{
		users:   mocks.NewMockUserRepository(ctrl),
		history: mocks.NewMockPasswordHistoryRepository(ctrl),
		tokens:  mocks.NewMockTokenGenerator(ctrl),
		mailer:  mocks.NewMockMailer(ctrl),
		hasher:  hashing.NewBcryptHasher(bcrypt.MinCost),
	}
	policy := service.NewPasswordPolicy(f.history, f.hasher, cfg)
	lockout := service.NewLockoutTracker(f.users, cfg)
	f.svc = service.NewUserService(f.users, f.tokens, f.hasher, policy, lockout, f.mailer)
	return f
}

func (f *userServiceFixture) activeUser(t *testing.T) *domain.User {
	t.Helper()
	digest, err := f.hasher.Hash(testPassword)
	require.NoError(t, err)
	return &domain.User{
		ID:           testUserID,
		Email:        testEmail,
		FirstName:    "Alice",
		LastName:     "Smith",
		PasswordHash: digest,
		Active:       true,
	}
}

func registerInput() dto.RegisterInput {
	return dto.RegisterInput{
		Email:           testEmail,
		FirstName:       "Alice",
		LastName:        "Smith",
		Password:        testPassword,
		ConfirmPassword: testPassword,
		TermsAccepted:   true,
	}
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newUserServiceFixture(t)

		f.users.EXPECT().GetByEmail(gomock.Any(), testEmail).Return(nil, nil)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *domain.User) error {
				u.ID = testUserID
				return nil
			})
		f.history.EXPECT().AddPasswordHistory(gomock.Any(), testUserID, gomock.Any()).Return(nil)
		f.history.EXPECT().PrunePasswordHistory(gomock.Any(), testUserID, 5).Return(nil)
		f.tokens.EXPECT().IssueEphemeralToken(gomock.Any(), testUserID, domain.TokenKindVerify).Return("verify-token", nil)
		f.mailer.EXPECT().SendVerificationEmail(gomock.Any(), testEmail, "verify-token").Return(nil)

		user, err := f.svc.Register(ctx, registerInput())
		require.NoError(t, err)
		assert.Equal(t, testUserID, user.ID)
		assert.Equal(t, testEmail, user.Email)
		assert.True(t, user.Active)
		assert.False(t, user.Verified)
		assert.NotEqual(t, testPassword, user.PasswordHash)
		assert.True(t, f.hasher.Verify(testPassword, user.PasswordHash))
	})

	t.Run("email already in use", func(t *testing.T) {
		f := newUserServiceFixture(t)

		f.users.EXPECT().GetByEmail(gomock.Any(), testEmail).Return(&domain.User{ID: 7, Email: testEmail}, nil)

		_, err := f.svc.Register(ctx, registerInput())
		assert.Equal(t, errs.ErrEmailAlreadyInUse, err)
	})

	t.Run("weak password rejected before account creation", func(t *testing.T) {
		f := newUserServiceFixture(t)

		f.users.EXPECT().GetByEmail(gomock.Any(), testEmail).Return(nil, nil)

		input := registerInput()
		input.Password = "weak"
		input.ConfirmPassword = "weak"

		_, err := f.svc.Register(ctx, input)
		var vErr *errs.ValidationError
		assert.True(t, errors.As(err, &vErr))
	})

	t.Run("mail handoff failure does not fail registration", func(t *testing.T) {
		f := newUserServiceFixture(t)

		f.users.EXPECT().GetByEmail(gomock.Any(), testEmail).Return(nil, nil)
		f.users.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *domain.User) error {
				u.ID = testUserID
				return nil
			})
		f.history.EXPECT().AddPasswordHistory(gomock.Any(), testUserID, gomock.Any()).Return(nil)
		f.history.EXPECT().PrunePasswordHistory(gomock.Any(), testUserID, 5).Return(nil)
		f.tokens.EXPECT().IssueEphemeralToken(gomock.Any(), testUserID, domain.TokenKindVerify).Return("verify-token", nil)
		f.mailer.EXPECT().SendVerificationEmail(gomock.Any(), testEmail, "verify-token").Return(errors.New("smtp down"))

		_, err := f.svc.Register(ctx, registerInput())
		assert.NoError(t, err)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	input := dto.LoginInput{
		Email:     testEmail,
		Password:  testPassword,
		IPAddress: "10.0.0.1",
		UserAgent: "test-agent",
	}

	t.Run("success", func(t *testing.T) {
		f := newUserServiceFixture(t)
		user := f.activeUser(t)

		f.users.EXPECT().GetByEmail(gomock.Any(), testEmail).Return(user, nil)
		f.users.EXPECT().ResetFailedLogin(gomock.Any(), testUserID, gomock.Any()).Return(nil)
		f.tokens.EXPECT().IssueAccessToken(testUserID).Return("access", time.Now().UTC().Add(15*time.Minute), nil)
		f.tokens.EXPECT().IssueRefreshToken(gomock.Any(), testUserID, "10.0.0.1", "test-agent").Return("refresh", nil)
		f.tokens.EXPECT().AccessTokenTTL().Return(15 * time.Minute)

		resp, err := f.svc.Login(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "access", resp.AccessToken)
		assert.Equal(t, "refresh", resp.RefreshToken)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, 900, resp.ExpiresIn)
	})

	t.Run("unknown email leaves lockout untouched", func(t *testing.T) {
		f := newUserServiceFixture(t)

		f.users.EXPECT().GetByEmail(gomock.Any(), testEmail).Return(nil, nil)

		_, err := f.svc.Login(ctx, input)
		assert.Equal(t, errs.ErrInvalidCredentials, err)
	})

	t.Run("wrong password records a failure", func(t *testing.T) {
		f := newUserServiceFixture(t)
		user := f.activeUser(t)

		f.users.EXPECT().GetByEmail(gomock.Any(), testEmail).Return(user, nil)
		f.users.EXPECT().IncrementFailedLogin(gomock.Any(), testUserID, 5, 30).Return(nil)

		bad := input
		bad.Password = "Wrong!Passw0rd999"
		_, err := f.svc.Login(ctx, bad)
		assert.Equal(t, errs.ErrInvalidCredentials, err)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		f := newUserServiceFixture(t)
		user := f.activeUser(t)

		f.users.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)
		f.users.EXPECT().GetByEmail(gomock.Any(), testEmail).Return(user, nil)
		f.users.EXPECT().IncrementFailedLogin(gomock.Any(), testUserID, 5, 30).Return(nil)

		_, errUnknown := f.svc.Login(ctx, dto.LoginInput{Email: "nobody@example.com", Password: testPassword})
		_, errWrong := f.svc.Login(ctx, dto.LoginInput{Email: testEmail, Password: "Wrong!Passw0rd999"})
		assert.Equal(t, errUnknown, errWrong)
	})

	t.Run("locked account rejected before password check", func(t *testing.T) {
		f := newUserServiceFixture(t)
		user := f.activeUser(t)
		lockedUntil := time.Now().UTC().Add(10 * time.Minute)
		user.LockedUntil = &lockedUntil

		f.users.EXPECT().GetByEmail(gomock.Any(), testEmail).Return(user, nil)

		_, err := f.svc.Login(ctx, input)
		assert.Equal(t, errs.ErrAccountLocked, err)
	})

	t.Run("expired lock admits a correct password", func(t *testing.T) {
		f := newUserServiceFixture(t)
		user := f.activeUser(t)
		lockedUntil := time.Now().UTC().Add(-time.Minute)
		user.LockedUntil = &lockedUntil
		user.FailedLoginAttempts = 5

		f.users.EXPECT().GetByEmail(gomock.Any(), testEmail).Return(user, nil)
		f.users.EXPECT().ResetFailedLogin(gomock.Any(), testUserID, gomock.Any()).Return(nil)
		f.tokens.EXPECT().IssueAccessToken(testUserID).Return("access", time.Now().UTC(), nil)
		f.tokens.EXPECT().IssueRefreshToken(gomock.Any(), testUserID, "10.0.0.1", "test-agent").Return("refresh", nil)
		f.tokens.EXPECT().AccessTokenTTL().Return(15 * time.Minute)

		_, err := f.svc.Login(ctx, input)
		assert.NoError(t, err)
	})

	t.Run("disabled account", func(t *testing.T) {
		f := newUserServiceFixture(t)
		user := f.activeUser(t)
		user.Active = false

		f.users.EXPECT().GetByEmail(gomock.Any(), testEmail).Return(user, nil)

		_, err := f.svc.Login(ctx, input)
		assert.Equal(t, errs.ErrAccountDisabled, err)
	})
}

func TestUserService_Refresh(t *testing.T) {
	ctx := context.Background()
	input := dto.RefreshInput{
		RefreshToken: "old-refresh",
		IPAddress:    "10.0.0.2",
		UserAgent:    "test-agent",
	}
	storedToken := &domain.RefreshToken{ID: 1, UserID: testUserID, Token: "old-refresh"}

	t.Run("success rotates the refresh token", func(t *testing.T) {
		f := newUserServiceFixture(t)
		user := f.activeUser(t)

		f.tokens.EXPECT().VerifyRefreshToken(gomock.Any(), "old-refresh").Return(storedToken, nil)
		f.users.EXPECT().GetByID(gomock.Any(), testUserID).Return(user, nil)
		f.tokens.EXPECT().IssueAccessToken(testUserID).Return("new-access", time.Now().UTC(), nil)
		f.tokens.EXPECT().RotateRefreshToken(gomock.Any(), storedToken, "10.0.0.2", "test-agent").Return("new-refresh", nil)
		f.tokens.EXPECT().AccessTokenTTL().Return(15 * time.Minute)

		resp, err := f.svc.Refresh(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "new-access", resp.AccessToken)
		assert.Equal(t, "new-refresh", resp.RefreshToken)
		assert.NotEqual(t, input.RefreshToken, resp.RefreshToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newUserServiceFixture(t)

		f.tokens.EXPECT().VerifyRefreshToken(gomock.Any(), "old-refresh").Return(nil, errs.ErrInvalidToken)

		_, err := f.svc.Refresh(ctx, input)
		assert.Equal(t, errs.ErrInvalidToken, err)
	})

	t.Run("vanished account", func(t *testing.T) {
		f := newUserServiceFixture(t)

		f.tokens.EXPECT().VerifyRefreshToken(gomock.Any(), "old-refresh").Return(storedToken, nil)
		f.users.EXPECT().GetByID(gomock.Any(), testUserID).Return(nil, nil)

		_, err := f.svc.Refresh(ctx, input)
		assert.Equal(t, errs.ErrInvalidToken, err)
	})

	t.Run("disabled account", func(t *testing.T) {
		f := newUserServiceFixture(t)
		user := f.activeUser(t)
		user.Active = false

		f.tokens.EXPECT().VerifyRefreshToken(gomock.Any(), "old-refresh").Return(storedToken, nil)
		f.users.EXPECT().GetByID(gomock.Any(), testUserID).Return(user, nil)

		_, err := f.svc.Refresh(ctx, input)
		assert.Equal(t, errs.ErrAccountDisabled, err)
	})
}

func TestUserService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes the token", func(t *testing.T) {
		f := newUserServiceFixture(t)
		f.tokens.EXPECT().RevokeRefreshToken(gomock.Any(), "some-token").Return(true, nil)

		assert.NoError(t, f.svc.Logout(ctx, "some-token"))
	})

	t.Run("unknown token", func(t *testing.T) {
		f := newUserServiceFixture(t)
		f.tokens.EXPECT().RevokeRefreshToken(gomock.Any(), "missing").Return(false, nil)

		err := f.svc.Logout(ctx, "missing")
		assert.Equal(t, errs.ErrRefreshTokenNotFound, err)
	})
}

func TestUserService_ForgotPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("known email gets a reset token", func(t *testing.T) {
		f := newUserServiceFixture(t)
		user := f.activeUser(t)

		f.users.EXPECT().GetByEmail(gomock.Any(), testEmail).Return(user, nil)
		f.tokens.EXPECT().IssueEphemeralToken(gomock.Any(), testUserID, domain.TokenKindReset).Return("reset-token", nil)
		f.mailer.EXPECT().SendPasswordResetEmail(gomock.Any(), testEmail, "reset-token").Return(nil)

		assert.NoError(t, f.svc.ForgotPassword(ctx, testEmail))
	})

	t.Run("unknown email succeeds without issuing anything", func(t *testing.T) {
		f := newUserServiceFixture(t)

		f.users.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

		assert.NoError(t, f.svc.ForgotPassword(ctx, "nobody@example.com"))
	})
}

func TestUserService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	newPassword := "Fresh!Passw0rd567"

	t.Run("success", func(t *testing.T) {
		f := newUserServiceFixture(t)
		et := &domain.EphemeralToken{ID: 1, UserID: testUserID, Kind: domain.TokenKindReset}

		f.tokens.EXPECT().ConsumeEphemeralToken(gomock.Any(), "reset-token", domain.TokenKindReset).Return(et, nil)
		f.history.EXPECT().ListPasswordHistory(gomock.Any(), testUserID, 5).Return(nil, nil)
		f.users.EXPECT().UpdatePassword(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).Return(nil)
		f.history.EXPECT().AddPasswordHistory(gomock.Any(), testUserID, gomock.Any()).Return(nil)
		f.history.EXPECT().PrunePasswordHistory(gomock.Any(), testUserID, 5).Return(nil)

		err := f.svc.ResetPassword(ctx, dto.ResetPasswordInput{Token: "reset-token", NewPassword: newPassword})
		assert.NoError(t, err)
	})

	t.Run("weak password leaves the token unconsumed", func(t *testing.T) {
		f := newUserServiceFixture(t)

		err := f.svc.ResetPassword(ctx, dto.ResetPasswordInput{Token: "reset-token", NewPassword: "weak"})
		var vErr *errs.ValidationError
		assert.True(t, errors.As(err, &vErr))
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newUserServiceFixture(t)

		f.tokens.EXPECT().ConsumeEphemeralToken(gomock.Any(), "bad", domain.TokenKindReset).Return(nil, errs.ErrInvalidToken)

		err := f.svc.ResetPassword(ctx, dto.ResetPasswordInput{Token: "bad", NewPassword: newPassword})
		assert.Equal(t, errs.ErrInvalidToken, err)
	})

	t.Run("reused password", func(t *testing.T) {
		f := newUserServiceFixture(t)
		et := &domain.EphemeralToken{ID: 1, UserID: testUserID, Kind: domain.TokenKindReset}
		oldDigest, err := f.hasher.Hash(newPassword)
		require.NoError(t, err)

		f.tokens.EXPECT().ConsumeEphemeralToken(gomock.Any(), "reset-token", domain.TokenKindReset).Return(et, nil)
		f.history.EXPECT().ListPasswordHistory(gomock.Any(), testUserID, 5).
			Return([]domain.PasswordHistoryEntry{{UserID: testUserID, PasswordHash: oldDigest}}, nil)

		err = f.svc.ResetPassword(ctx, dto.ResetPasswordInput{Token: "reset-token", NewPassword: newPassword})
		assert.Equal(t, errs.ErrPasswordReused, err)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	newPassword := "Fresh!Passw0rd567"

	input := dto.ChangePasswordInput{
		CurrentPassword: testPassword,
		NewPassword:     newPassword,
		ConfirmPassword: newPassword,
	}

	t.Run("success", func(t *testing.T) {
		f := newUserServiceFixture(t)
		user := f.activeUser(t)

		f.users.EXPECT().GetByID(gomock.Any(), testUserID).Return(user, nil)
		f.history.EXPECT().ListPasswordHistory(gomock.Any(), testUserID, 5).Return(nil, nil)
		f.users.EXPECT().UpdatePassword(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).Return(nil)
		f.history.EXPECT().AddPasswordHistory(gomock.Any(), testUserID, gomock.Any()).Return(nil)
		f.history.EXPECT().PrunePasswordHistory(gomock.Any(), testUserID, 5).Return(nil)

		assert.NoError(t, f.svc.ChangePassword(ctx, testUserID, input))
	})

	t.Run("wrong current password", func(t *testing.T) {
		f := newUserServiceFixture(t)
		user := f.activeUser(t)

		f.users.EXPECT().GetByID(gomock.Any(), testUserID).Return(user, nil)

		bad := input
		bad.CurrentPassword = "Wrong!Passw0rd999"
		err := f.svc.ChangePassword(ctx, testUserID, bad)
		assert.Equal(t, errs.ErrWrongPassword, err)
	})

	t.Run("new password equals current", func(t *testing.T) {
		f := newUserServiceFixture(t)
		user := f.activeUser(t)

		f.users.EXPECT().GetByID(gomock.Any(), testUserID).Return(user, nil)

		same := dto.ChangePasswordInput{
			CurrentPassword: testPassword,
			NewPassword:     testPassword,
			ConfirmPassword: testPassword,
		}
		err := f.svc.ChangePassword(ctx, testUserID, same)
		assert.Equal(t, errs.ErrSamePassword, err)
	})

	t.Run("password in reuse window", func(t *testing.T) {
		f := newUserServiceFixture(t)
		user := f.activeUser(t)
		oldDigest, err := f.hasher.Hash(newPassword)
		require.NoError(t, err)

		f.users.EXPECT().GetByID(gomock.Any(), testUserID).Return(user, nil)
		f.history.EXPECT().ListPasswordHistory(gomock.Any(), testUserID, 5).
			Return([]domain.PasswordHistoryEntry{{UserID: testUserID, PasswordHash: oldDigest}}, nil)

		err = f.svc.ChangePassword(ctx, testUserID, input)
		assert.Equal(t, errs.ErrPasswordReused, err)
	})

	t.Run("vanished account", func(t *testing.T) {
		f := newUserServiceFixture(t)

		f.users.EXPECT().GetByID(gomock.Any(), testUserID).Return(nil, nil)

		err := f.svc.ChangePassword(ctx, testUserID, input)
		assert.Equal(t, errs.ErrInvalidCredentials, err)
	})
}

func TestUserService_VerifyEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newUserServiceFixture(t)
		et := &domain.EphemeralToken{ID: 1, UserID: testUserID, Kind: domain.TokenKindVerify}

		f.tokens.EXPECT().ConsumeEphemeralToken(gomock.Any(), "verify-token", domain.TokenKindVerify).Return(et, nil)
		f.users.EXPECT().MarkVerified(gomock.Any(), testUserID).Return(nil)

		assert.NoError(t, f.svc.VerifyEmail(ctx, "verify-token"))
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newUserServiceFixture(t)

		f.tokens.EXPECT().ConsumeEphemeralToken(gomock.Any(), "bad", domain.TokenKindVerify).Return(nil, errs.ErrInvalidToken)

		err := f.svc.VerifyEmail(ctx, "bad")
		assert.Equal(t, errs.ErrInvalidToken, err)
	})
}

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		f := newUserServiceFixture(t)
		user := f.activeUser(t)

		f.users.EXPECT().GetByID(gomock.Any(), testUserID).Return(user, nil)

		got, err := f.svc.GetByID(ctx, testUserID)
		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("not found", func(t *testing.T) {
		f := newUserServiceFixture(t)

		f.users.EXPECT().GetByID(gomock.Any(), testUserID).Return(nil, nil)

		_, err := f.svc.GetByID(ctx, testUserID)
		assert.Equal(t, errs.ErrInvalidToken, err)
	})
}
