package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/lumenchat/auth-service/internal/auth/service TokenGenerator

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lumenchat/auth-service/config"
	"github.com/lumenchat/auth-service/internal/auth/domain"
	errs "github.com/lumenchat/auth-service/internal/errors"
)

const (
	accessTokenType  = "access"
	opaqueTokenBytes = 32
)

// TokenGenerator issues and validates the three credential kinds: signed
// stateless access tokens, stored opaque refresh tokens, and single-use
// ephemeral tokens.
type TokenGenerator interface {
	IssueAccessToken(userID int64) (string, time.Time, error)
	VerifyAccessToken(tokenString string) (*AccessClaims, error)
	IssueRefreshToken(ctx context.Context, userID int64, ipAddress, userAgent string) (string, error)
	VerifyRefreshToken(ctx context.Context, token string) (*domain.RefreshToken, error)
	RotateRefreshToken(ctx context.Context, old *domain.RefreshToken, ipAddress, userAgent string) (string, error)
	RevokeRefreshToken(ctx context.Context, token string) (bool, error)
	IssueEphemeralToken(ctx context.Context, userID int64, kind domain.TokenKind) (string, error)
	ConsumeEphemeralToken(ctx context.Context, token string, kind domain.TokenKind) (*domain.EphemeralToken, error)
	AccessTokenTTL() time.Duration
}

type AccessClaims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"user_id"`
	TokenType string `json:"token_type"`
}

type TokenService struct {
	refreshTokens   domain.RefreshTokenRepository
	ephemeralTokens domain.EphemeralTokenRepository

	accessSecret      string
	accessExpiry      time.Duration
	refreshExpiry     time.Duration
	verifyTokenExpiry time.Duration
	resetTokenExpiry  time.Duration
}

func NewTokenService(refreshTokens domain.RefreshTokenRepository, ephemeralTokens domain.EphemeralTokenRepository, cfg *config.Config) *TokenService {
	return &TokenService{
		refreshTokens:     refreshTokens,
		ephemeralTokens:   ephemeralTokens,
		accessSecret:      cfg.AccessTokenSecret,
		accessExpiry:      time.Duration(cfg.AccessExpiryMin) * time.Minute,
		refreshExpiry:     time.Duration(cfg.RefreshExpiryMin) * time.Minute,
		verifyTokenExpiry: time.Duration(cfg.VerifyTokenExpiryMin) * time.Minute,
		resetTokenExpiry:  time.Duration(cfg.ResetTokenExpiryMin) * time.Minute,
	}
}

// IssueAccessToken signs a self-contained HS256 token for the given account.
// No server-side record is kept.
func (ts *TokenService) IssueAccessToken(userID int64) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(ts.accessExpiry)

	claims := AccessClaims{
		UserID:    userID,
		TokenType: accessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.accessSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, expiresAt, nil
}

// VerifyAccessToken parses and validates an access token. Every structural or
// cryptographic failure collapses into the same generic error.
func (ts *TokenService) VerifyAccessToken(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.accessSecret), nil
	})
	if err != nil || !token.Valid || claims.TokenType != accessTokenType {
		return nil, errs.ErrInvalidToken
	}
	return claims, nil
}

func (ts *TokenService) IssueRefreshToken(ctx context.Context, userID int64, ipAddress, userAgent string) (string, error) {
	token, err := newOpaqueToken()
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	rt := &domain.RefreshToken{
		UserID:    userID,
		Token:     token,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		ExpiresAt: now.Add(ts.refreshExpiry),
		CreatedAt: now,
		Revoked:   false,
	}
	if err := ts.refreshTokens.StoreRefreshToken(ctx, rt); err != nil {
		return "", err
	}
	return token, nil
}

// VerifyRefreshToken resolves the stored record behind an opaque token.
// Missing, revoked and expired records all read as the same generic error.
func (ts *TokenService) VerifyRefreshToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	rt, err := ts.refreshTokens.GetRefreshToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if rt == nil || rt.Revoked || time.Now().UTC().After(rt.ExpiresAt) {
		return nil, errs.ErrInvalidToken
	}
	return rt, nil
}

// RotateRefreshToken revokes the presented token and issues a replacement.
// Every refresh call rotates, so a token is usable at most once.
func (ts *TokenService) RotateRefreshToken(ctx context.Context, old *domain.RefreshToken, ipAddress, userAgent string) (string, error) {
	if _, err := ts.refreshTokens.RevokeRefreshToken(ctx, old.Token); err != nil {
		return "", fmt.Errorf("failed to revoke token: %w", err)
	}

	newToken, err := ts.IssueRefreshToken(ctx, old.UserID, ipAddress, userAgent)
	if err != nil {
		return "", fmt.Errorf("failed to issue replacement token: %w", err)
	}

	// Expired rows are only dead weight at this point; sweep them
	// opportunistically.
	if _, err := ts.refreshTokens.DeleteExpiredRefreshTokens(ctx); err != nil {
		log.Printf("warn: failed to delete expired refresh tokens: %v", err)
	}

	return newToken, nil
}

func (ts *TokenService) RevokeRefreshToken(ctx context.Context, token string) (bool, error) {
	return ts.refreshTokens.RevokeRefreshToken(ctx, token)
}

func (ts *TokenService) IssueEphemeralToken(ctx context.Context, userID int64, kind domain.TokenKind) (string, error) {
	token, err := newOpaqueToken()
	if err != nil {
		return "", err
	}

	ttl := ts.verifyTokenExpiry
	if kind == domain.TokenKindReset {
		ttl = ts.resetTokenExpiry
	}

	now := time.Now().UTC()
	et := &domain.EphemeralToken{
		UserID:    userID,
		Token:     token,
		Kind:      kind,
		ExpiresAt: now.Add(ttl),
		Used:      false,
		CreatedAt: now,
	}
	if err := ts.ephemeralTokens.StoreEphemeralToken(ctx, et); err != nil {
		return "", err
	}
	return token, nil
}

func (ts *TokenService) ConsumeEphemeralToken(ctx context.Context, token string, kind domain.TokenKind) (*domain.EphemeralToken, error) {
	et, err := ts.ephemeralTokens.ConsumeEphemeralToken(ctx, token, kind)
	if err != nil {
		return nil, err
	}
	if et == nil {
		return nil, errs.ErrInvalidToken
	}
	return et, nil
}

func (ts *TokenService) AccessTokenTTL() time.Duration {
	return ts.accessExpiry
}

func newOpaqueToken() (string, error) {
	buf := make([]byte, opaqueTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
