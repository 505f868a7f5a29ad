package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lumenchat/auth-service/internal/auth/domain"
)

// DB is the subset of pgxpool.Pool the repository needs. pgxmock pools
// satisfy it too, which keeps the repository testable without a database.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, email, first_name, last_name, password_hash, is_active, is_verified,
		failed_login_attempts, locked_until, password_changed_at, last_login_at, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.PasswordHash,
		&user.Active, &user.Verified, &user.FailedLoginAttempts, &user.LockedUntil,
		&user.PasswordChangedAt, &user.LastLoginAt, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1;`

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1;`

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (email, first_name, last_name, password_hash, is_active, is_verified,
			password_changed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;`

	err := r.db.QueryRow(ctx, query,
		user.Email, user.FirstName, user.LastName, user.PasswordHash,
		user.Active, user.Verified, user.PasswordChangedAt, user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string, changedAt time.Time) error {
	query := `
		UPDATE users
		SET password_hash = $2, password_changed_at = $3, updated_at = $3
		WHERE id = $1;`

	_, err := r.db.Exec(ctx, query, userID, passwordHash, changedAt)
	return err
}

func (r *PostgresRepository) MarkVerified(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET is_verified = TRUE, updated_at = now() WHERE id = $1;`, userID)
	return err
}

// IncrementFailedLogin is a single statement so two concurrent failures
// against the same account cannot lose an update.
func (r *PostgresRepository) IncrementFailedLogin(ctx context.Context, userID int64, threshold, lockMinutes int) error {
	query := `
		UPDATE users
		SET failed_login_attempts = failed_login_attempts + 1,
			locked_until = CASE
				WHEN failed_login_attempts + 1 >= $2 THEN now() + $3 * INTERVAL '1 minute'
				ELSE locked_until
			END,
			updated_at = now()
		WHERE id = $1;`

	_, err := r.db.Exec(ctx, query, userID, threshold, lockMinutes)
	return err
}

func (r *PostgresRepository) ResetFailedLogin(ctx context.Context, userID int64, lastLogin time.Time) error {
	query := `
		UPDATE users
		SET failed_login_attempts = 0, locked_until = NULL, last_login_at = $2, updated_at = $2
		WHERE id = $1;`

	_, err := r.db.Exec(ctx, query, userID, lastLogin)
	return err
}

func (r *PostgresRepository) StoreRefreshToken(ctx context.Context, rt *domain.RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (user_id, token, ip_address, user_agent, expires_at, revoked, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;`

	err := r.db.QueryRow(ctx, query,
		rt.UserID, rt.Token, rt.IPAddress, rt.UserAgent, rt.ExpiresAt, rt.Revoked, rt.CreatedAt,
	).Scan(&rt.ID)
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetRefreshToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	query := `
		SELECT id, user_id, token, ip_address, user_agent, expires_at, revoked, created_at
		FROM refresh_tokens
		WHERE token = $1
		LIMIT 1;`

	var rt domain.RefreshToken
	err := r.db.QueryRow(ctx, query, token).Scan(&rt.ID, &rt.UserID, &rt.Token,
		&rt.IPAddress, &rt.UserAgent, &rt.ExpiresAt, &rt.Revoked, &rt.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return &rt, nil
}

func (r *PostgresRepository) RevokeRefreshToken(ctx context.Context, token string) (bool, error) {
	ct, err := r.db.Exec(ctx, `UPDATE refresh_tokens SET revoked = TRUE WHERE token = $1;`, token)
	if err != nil {
		return false, fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}

func (r *PostgresRepository) DeleteExpiredRefreshTokens(ctx context.Context) (int64, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at < now();`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}
	return ct.RowsAffected(), nil
}

func (r *PostgresRepository) AddPasswordHistory(ctx context.Context, userID int64, passwordHash string) error {
	query := `INSERT INTO password_history (user_id, password_hash) VALUES ($1, $2);`

	_, err := r.db.Exec(ctx, query, userID, passwordHash)
	return err
}

func (r *PostgresRepository) ListPasswordHistory(ctx context.Context, userID int64, limit int) ([]domain.PasswordHistoryEntry, error) {
	query := `
		SELECT id, user_id, password_hash, created_at
		FROM password_history
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2;`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list password history: %w", err)
	}
	defer rows.Close()

	var entries []domain.PasswordHistoryEntry
	for rows.Next() {
		var e domain.PasswordHistoryEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.PasswordHash, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan password history entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PostgresRepository) PrunePasswordHistory(ctx context.Context, userID int64, keep int) error {
	query := `
		DELETE FROM password_history
		WHERE user_id = $1 AND id NOT IN (
			SELECT id FROM password_history
			WHERE user_id = $1
			ORDER BY created_at DESC
			LIMIT $2
		);`

	_, err := r.db.Exec(ctx, query, userID, keep)
	return err
}

func (r *PostgresRepository) StoreEphemeralToken(ctx context.Context, et *domain.EphemeralToken) error {
	query := `
		INSERT INTO ephemeral_tokens (user_id, token, kind, expires_at, used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;`

	err := r.db.QueryRow(ctx, query,
		et.UserID, et.Token, string(et.Kind), et.ExpiresAt, et.Used, et.CreatedAt,
	).Scan(&et.ID)
	if err != nil {
		return fmt.Errorf("failed to store ephemeral token: %w", err)
	}
	return nil
}

// ConsumeEphemeralToken flips used in the same statement that checks
// validity, so double redemption under concurrent requests is impossible.
func (r *PostgresRepository) ConsumeEphemeralToken(ctx context.Context, token string, kind domain.TokenKind) (*domain.EphemeralToken, error) {
	query := `
		UPDATE ephemeral_tokens
		SET used = TRUE
		WHERE token = $1 AND kind = $2 AND NOT used AND expires_at > now()
		RETURNING id, user_id, token, kind, expires_at, used, created_at;`

	var et domain.EphemeralToken
	err := r.db.QueryRow(ctx, query, token, string(kind)).Scan(&et.ID, &et.UserID, &et.Token,
		&et.Kind, &et.ExpiresAt, &et.Used, &et.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to consume ephemeral token: %w", err)
	}
	return &et, nil
}
