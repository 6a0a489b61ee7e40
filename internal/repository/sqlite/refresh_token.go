package sqlite

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/workq/workq-backend-go/internal/domain/auth"
)

type refreshTokenRepositoryImpl struct {
	db *sql.DB
}

func NewRefreshTokenRepository(db *sql.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

// hashToken hashes the input string using SHA256 and encodes the result in base64.
func (r *refreshTokenRepositoryImpl) hashToken(input string) string {
	hash := sha256.Sum256([]byte(input))
	return base64.StdEncoding.EncodeToString(hash[:])
}

func (r *refreshTokenRepositoryImpl) CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, tracking auth.SessionTrackingRequest) error {
	query := `
		INSERT INTO refresh_tokens (id, user_id, token_hash, user_agent, ip_address, expires_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		uuid.NewString(), userID, r.hashToken(token),
		tracking.UserAgent, tracking.IPAddress,
		time.Unix(expiresAt, 0).UTC().Format(time.RFC3339),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func (r *refreshTokenRepositoryImpl) IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error) {
	query := `
		SELECT revoked_at, expires_at
		FROM refresh_tokens
		WHERE token_hash = ?
		ORDER BY expires_at DESC
		LIMIT 1
	`

	var revokedAt *string
	var expiresAtRaw string

	err := r.db.QueryRowContext(ctx, query, r.hashToken(token)).Scan(&revokedAt, &expiresAtRaw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, auth.ErrInvalidToken
		}
		return false, err
	}

	expiresAt, err := time.Parse(time.RFC3339, expiresAtRaw)
	if err != nil {
		return false, err
	}

	if revokedAt != nil || !expiresAt.After(time.Now()) {
		return true, nil
	}
	return false, nil
}

func (r *refreshTokenRepositoryImpl) RefreshTokenUserID(ctx context.Context, token string) (string, error) {
	query := `
		SELECT user_id
		FROM refresh_tokens
		WHERE token_hash = ?
		ORDER BY expires_at DESC
		LIMIT 1
	`

	var userID string
	err := r.db.QueryRowContext(ctx, query, r.hashToken(token)).Scan(&userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", auth.ErrInvalidToken
		}
		return "", err
	}

	return userID, nil
}

func (r *refreshTokenRepositoryImpl) RevokeRefreshToken(ctx context.Context, token string) error {
	query := `
		UPDATE refresh_tokens
		SET revoked_at = ?
		WHERE token_hash = ? AND revoked_at IS NULL
	`
	_, err := r.db.ExecContext(ctx, query, time.Now().UTC().Format(time.RFC3339), r.hashToken(token))
	return err
}

func (r *refreshTokenRepositoryImpl) RevokeAllForUser(ctx context.Context, userID string) error {
	query := `
		UPDATE refresh_tokens
		SET revoked_at = ?
		WHERE user_id = ? AND revoked_at IS NULL
	`
	_, err := r.db.ExecContext(ctx, query, time.Now().UTC().Format(time.RFC3339), userID)
	return err
}
