package auth

import "context"

// RefreshTokenRepository persists issued refresh tokens. Implementations
// store only the SHA-256 hash of the token, never the token itself.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, userID string, token string, expiresAt int64, tracking SessionTrackingRequest) error
	// IsRefreshTokenRevoked reports whether the token is revoked or expired.
	// Unknown tokens yield ErrInvalidToken.
	IsRefreshTokenRevoked(ctx context.Context, token string) (bool, error)
	// RefreshTokenUserID resolves the owning user of a stored token.
	RefreshTokenUserID(ctx context.Context, token string) (string, error)
	RevokeRefreshToken(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}
