package auth

import (
	"context"

	"github.com/workq/workq-backend-go/internal/domain/user"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (user.User, error)
	Login(ctx context.Context, req LoginRequest, tracking SessionTrackingRequest) (TokenResponse, error)
	LoginWithGoogle(ctx context.Context, googleEmail string, googleID string, tracking SessionTrackingRequest) (TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string, tracking SessionTrackingRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	// LogoutAll revokes every outstanding refresh token for the user,
	// ending all of their sessions at once.
	LogoutAll(ctx context.Context, userID string) error
}
