package user

import "context"

// UserRepository defines data access for user accounts. Implementations
// translate their driver's no-rows error into ErrUserNotFound so services
// stay backend-agnostic.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	LinkGoogleAccount(ctx context.Context, googleID string, email string) (User, error)
}
