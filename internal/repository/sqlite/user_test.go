package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workq/workq-backend-go/internal/domain/auth"
	"github.com/workq/workq-backend-go/internal/domain/user"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	hash := "bcrypt-hash"
	created, err := repo.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Email:        "jane@example.com",
		PasswordHash: &hash,
		FullName:     "Jane Doe",
		EmployeeCode: "EMP-042",
		Role:         user.RoleAdmin,
	})
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	byEmail, err := repo.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.True(t, byEmail.IsAdmin())
	require.NotNil(t, byEmail.PasswordHash)
	assert.Equal(t, hash, *byEmail.PasswordHash)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, user.User{
		ID: uuid.NewString(), Email: "dup@example.com",
		FullName: "First", EmployeeCode: "EMP-1", Role: user.RoleEmployee,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, user.User{
		ID: uuid.NewString(), Email: "dup@example.com",
		FullName: "Second", EmployeeCode: "EMP-2", Role: user.RoleEmployee,
	})
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestUserRepository_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	_, err = repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserRepository_LinkGoogleAccount(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, user.User{
		ID: uuid.NewString(), Email: "link@example.com",
		FullName: "Linked", EmployeeCode: "EMP-9", Role: user.RoleEmployee,
	})
	require.NoError(t, err)

	linked, err := repo.LinkGoogleAccount(ctx, "google-123", "link@example.com")
	require.NoError(t, err)
	require.NotNil(t, linked.OAuthProvider)
	assert.Equal(t, "google", *linked.OAuthProvider)
	require.NotNil(t, linked.OAuthProviderID)
	assert.Equal(t, "google-123", *linked.OAuthProviderID)

	_, err = repo.LinkGoogleAccount(ctx, "google-123", "missing@example.com")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestRefreshTokenRepository_RevokeFlow(t *testing.T) {
	db := openTestDB(t)
	userID := createTestUser(t, db)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()

	token := "opaque-refresh-token"
	expiresAt := time.Now().Add(time.Hour).Unix()
	tracking := auth.SessionTrackingRequest{UserAgent: "go-test", IPAddress: "127.0.0.1"}

	require.NoError(t, repo.CreateRefreshToken(ctx, userID, token, expiresAt, tracking))

	revoked, err := repo.IsRefreshTokenRevoked(ctx, token)
	require.NoError(t, err)
	assert.False(t, revoked)

	owner, err := repo.RefreshTokenUserID(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, owner)

	require.NoError(t, repo.RevokeRefreshToken(ctx, token))

	revoked, err = repo.IsRefreshTokenRevoked(ctx, token)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRefreshTokenRepository_UnknownToken(t *testing.T) {
	db := openTestDB(t)
	repo := NewRefreshTokenRepository(db)

	_, err := repo.IsRefreshTokenRevoked(context.Background(), "never-issued")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshTokenRepository_ExpiredCountsAsRevoked(t *testing.T) {
	db := openTestDB(t)
	userID := createTestUser(t, db)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()

	token := "stale-token"
	expiresAt := time.Now().Add(-time.Minute).Unix()
	require.NoError(t, repo.CreateRefreshToken(ctx, userID, token, expiresAt, auth.SessionTrackingRequest{}))

	revoked, err := repo.IsRefreshTokenRevoked(ctx, token)
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRefreshTokenRepository_RevokeAllForUser(t *testing.T) {
	db := openTestDB(t)
	userID := createTestUser(t, db)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()

	expiresAt := time.Now().Add(time.Hour).Unix()
	require.NoError(t, repo.CreateRefreshToken(ctx, userID, "tok-1", expiresAt, auth.SessionTrackingRequest{}))
	require.NoError(t, repo.CreateRefreshToken(ctx, userID, "tok-2", expiresAt, auth.SessionTrackingRequest{}))

	require.NoError(t, repo.RevokeAllForUser(ctx, userID))

	for _, tok := range []string{"tok-1", "tok-2"} {
		revoked, err := repo.IsRefreshTokenRevoked(ctx, tok)
		require.NoError(t, err)
		assert.True(t, revoked)
	}
}
