package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/workq/workq-backend-go/internal/domain/user"
)

type userRepositoryImpl struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, email, password_hash, full_name, employee_code, role,
	oauth_provider, oauth_provider_id, created_at, updated_at`

func scanUser(row *sql.Row) (user.User, error) {
	var u user.User
	var createdAt, updatedAt string
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FullName,
		&u.EmployeeCode,
		&u.Role,
		&u.OAuthProvider,
		&u.OAuthProviderID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return user.User{}, err
	}
	u.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	u.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return u, nil
}

func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	query := `
		INSERT INTO users (id, email, password_hash, full_name, employee_code, role,
			oauth_provider, oauth_provider_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Email, u.PasswordHash, u.FullName, u.EmployeeCode, u.Role,
		u.OAuthProvider, u.OAuthProviderID, now, now,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.email") {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, err
	}

	return r.GetByID(ctx, u.ID)
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return u, nil
}

func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return u, nil
}

func (r *userRepositoryImpl) LinkGoogleAccount(ctx context.Context, googleID string, email string) (user.User, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	query := `
		UPDATE users
		SET oauth_provider = ?, oauth_provider_id = ?, updated_at = ?
		WHERE email = ?
	`
	res, err := r.db.ExecContext(ctx, query, "google", googleID, now, email)
	if err != nil {
		return user.User{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return user.User{}, user.ErrUserNotFound
	}

	return r.GetByEmail(ctx, email)
}
