package response

import (
	"errors"
	"net/http"

	"github.com/workq/workq-backend-go/internal/domain/auth"
	"github.com/workq/workq-backend-go/internal/domain/timesheet"
	"github.com/workq/workq-backend-go/internal/domain/user"
	"github.com/workq/workq-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound):
		Unauthorized(w, "Refresh token cookie not found")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrOAuthExchangeFailed):
		Unauthorized(w, "OAuth code exchange failed")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrInvalidDateKey):
		BadRequest(w, "Date must use the YYYY-MM-DD format", nil)
	case errors.Is(err, timesheet.ErrSessionNotFound):
		NotFound(w, "Timesheet session not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
