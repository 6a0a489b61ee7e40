package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Can register new employees
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	FullName        string
	EmployeeCode    string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if user can manage other accounts
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
