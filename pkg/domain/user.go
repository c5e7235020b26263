package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical textual form of the ID.
func (id UserID) String() string { return uuid.UUID(id).String() }

// UserRole is the role granted to a user at registration.
type UserRole string

const (
	// UserRoleTechnician performs maintenance and submits checklist responses.
	UserRoleTechnician UserRole = "technician"
	// UserRoleManager authors checklists and follows the dashboard.
	UserRoleManager UserRole = "manager"
)

// User is a registered account. Users are immutable once registered.
type User struct {
	ID UserID `json:"id"`

	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewUser carries the registration payload submitted by a caller.
type NewUser struct {
	Name     string
	Email    string
	Password string
	// RegistrationKey is matched against the configured role keys to pick the role.
	RegistrationKey string
}

// Token is a signed bearer token issued on login.
type Token struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}
