package models

import "time"

// UserRole governs API access. Faculty roster roles map onto these plus ADMIN.
type UserRole string

const (
	UserRoleAdmin   UserRole = "ADMIN"
	UserRoleDean    UserRole = "DEAN"
	UserRoleChair   UserRole = "CHAIR"
	UserRoleFaculty UserRole = "FACULTY"
)

// User is an account that can sign in to the dashboard API.
type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Name         string    `db:"name" json:"name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// TokenClaims is the decoded JWT payload attached to authenticated requests.
type TokenClaims struct {
	UserID string   `json:"user_id"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
}
