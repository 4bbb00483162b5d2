package models

import "time"

// FacultyRole enumerates roster roles.
type FacultyRole string

const (
	RoleFaculty FacultyRole = "FACULTY"
	RoleChair   FacultyRole = "CHAIR"
	RoleDean    FacultyRole = "DEAN"
)

// FacultyUser is a roster entry for a teaching staff member.
type FacultyUser struct {
	UserID    string      `db:"user_id" json:"user_id"`
	Name      string      `db:"name" json:"name"`
	Email     string      `db:"email" json:"email"`
	Role      FacultyRole `db:"role" json:"role"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt time.Time   `db:"updated_at" json:"updated_at"`
}

// FacultyProfile holds department placement and load limits, 1:1 with FacultyUser.
// MaxUnits/MaxHours of zero mean no limit is configured.
type FacultyProfile struct {
	UserID       string    `db:"user_id" json:"user_id"`
	DepartmentID string    `db:"department_id" json:"department_id"`
	EmployeeNo   *string   `db:"employee_no" json:"employee_no,omitempty"`
	Rank         *string   `db:"rank" json:"rank,omitempty"`
	MaxUnits     int       `db:"max_units" json:"max_units"`
	MaxHours     float64   `db:"max_hours" json:"max_hours"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// FacultyFilter captures list filters for the roster.
type FacultyFilter struct {
	DepartmentID string
	Role         FacultyRole
	Search       string
	Page         int
	PageSize     int
	SortBy       string
	SortOrder    string
}
