package models

import "time"

// Section represents a student cohort within a term and department.
// (TermID, DepartmentID, YearLevel, Name) is unique, case-insensitive on Name.
type Section struct {
	ID           string    `db:"id" json:"id"`
	TermID       string    `db:"term_id" json:"term_id"`
	DepartmentID string    `db:"department_id" json:"department_id"`
	ProgramID    *string   `db:"program_id" json:"program_id,omitempty"`
	YearLevel    int       `db:"year_level" json:"year_level"`
	Name         string    `db:"name" json:"name"`
	StudentCount *int      `db:"student_count" json:"student_count,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// SectionFilter defines filter criteria for listing sections.
type SectionFilter struct {
	TermID       string
	DepartmentID string
	ProgramID    string
	YearLevel    int
	Page         int
	PageSize     int
	SortBy       string
	SortOrder    string
}
