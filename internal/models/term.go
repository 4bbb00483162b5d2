package models

import "time"

// Term models an academic term (school year + semester).
type Term struct {
	ID         string    `db:"id" json:"id"`
	SchoolYear string    `db:"school_year" json:"school_year"`
	Semester   int       `db:"semester" json:"semester"`
	IsActive   bool      `db:"is_active" json:"is_active"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// TermFilter defines filters supported by list endpoints.
type TermFilter struct {
	SchoolYear string
	Semester   int
	IsActive   *bool
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
