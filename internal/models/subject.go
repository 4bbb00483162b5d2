package models

import "time"

// Subject represents an academic subject and its credit weights.
type Subject struct {
	ID           string    `db:"id" json:"id"`
	DepartmentID *string   `db:"department_id" json:"department_id,omitempty"`
	Code         string    `db:"code" json:"code"`
	Title        string    `db:"title" json:"title"`
	Units        int       `db:"units" json:"units"`
	LectureHours float64   `db:"lecture_hours" json:"lecture_hours"`
	LabHours     float64   `db:"lab_hours" json:"lab_hours"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// SubjectFilter captures supported filters for listing subjects.
type SubjectFilter struct {
	DepartmentID string
	Search       string
	Page         int
	PageSize     int
	SortBy       string
	SortOrder    string
}
