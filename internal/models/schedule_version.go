package models

import "time"

// VersionStatus is the lifecycle state of a schedule version.
type VersionStatus string

const (
	VersionDraft    VersionStatus = "Draft"
	VersionActive   VersionStatus = "Active"
	VersionLocked   VersionStatus = "Locked"
	VersionArchived VersionStatus = "Archived"
)

// ScheduleVersion is a named, statused snapshot of class meetings for a
// term+department. At most one version per (term, department) is Active.
type ScheduleVersion struct {
	ID           string        `db:"id" json:"id"`
	TermID       string        `db:"term_id" json:"term_id"`
	DepartmentID string        `db:"department_id" json:"department_id"`
	Version      int           `db:"version" json:"version"`
	Label        string        `db:"label" json:"label"`
	Status       VersionStatus `db:"status" json:"status"`
	CreatedBy    string        `db:"created_by" json:"created_by"`
	LockedBy     *string       `db:"locked_by" json:"locked_by,omitempty"`
	LockedAt     *time.Time    `db:"locked_at" json:"locked_at,omitempty"`
	Notes        *string       `db:"notes" json:"notes,omitempty"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updated_at"`
}
