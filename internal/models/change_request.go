package models

import "time"

// ChangeRequestStatus is the review state of a change request.
type ChangeRequestStatus string

const (
	RequestPending   ChangeRequestStatus = "Pending"
	RequestApproved  ChangeRequestStatus = "Approved"
	RequestRejected  ChangeRequestStatus = "Rejected"
	RequestCancelled ChangeRequestStatus = "Cancelled"
)

// ChangeRequest asks a reviewer to alter a class or meeting. Only Pending
// requests may be approved or rejected; cancellation belongs to the requester.
type ChangeRequest struct {
	ID              string              `db:"id" json:"id"`
	TermID          string              `db:"term_id" json:"term_id"`
	DepartmentID    string              `db:"department_id" json:"department_id"`
	RequestedBy     string              `db:"requested_by" json:"requested_by"`
	ClassID         *string             `db:"class_id" json:"class_id,omitempty"`
	MeetingID       *string             `db:"meeting_id" json:"meeting_id,omitempty"`
	Type            string              `db:"type" json:"type"`
	Details         string              `db:"details" json:"details"`
	Status          ChangeRequestStatus `db:"status" json:"status"`
	ReviewedBy      *string             `db:"reviewed_by" json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time          `db:"reviewed_at" json:"reviewed_at,omitempty"`
	ResolutionNotes *string             `db:"resolution_notes" json:"resolution_notes,omitempty"`
	CreatedAt       time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time           `db:"updated_at" json:"updated_at"`
}

// ChangeRequestFilter scopes change request listings.
type ChangeRequestFilter struct {
	TermID       string
	DepartmentID string
	RequestedBy  string
	Status       ChangeRequestStatus
	Page         int
	PageSize     int
}
