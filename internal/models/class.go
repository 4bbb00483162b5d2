package models

import "time"

// MeetingType distinguishes lecture, lab and other class meetings.
type MeetingType string

const (
	MeetingLecture MeetingType = "LECTURE"
	MeetingLab     MeetingType = "LAB"
	MeetingOther   MeetingType = "OTHER"
)

// ClassOffering pairs a subject with a section and an optional faculty member
// inside a schedule version. It carries no time or room information.
type ClassOffering struct {
	ID            string    `db:"id" json:"id"`
	TermID        string    `db:"term_id" json:"term_id"`
	DepartmentID  string    `db:"department_id" json:"department_id"`
	VersionID     string    `db:"version_id" json:"version_id"`
	SectionID     string    `db:"section_id" json:"section_id"`
	SubjectID     string    `db:"subject_id" json:"subject_id"`
	FacultyUserID string    `db:"faculty_user_id" json:"faculty_user_id"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// ClassMeeting is a concrete day/time/room occurrence of an offering.
type ClassMeeting struct {
	ID          string      `db:"id" json:"id"`
	ClassID     string      `db:"class_id" json:"class_id"`
	VersionID   string      `db:"version_id" json:"version_id"`
	DayOfWeek   string      `db:"day_of_week" json:"day_of_week"`
	StartTime   string      `db:"start_time" json:"start_time"`
	EndTime     string      `db:"end_time" json:"end_time"`
	RoomID      string      `db:"room_id" json:"room_id"`
	MeetingType MeetingType `db:"meeting_type" json:"meeting_type"`
	Notes       *string     `db:"notes" json:"notes,omitempty"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updated_at"`
}

// ClassFilter scopes offering lists.
type ClassFilter struct {
	TermID       string
	DepartmentID string
	VersionID    string
	SectionID    string
	SubjectID    string
	FacultyID    string
	Page         int
	PageSize     int
}
