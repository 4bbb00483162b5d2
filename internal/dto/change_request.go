package dto

// CreateChangeRequestRequest files a schedule change request.
type CreateChangeRequestRequest struct {
	TermID       string  `json:"termId" validate:"required"`
	DepartmentID string  `json:"departmentId" validate:"required"`
	ClassID      *string `json:"classId"`
	MeetingID    *string `json:"meetingId"`
	Type         string  `json:"type" validate:"required"`
	Details      string  `json:"details" validate:"required"`
}

// ReviewChangeRequestRequest resolves a pending change request.
type ReviewChangeRequestRequest struct {
	Approve         bool    `json:"approve"`
	ResolutionNotes *string `json:"resolutionNotes"`
}
