package dto

// CreateClassRequest registers a class offering inside a schedule version.
type CreateClassRequest struct {
	TermID        string `json:"termId" validate:"required"`
	DepartmentID  string `json:"departmentId" validate:"required"`
	VersionID     string `json:"versionId" validate:"required"`
	SectionID     string `json:"sectionId" validate:"required"`
	SubjectID     string `json:"subjectId" validate:"required"`
	FacultyUserID string `json:"facultyUserId"`
}

// UpdateClassRequest reassigns the faculty member of an offering.
type UpdateClassRequest struct {
	FacultyUserID *string `json:"facultyUserId"`
}

// CreateMeetingRequest schedules a concrete meeting for an offering.
type CreateMeetingRequest struct {
	ClassID     string  `json:"classId" validate:"required"`
	DayOfWeek   string  `json:"dayOfWeek" validate:"required"`
	StartTime   string  `json:"startTime" validate:"required"`
	EndTime     string  `json:"endTime" validate:"required"`
	RoomID      string  `json:"roomId"`
	MeetingType string  `json:"meetingType" validate:"omitempty,oneof=LECTURE LAB OTHER"`
	Notes       *string `json:"notes"`
}

// UpdateMeetingRequest moves or retags an existing meeting.
type UpdateMeetingRequest struct {
	DayOfWeek   *string `json:"dayOfWeek"`
	StartTime   *string `json:"startTime"`
	EndTime     *string `json:"endTime"`
	RoomID      *string `json:"roomId"`
	MeetingType *string `json:"meetingType" validate:"omitempty,oneof=LECTURE LAB OTHER"`
	Notes       *string `json:"notes"`
}
