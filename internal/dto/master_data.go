package dto

// CreateTermRequest registers an academic term.
type CreateTermRequest struct {
	SchoolYear string `json:"schoolYear" validate:"required"`
	Semester   int    `json:"semester" validate:"required,min=1,max=3"`
}

// CreateSectionRequest registers a student section.
type CreateSectionRequest struct {
	TermID       string  `json:"termId" validate:"required"`
	DepartmentID string  `json:"departmentId" validate:"required"`
	ProgramID    *string `json:"programId"`
	YearLevel    int     `json:"yearLevel" validate:"required,min=1"`
	Name         string  `json:"name" validate:"required"`
	StudentCount *int    `json:"studentCount" validate:"omitempty,min=0"`
}

// CreateSubjectRequest registers a subject.
type CreateSubjectRequest struct {
	DepartmentID *string `json:"departmentId"`
	Code         string  `json:"code" validate:"required"`
	Title        string  `json:"title" validate:"required"`
	Units        int     `json:"units" validate:"required,min=0"`
	LectureHours float64 `json:"lectureHours" validate:"min=0"`
	LabHours     float64 `json:"labHours" validate:"min=0"`
}

// CreateRoomRequest registers a room.
type CreateRoomRequest struct {
	Code     string `json:"code" validate:"required"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity" validate:"min=0"`
}

// CreateTimeBlockRequest registers a scheduling window for a term.
type CreateTimeBlockRequest struct {
	TermID    string `json:"termId" validate:"required"`
	DayOfWeek string `json:"dayOfWeek" validate:"required"`
	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`
}

// UpsertPolicyRequest sets a policy value for a term (or GLOBAL).
type UpsertPolicyRequest struct {
	TermID      string  `json:"termId" validate:"required"`
	Key         string  `json:"key" validate:"required"`
	Value       string  `json:"value" validate:"required"`
	Description *string `json:"description"`
}
