package dto

// CreateVersionRequest opens a new draft schedule version.
type CreateVersionRequest struct {
	TermID       string  `json:"termId" validate:"required"`
	DepartmentID string  `json:"departmentId" validate:"required"`
	Label        string  `json:"label"`
	Notes        *string `json:"notes"`
}
