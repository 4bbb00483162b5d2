package dto

// Load status labels for faculty load rows.
const (
	LoadStatusOK       = "OK"
	LoadStatusNoLoad   = "No Load"
	LoadStatusOverload = "Overload"
)

// Conflict type labels, emitted in this order.
const (
	ConflictRoom    = "ROOM"
	ConflictFaculty = "FACULTY"
	ConflictSection = "SECTION"
)

// FacultyLoadRow summarises one faculty member's assigned load.
type FacultyLoadRow struct {
	FacultyUserID string  `json:"faculty_user_id"`
	FacultyName   string  `json:"faculty_name"`
	ClassesCount  int     `json:"classes_count"`
	TotalUnits    int     `json:"total_units"`
	TotalMinutes  int     `json:"total_minutes"`
	TotalHours    float64 `json:"total_hours"`
	MaxUnits      int     `json:"max_units"`
	MaxHours      float64 `json:"max_hours"`
	Status        string  `json:"status"`
}

// RoomUtilRow reports one room's share of the weekly open-hours capacity.
type RoomUtilRow struct {
	RoomID           string  `json:"room_id"`
	RoomCode         string  `json:"room_code"`
	RoomName         string  `json:"room_name"`
	UsedMinutes      int     `json:"used_minutes"`
	AvailableMinutes int     `json:"available_minutes"`
	UtilizationPct   float64 `json:"utilization_pct"`
}

// ConflictItem describes one pair of meetings colliding on a shared resource.
type ConflictItem struct {
	Type      string `json:"type"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Resource  string `json:"resource"`
	ClassA    string `json:"class_a"`
	ClassB    string `json:"class_b"`
}

// ScheduleRow is a flat, display-ready meeting row.
type ScheduleRow struct {
	SectionName  string `json:"section_name"`
	SubjectCode  string `json:"subject_code"`
	SubjectTitle string `json:"subject_title"`
	FacultyName  string `json:"faculty_name"`
	DayOfWeek    string `json:"day_of_week"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	RoomCode     string `json:"room_code"`
	MeetingType  string `json:"meeting_type"`
	ClassID      string `json:"class_id"`
}
