package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/acadsched-api/internal/models"
)

func scheduleFixture() ReportSnapshot {
	return ReportSnapshot{
		Subjects: []models.Subject{
			{ID: "sub-1", Code: "CS101", Title: "Intro to Computing", Units: 3},
		},
		Sections: []models.Section{
			{ID: "sec-1", Name: "A"},
			{ID: "sec-2", Name: "B"},
		},
		Rooms: []models.Room{
			{ID: "room-1", Code: "R1"},
		},
		Faculty: []models.FacultyUser{
			{UserID: "fac-1", Name: "Alice Cruz"},
		},
		Offerings: []models.ClassOffering{
			{ID: "cls-1", SectionID: "sec-2", SubjectID: "sub-1", FacultyUserID: "fac-1"},
			{ID: "cls-2", SectionID: "sec-1", SubjectID: "sub-1"},
		},
	}
}

func TestBuildScheduleRowsJoinAndSort(t *testing.T) {
	snap := scheduleFixture()
	snap.Meetings = []models.ClassMeeting{
		{ID: "m-1", ClassID: "cls-1", DayOfWeek: "Monday", StartTime: "10:00", EndTime: "11:00", RoomID: "room-1", MeetingType: models.MeetingLecture},
		{ID: "m-2", ClassID: "cls-2", DayOfWeek: "Monday", StartTime: "08:00", EndTime: "09:00", MeetingType: models.MeetingLecture},
		{ID: "m-3", ClassID: "cls-1", DayOfWeek: "Monday", StartTime: "08:00", EndTime: "09:00", RoomID: "room-1", MeetingType: models.MeetingLab},
	}

	rows := BuildScheduleRows(snap)
	require.Len(t, rows, 3)

	// Section A first, then section B ordered by start time.
	assert.Equal(t, "A", rows[0].SectionName)
	assert.Equal(t, "TBA", rows[0].FacultyName)
	assert.Equal(t, "-", rows[0].RoomCode)

	assert.Equal(t, "B", rows[1].SectionName)
	assert.Equal(t, "08:00", rows[1].StartTime)
	assert.Equal(t, "LAB", rows[1].MeetingType)

	assert.Equal(t, "B", rows[2].SectionName)
	assert.Equal(t, "10:00", rows[2].StartTime)
	assert.Equal(t, "Alice Cruz", rows[2].FacultyName)
	assert.Equal(t, "R1", rows[2].RoomCode)
}

func TestBuildScheduleRowsDropsOrphanMeetings(t *testing.T) {
	snap := scheduleFixture()
	snap.Meetings = []models.ClassMeeting{
		{ID: "m-1", ClassID: "missing", DayOfWeek: "Monday", StartTime: "08:00", EndTime: "09:00"},
	}

	assert.Empty(t, BuildScheduleRows(snap))
}

func TestBuildScheduleRowsIdempotent(t *testing.T) {
	snap := scheduleFixture()
	snap.Meetings = []models.ClassMeeting{
		{ID: "m-1", ClassID: "cls-1", DayOfWeek: "Monday", StartTime: "10:00", EndTime: "11:00", RoomID: "room-1"},
	}
	assert.Equal(t, BuildScheduleRows(snap), BuildScheduleRows(snap))
}
