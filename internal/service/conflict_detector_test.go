package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/acadsched-api/internal/dto"
	"github.com/campuskit/acadsched-api/internal/models"
)

func conflictFixture() ReportSnapshot {
	return ReportSnapshot{
		Subjects: []models.Subject{
			{ID: "sub-1", Code: "CS101", Title: "Intro to Computing", Units: 3},
			{ID: "sub-2", Code: "CS201", Title: "Data Structures", Units: 3},
		},
		Sections: []models.Section{
			{ID: "sec-1", Name: "A", YearLevel: 1},
			{ID: "sec-2", Name: "B", YearLevel: 1},
		},
		Rooms: []models.Room{
			{ID: "room-1", Code: "R1", IsActive: true},
		},
		Faculty: []models.FacultyUser{
			{UserID: "fac-1", Name: "Alice Cruz"},
			{UserID: "fac-2", Name: "Ben Reyes"},
		},
	}
}

func TestDetectConflictsRoomOverlap(t *testing.T) {
	snap := conflictFixture()
	snap.Offerings = []models.ClassOffering{
		{ID: "cls-1", SectionID: "sec-1", SubjectID: "sub-1", FacultyUserID: "fac-1"},
		{ID: "cls-2", SectionID: "sec-2", SubjectID: "sub-2", FacultyUserID: "fac-2"},
	}
	snap.Meetings = []models.ClassMeeting{
		{ID: "m-1", ClassID: "cls-1", DayOfWeek: "Monday", StartTime: "08:00", EndTime: "09:30", RoomID: "room-1"},
		{ID: "m-2", ClassID: "cls-2", DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:00", RoomID: "room-1"},
	}

	items := DetectConflicts(snap)
	require.Len(t, items, 1)
	assert.Equal(t, dto.ConflictRoom, items[0].Type)
	assert.Equal(t, "Monday", items[0].DayOfWeek)
	assert.Equal(t, "08:00", items[0].StartTime)
	assert.Equal(t, "09:30", items[0].EndTime)
	assert.Equal(t, "R1", items[0].Resource)
	assert.Equal(t, "CS101 • A • Alice Cruz", items[0].ClassA)
	assert.Equal(t, "CS201 • B • Ben Reyes", items[0].ClassB)
}

func TestDetectConflictsBackToBackIsClean(t *testing.T) {
	snap := conflictFixture()
	snap.Offerings = []models.ClassOffering{
		{ID: "cls-1", SectionID: "sec-1", SubjectID: "sub-1", FacultyUserID: "fac-1"},
		{ID: "cls-2", SectionID: "sec-2", SubjectID: "sub-2", FacultyUserID: "fac-2"},
	}
	snap.Meetings = []models.ClassMeeting{
		{ID: "m-1", ClassID: "cls-1", DayOfWeek: "Monday", StartTime: "08:00", EndTime: "09:00", RoomID: "room-1"},
		{ID: "m-2", ClassID: "cls-2", DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:00", RoomID: "room-1"},
	}

	assert.Empty(t, DetectConflicts(snap))
}

// A lecture and its lab share faculty and section by construction, so they
// must not flag those dimensions. Sharing a room is still a real conflict.
func TestDetectConflictsSameOfferingAsymmetry(t *testing.T) {
	snap := conflictFixture()
	snap.Offerings = []models.ClassOffering{
		{ID: "cls-1", SectionID: "sec-1", SubjectID: "sub-1", FacultyUserID: "fac-1"},
	}
	snap.Meetings = []models.ClassMeeting{
		{ID: "m-1", ClassID: "cls-1", DayOfWeek: "Monday", StartTime: "08:00", EndTime: "09:00", RoomID: "room-1", MeetingType: models.MeetingLecture},
		{ID: "m-2", ClassID: "cls-1", DayOfWeek: "Monday", StartTime: "08:30", EndTime: "09:30", RoomID: "room-1", MeetingType: models.MeetingLab},
	}

	items := DetectConflicts(snap)
	require.Len(t, items, 1)
	assert.Equal(t, dto.ConflictRoom, items[0].Type)

	// Without the shared room the pair is entirely clean.
	snap.Meetings[0].RoomID = ""
	snap.Meetings[1].RoomID = ""
	assert.Empty(t, DetectConflicts(snap))
}

// A long meeting must conflict with every later meeting it spans, not only
// its immediate neighbor in start-time order.
func TestDetectConflictsNonAdjacentOverlap(t *testing.T) {
	snap := conflictFixture()
	snap.Offerings = []models.ClassOffering{
		{ID: "cls-1", SectionID: "sec-1", SubjectID: "sub-1", FacultyUserID: "fac-1"},
		{ID: "cls-2", SectionID: "sec-2", SubjectID: "sub-2", FacultyUserID: "fac-2"},
		{ID: "cls-3", SectionID: "sec-2", SubjectID: "sub-1", FacultyUserID: "fac-2"},
	}
	snap.Meetings = []models.ClassMeeting{
		{ID: "m-1", ClassID: "cls-1", DayOfWeek: "Monday", StartTime: "08:00", EndTime: "11:00", RoomID: "room-1"},
		{ID: "m-2", ClassID: "cls-2", DayOfWeek: "Monday", StartTime: "08:30", EndTime: "09:00", RoomID: "room-1"},
		{ID: "m-3", ClassID: "cls-3", DayOfWeek: "Monday", StartTime: "09:30", EndTime: "10:30", RoomID: "room-1"},
	}

	var rooms []dto.ConflictItem
	for _, item := range DetectConflicts(snap) {
		if item.Type == dto.ConflictRoom {
			rooms = append(rooms, item)
		}
	}
	// (m-1,m-2) and (m-1,m-3); m-2 and m-3 do not touch.
	require.Len(t, rooms, 2)
	assert.Equal(t, "08:00", rooms[0].StartTime)
	assert.Equal(t, "08:00", rooms[1].StartTime)
}

func TestDetectConflictsOrdering(t *testing.T) {
	snap := conflictFixture()
	snap.Offerings = []models.ClassOffering{
		// Section clash on Wednesday: two subjects, same section.
		{ID: "cls-1", SectionID: "sec-1", SubjectID: "sub-1", FacultyUserID: "fac-1"},
		{ID: "cls-2", SectionID: "sec-1", SubjectID: "sub-2", FacultyUserID: "fac-2"},
		// Faculty clash on Tuesday: same faculty member, two sections.
		{ID: "cls-3", SectionID: "sec-1", SubjectID: "sub-1", FacultyUserID: "fac-2"},
		{ID: "cls-4", SectionID: "sec-2", SubjectID: "sub-2", FacultyUserID: "fac-2"},
		// Room clash on Friday.
		{ID: "cls-5", SectionID: "sec-1", SubjectID: "sub-1", FacultyUserID: "fac-1"},
		{ID: "cls-6", SectionID: "sec-2", SubjectID: "sub-2", FacultyUserID: "fac-2"},
	}
	snap.Meetings = []models.ClassMeeting{
		{ID: "m-1", ClassID: "cls-1", DayOfWeek: "Wednesday", StartTime: "10:00", EndTime: "11:00"},
		{ID: "m-2", ClassID: "cls-2", DayOfWeek: "Wednesday", StartTime: "10:30", EndTime: "11:30"},
		{ID: "m-3", ClassID: "cls-3", DayOfWeek: "Tuesday", StartTime: "08:00", EndTime: "09:00"},
		{ID: "m-4", ClassID: "cls-4", DayOfWeek: "Tuesday", StartTime: "08:30", EndTime: "09:30"},
		{ID: "m-5", ClassID: "cls-5", DayOfWeek: "Friday", StartTime: "13:00", EndTime: "14:00", RoomID: "room-1"},
		{ID: "m-6", ClassID: "cls-6", DayOfWeek: "Friday", StartTime: "13:30", EndTime: "14:30", RoomID: "room-1"},
	}

	items := DetectConflicts(snap)
	require.Len(t, items, 3)
	assert.Equal(t, dto.ConflictRoom, items[0].Type)
	assert.Equal(t, dto.ConflictFaculty, items[1].Type)
	assert.Equal(t, dto.ConflictSection, items[2].Type)
}

func TestDetectConflictsSkipsUnscheduledMeetings(t *testing.T) {
	snap := conflictFixture()
	snap.Offerings = []models.ClassOffering{
		{ID: "cls-1", SectionID: "sec-1", SubjectID: "sub-1"},
	}
	snap.Meetings = []models.ClassMeeting{
		{ID: "m-1", ClassID: "cls-1", DayOfWeek: "", StartTime: "08:00", EndTime: "09:00", RoomID: "room-1"},
		{ID: "m-2", ClassID: "orphan", DayOfWeek: "Monday", StartTime: "08:00", EndTime: "09:00"},
	}

	assert.Empty(t, DetectConflicts(snap))
}

func TestDetectConflictsIdempotent(t *testing.T) {
	snap := conflictFixture()
	snap.Offerings = []models.ClassOffering{
		{ID: "cls-1", SectionID: "sec-1", SubjectID: "sub-1", FacultyUserID: "fac-1"},
		{ID: "cls-2", SectionID: "sec-2", SubjectID: "sub-2", FacultyUserID: "fac-2"},
	}
	snap.Meetings = []models.ClassMeeting{
		{ID: "m-1", ClassID: "cls-1", DayOfWeek: "Monday", StartTime: "08:00", EndTime: "09:30", RoomID: "room-1"},
		{ID: "m-2", ClassID: "cls-2", DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:00", RoomID: "room-1"},
	}

	first := DetectConflicts(snap)
	second := DetectConflicts(snap)
	assert.Equal(t, first, second)
}

func TestDetectConflictsEmptyInput(t *testing.T) {
	assert.Empty(t, DetectConflicts(ReportSnapshot{}))
}
