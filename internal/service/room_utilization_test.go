package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/acadsched-api/internal/models"
)

func utilizationFixture() ReportSnapshot {
	return ReportSnapshot{
		Rooms: []models.Room{
			{ID: "room-1", Code: "R1", Name: "Lecture Hall 1", IsActive: true},
			{ID: "room-2", Code: "R2", Name: "Lab 2", IsActive: true},
		},
		TimeBlocks: []models.TimeBlock{
			{ID: "tb-1", DayOfWeek: "Monday", StartTime: "08:00", EndTime: "12:00", IsActive: true},
			{ID: "tb-2", DayOfWeek: "Tuesday", StartTime: "08:00", EndTime: "12:00", IsActive: true},
			{ID: "tb-3", DayOfWeek: "Monday", StartTime: "13:00", EndTime: "17:00", IsActive: false},
		},
	}
}

func TestComputeRoomUtilization(t *testing.T) {
	snap := utilizationFixture()
	snap.Meetings = []models.ClassMeeting{
		{ID: "m-1", ClassID: "cls-1", RoomID: "room-1", StartTime: "08:00", EndTime: "10:00"},
		{ID: "m-2", ClassID: "cls-2", RoomID: "room-1", StartTime: "10:00", EndTime: "12:00"},
	}

	rows := ComputeRoomUtilization(snap)
	require.Len(t, rows, 2)

	// Inactive block excluded: 2 x 4h = 480 available minutes.
	assert.Equal(t, 480, rows[0].AvailableMinutes)
	assert.Equal(t, "R1", rows[0].RoomCode)
	assert.Equal(t, 240, rows[0].UsedMinutes)
	assert.InDelta(t, 50.0, rows[0].UtilizationPct, 0.001)

	assert.Equal(t, "R2", rows[1].RoomCode)
	assert.Equal(t, 0, rows[1].UsedMinutes)
	assert.Zero(t, rows[1].UtilizationPct)
}

func TestComputeRoomUtilizationCapsAtHundred(t *testing.T) {
	snap := ReportSnapshot{
		Rooms: []models.Room{{ID: "room-1", Code: "R1"}},
		TimeBlocks: []models.TimeBlock{
			{ID: "tb-1", DayOfWeek: "Monday", StartTime: "08:00", EndTime: "09:00", IsActive: true},
		},
		Meetings: []models.ClassMeeting{
			{ID: "m-1", ClassID: "cls-1", RoomID: "room-1", StartTime: "08:00", EndTime: "12:00"},
		},
	}

	rows := ComputeRoomUtilization(snap)
	require.Len(t, rows, 1)
	assert.Equal(t, 100.0, rows[0].UtilizationPct)
}

func TestComputeRoomUtilizationNoAvailability(t *testing.T) {
	snap := ReportSnapshot{
		Rooms: []models.Room{{ID: "room-1", Code: "R1"}},
		Meetings: []models.ClassMeeting{
			{ID: "m-1", ClassID: "cls-1", RoomID: "room-1", StartTime: "08:00", EndTime: "12:00"},
		},
	}

	rows := ComputeRoomUtilization(snap)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].UtilizationPct)
	assert.Equal(t, 240, rows[0].UsedMinutes)
}

func TestComputeRoomUtilizationUnknownRoom(t *testing.T) {
	snap := utilizationFixture()
	snap.Meetings = []models.ClassMeeting{
		{ID: "m-1", ClassID: "cls-1", RoomID: "demolished", StartTime: "08:00", EndTime: "10:00"},
	}

	rows := ComputeRoomUtilization(snap)
	require.Len(t, rows, 3)

	// 25% beats the two idle known rooms.
	assert.Equal(t, "demolished", rows[0].RoomID)
	assert.Equal(t, "Unknown Room", rows[0].RoomName)
	assert.Equal(t, 120, rows[0].UsedMinutes)
}

func TestComputeRoomUtilizationSortsByPctDescending(t *testing.T) {
	snap := utilizationFixture()
	snap.Meetings = []models.ClassMeeting{
		{ID: "m-1", ClassID: "cls-1", RoomID: "room-2", StartTime: "08:00", EndTime: "12:00"},
		{ID: "m-2", ClassID: "cls-2", RoomID: "room-1", StartTime: "08:00", EndTime: "09:00"},
	}

	rows := ComputeRoomUtilization(snap)
	require.Len(t, rows, 2)
	assert.Equal(t, "R2", rows[0].RoomCode)
	assert.Equal(t, "R1", rows[1].RoomCode)
}

func TestComputeRoomUtilizationIdempotent(t *testing.T) {
	snap := utilizationFixture()
	snap.Meetings = []models.ClassMeeting{
		{ID: "m-1", ClassID: "cls-1", RoomID: "room-1", StartTime: "08:00", EndTime: "10:00"},
	}
	assert.Equal(t, ComputeRoomUtilization(snap), ComputeRoomUtilization(snap))
}
