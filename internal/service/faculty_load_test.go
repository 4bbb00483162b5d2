package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/acadsched-api/internal/dto"
	"github.com/campuskit/acadsched-api/internal/models"
)

func loadFixture() ReportSnapshot {
	return ReportSnapshot{
		Subjects: []models.Subject{
			{ID: "sub-1", Code: "CS101", Units: 3},
			{ID: "sub-2", Code: "CS201", Units: 3},
			{ID: "sub-3", Code: "CS301", Units: 4},
		},
		Faculty: []models.FacultyUser{
			{UserID: "fac-1", Name: "Alice Cruz"},
			{UserID: "fac-2", Name: "Ben Reyes"},
		},
	}
}

func TestComputeFacultyLoadTotals(t *testing.T) {
	snap := loadFixture()
	snap.Offerings = []models.ClassOffering{
		{ID: "cls-1", SubjectID: "sub-1", FacultyUserID: "fac-1"},
		{ID: "cls-2", SubjectID: "sub-2", FacultyUserID: "fac-1"},
		{ID: "cls-3", SubjectID: "sub-3", FacultyUserID: "fac-1"},
	}
	snap.Meetings = []models.ClassMeeting{
		{ID: "m-1", ClassID: "cls-1", StartTime: "08:00", EndTime: "09:30"},
		{ID: "m-2", ClassID: "cls-1", StartTime: "10:00", EndTime: "11:00"},
		{ID: "m-3", ClassID: "cls-2", StartTime: "13:00", EndTime: "14:00"},
	}

	rows := ComputeFacultyLoad(snap)
	require.Len(t, rows, 2)

	// Sorted by name: Alice before Ben.
	alice := rows[0]
	assert.Equal(t, "fac-1", alice.FacultyUserID)
	assert.Equal(t, 3, alice.ClassesCount)
	assert.Equal(t, 10, alice.TotalUnits)
	assert.Equal(t, 90+60+60, alice.TotalMinutes)
	assert.Equal(t, dto.LoadStatusOK, alice.Status)

	ben := rows[1]
	assert.Equal(t, 0, ben.ClassesCount)
	assert.Equal(t, dto.LoadStatusNoLoad, ben.Status)
}

func TestComputeFacultyLoadUnknownFaculty(t *testing.T) {
	snap := loadFixture()
	snap.Offerings = []models.ClassOffering{
		{ID: "cls-1", SubjectID: "sub-1", FacultyUserID: "ghost-1"},
	}

	rows := ComputeFacultyLoad(snap)
	require.Len(t, rows, 3)

	var ghost *dto.FacultyLoadRow
	for i := range rows {
		if rows[i].FacultyUserID == "ghost-1" {
			ghost = &rows[i]
		}
	}
	require.NotNil(t, ghost)
	assert.Equal(t, "Unknown Faculty", ghost.FacultyName)
	assert.Equal(t, 1, ghost.ClassesCount)
	assert.Equal(t, 3, ghost.TotalUnits)
}

func TestComputeFacultyLoadOverload(t *testing.T) {
	snap := loadFixture()
	snap.Profiles = []models.FacultyProfile{
		{UserID: "fac-1", MaxUnits: 6},
		{UserID: "fac-2", MaxHours: 1},
	}
	snap.Offerings = []models.ClassOffering{
		{ID: "cls-1", SubjectID: "sub-1", FacultyUserID: "fac-1"},
		{ID: "cls-2", SubjectID: "sub-2", FacultyUserID: "fac-1"},
		{ID: "cls-3", SubjectID: "sub-3", FacultyUserID: "fac-1"},
		{ID: "cls-4", SubjectID: "sub-1", FacultyUserID: "fac-2"},
	}
	snap.Meetings = []models.ClassMeeting{
		{ID: "m-1", ClassID: "cls-4", StartTime: "08:00", EndTime: "10:00"},
	}

	rows := ComputeFacultyLoad(snap)
	require.Len(t, rows, 2)
	assert.Equal(t, dto.LoadStatusOverload, rows[0].Status) // 10 units > max 6
	assert.Equal(t, dto.LoadStatusOverload, rows[1].Status) // 2 hours > max 1
}

func TestComputeFacultyLoadSkipsUnassignedOfferings(t *testing.T) {
	snap := loadFixture()
	snap.Offerings = []models.ClassOffering{
		{ID: "cls-1", SubjectID: "sub-1", FacultyUserID: ""},
	}

	rows := ComputeFacultyLoad(snap)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, 0, row.ClassesCount)
	}
}

func TestComputeFacultyLoadIdempotent(t *testing.T) {
	snap := loadFixture()
	snap.Offerings = []models.ClassOffering{
		{ID: "cls-1", SubjectID: "sub-1", FacultyUserID: "fac-1"},
	}
	assert.Equal(t, ComputeFacultyLoad(snap), ComputeFacultyLoad(snap))
}

func TestComputeFacultyLoadEmptyInput(t *testing.T) {
	assert.Empty(t, ComputeFacultyLoad(ReportSnapshot{}))
}
