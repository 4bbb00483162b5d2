package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/acadsched-api/internal/models"
	appErrors "github.com/campuskit/acadsched-api/pkg/errors"
)

func newExportServiceFixture() *ExportService {
	versions := newVersionStub(
		models.ScheduleVersion{ID: "ver-1", TermID: "term-1", DepartmentID: "dept-1", Status: models.VersionActive},
	)
	classes := &classRepoStub{offerings: map[string]models.ClassOffering{
		"class-1": {ID: "class-1", TermID: "term-1", VersionID: "ver-1", SectionID: "sec-1", SubjectID: "subj-1", FacultyUserID: "fac-1"},
	}}
	meetings := &meetingRepoStub{meetings: map[string]models.ClassMeeting{
		"meet-1": {ID: "meet-1", ClassID: "class-1", VersionID: "ver-1", DayOfWeek: "Mon", StartTime: "08:00", EndTime: "09:30", RoomID: "room-1", MeetingType: models.MeetingLecture},
	}}
	master := &masterDataStub{rooms: []models.Room{{ID: "room-1", Code: "RM101", Name: "Room 101", IsActive: true}}}
	reports := NewReportService(versions, classes, meetings, master, nil, nil, nil)
	return NewExportService(reports, "Acme University", nil, nil, nil)
}

func TestExportServiceScheduleCSV(t *testing.T) {
	svc := newExportServiceFixture()

	result, err := svc.Generate(context.Background(), ExportReportSchedule, ExportFormatCSV, "ver-1")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Contains(t, result.Filename, "schedule-ver-1")

	content := string(result.Payload)
	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Section")
	assert.Contains(t, lines[1], "08:00")
	assert.Contains(t, lines[1], "RM101")
}

func TestExportServiceFacultyLoadPDF(t *testing.T) {
	svc := newExportServiceFixture()

	result, err := svc.Generate(context.Background(), ExportReportFacultyLoad, ExportFormatPDF, "ver-1")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, strings.HasPrefix(string(result.Payload), "%PDF"))
}

func TestExportServiceUnknownFormat(t *testing.T) {
	svc := newExportServiceFixture()

	_, err := svc.Generate(context.Background(), ExportReportConflicts, "xlsx", "ver-1")
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestExportServiceUnknownReport(t *testing.T) {
	svc := newExportServiceFixture()

	_, err := svc.Generate(context.Background(), "grades", ExportFormatCSV, "ver-1")
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
