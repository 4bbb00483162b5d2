package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/acadsched-api/internal/dto"
	"github.com/campuskit/acadsched-api/internal/models"
	"github.com/campuskit/acadsched-api/internal/service"
	appErrors "github.com/campuskit/acadsched-api/pkg/errors"
)

type reportVersionMock struct {
	versions map[string]*models.ScheduleVersion
}

func (m *reportVersionMock) FindByID(ctx context.Context, id string) (*models.ScheduleVersion, error) {
	v, ok := m.versions[id]
	if !ok {
		return nil, appErrors.ErrNotFound
	}
	copied := *v
	return &copied, nil
}

type reportClassMock struct {
	offerings []models.ClassOffering
}

func (m *reportClassMock) ListByVersion(ctx context.Context, versionID string) ([]models.ClassOffering, error) {
	return m.offerings, nil
}

type reportMeetingMock struct {
	meetings []models.ClassMeeting
}

func (m *reportMeetingMock) ListByVersion(ctx context.Context, versionID string) ([]models.ClassMeeting, error) {
	return m.meetings, nil
}

type reportMasterMock struct {
	subjects []models.Subject
	sections []models.Section
	rooms    []models.Room
}

func (m *reportMasterMock) ListAllSubjects(ctx context.Context) ([]models.Subject, error) {
	return m.subjects, nil
}

func (m *reportMasterMock) ListSectionsByTerm(ctx context.Context, termID string) ([]models.Section, error) {
	return m.sections, nil
}

func (m *reportMasterMock) ListAllRooms(ctx context.Context) ([]models.Room, error) {
	return m.rooms, nil
}

func (m *reportMasterMock) ListAllFaculty(ctx context.Context) ([]models.FacultyUser, error) {
	return nil, nil
}

func (m *reportMasterMock) ListAllFacultyProfiles(ctx context.Context) ([]models.FacultyProfile, error) {
	return nil, nil
}

func (m *reportMasterMock) ListTimeBlocksByTerm(ctx context.Context, termID string) ([]models.TimeBlock, error) {
	return nil, nil
}

func newReportHandlerFixture() *ReportHandler {
	versions := &reportVersionMock{versions: map[string]*models.ScheduleVersion{
		"ver-1": {ID: "ver-1", TermID: "term-1", DepartmentID: "dept-1", Version: 1, Status: models.VersionActive},
	}}
	classes := &reportClassMock{offerings: []models.ClassOffering{
		{ID: "class-1", TermID: "term-1", VersionID: "ver-1", SectionID: "sec-1", SubjectID: "subj-1"},
		{ID: "class-2", TermID: "term-1", VersionID: "ver-1", SectionID: "sec-2", SubjectID: "subj-1"},
	}}
	meetings := &reportMeetingMock{meetings: []models.ClassMeeting{
		{ID: "meet-1", ClassID: "class-1", VersionID: "ver-1", DayOfWeek: "Mon", StartTime: "08:00", EndTime: "09:30", RoomID: "room-1", MeetingType: models.MeetingLecture},
		{ID: "meet-2", ClassID: "class-2", VersionID: "ver-1", DayOfWeek: "Mon", StartTime: "09:00", EndTime: "10:30", RoomID: "room-1", MeetingType: models.MeetingLecture},
	}}
	master := &reportMasterMock{
		subjects: []models.Subject{{ID: "subj-1", Code: "MATH101", Title: "Calculus I", Units: 3}},
		sections: []models.Section{
			{ID: "sec-1", TermID: "term-1", Name: "BSCS 1A", YearLevel: 1},
			{ID: "sec-2", TermID: "term-1", Name: "BSCS 1B", YearLevel: 1},
		},
		rooms: []models.Room{{ID: "room-1", Code: "RM101", Name: "Room 101", IsActive: true}},
	}

	reports := service.NewReportService(versions, classes, meetings, master, nil, nil, nil)
	return NewReportHandler(reports, nil)
}

func performRequest(t *testing.T, h gin.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	h(c)
	return w
}

func TestReportHandlerConflicts(t *testing.T) {
	h := newReportHandlerFixture()
	w := performRequest(t, h.Conflicts, "/reports/conflicts?versionId=ver-1")

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []dto.ConflictItem     `json:"data"`
		Meta map[string]interface{} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	require.Equal(t, dto.ConflictRoom, body.Data[0].Type)
	require.Equal(t, "RM101", body.Data[0].Resource)
	require.Contains(t, body.Data[0].ClassA, "BSCS 1A")
	require.Contains(t, body.Data[0].ClassB, "BSCS 1B")
	require.Equal(t, false, body.Meta["cache_hit"])
}

func TestReportHandlerScheduleRows(t *testing.T) {
	h := newReportHandlerFixture()
	w := performRequest(t, h.Schedule, "/reports/schedule?versionId=ver-1")

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []dto.ScheduleRow `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	require.Equal(t, "BSCS 1A", body.Data[0].SectionName)
	require.Equal(t, "MATH101", body.Data[0].SubjectCode)
	require.Equal(t, "RM101", body.Data[0].RoomCode)
}

func TestReportHandlerMissingVersionParam(t *testing.T) {
	h := newReportHandlerFixture()
	w := performRequest(t, h.Conflicts, "/reports/conflicts")

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportHandlerUnknownVersion(t *testing.T) {
	h := newReportHandlerFixture()
	w := performRequest(t, h.FacultyLoad, "/reports/faculty-load?versionId=ver-missing")

	require.Equal(t, http.StatusNotFound, w.Code)
}
