package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/acadsched-api/internal/dto"
	"github.com/campuskit/acadsched-api/internal/models"
	appErrors "github.com/campuskit/acadsched-api/pkg/errors"
)

type classRepoStub struct {
	offerings map[string]models.ClassOffering
}

func (s *classRepoStub) List(ctx context.Context, filter models.ClassFilter) ([]models.ClassOffering, int, error) {
	var out []models.ClassOffering
	for _, o := range s.offerings {
		out = append(out, o)
	}
	return out, len(out), nil
}

func (s *classRepoStub) FindByID(ctx context.Context, id string) (*models.ClassOffering, error) {
	if o, ok := s.offerings[id]; ok {
		return &o, nil
	}
	return nil, sql.ErrNoRows
}

func (s *classRepoStub) ListByVersion(ctx context.Context, versionID string) ([]models.ClassOffering, error) {
	var out []models.ClassOffering
	for _, o := range s.offerings {
		if o.VersionID == versionID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *classRepoStub) Create(ctx context.Context, offering *models.ClassOffering) error {
	if offering.ID == "" {
		offering.ID = "class-new"
	}
	if s.offerings == nil {
		s.offerings = make(map[string]models.ClassOffering)
	}
	s.offerings[offering.ID] = *offering
	return nil
}

func (s *classRepoStub) UpdateFaculty(ctx context.Context, id, facultyUserID string) error {
	o, ok := s.offerings[id]
	if !ok {
		return sql.ErrNoRows
	}
	o.FacultyUserID = facultyUserID
	s.offerings[id] = o
	return nil
}

func (s *classRepoStub) Delete(ctx context.Context, id string) error {
	delete(s.offerings, id)
	return nil
}

type meetingRepoStub struct {
	meetings map[string]models.ClassMeeting
}

func (s *meetingRepoStub) ListByClass(ctx context.Context, classID string) ([]models.ClassMeeting, error) {
	var out []models.ClassMeeting
	for _, m := range s.meetings {
		if m.ClassID == classID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *meetingRepoStub) ListByVersion(ctx context.Context, versionID string) ([]models.ClassMeeting, error) {
	var out []models.ClassMeeting
	for _, m := range s.meetings {
		if m.VersionID == versionID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *meetingRepoStub) FindByID(ctx context.Context, id string) (*models.ClassMeeting, error) {
	if m, ok := s.meetings[id]; ok {
		return &m, nil
	}
	return nil, sql.ErrNoRows
}

func (s *meetingRepoStub) Create(ctx context.Context, meeting *models.ClassMeeting) error {
	if meeting.ID == "" {
		meeting.ID = "meet-new"
	}
	if s.meetings == nil {
		s.meetings = make(map[string]models.ClassMeeting)
	}
	s.meetings[meeting.ID] = *meeting
	return nil
}

func (s *meetingRepoStub) Update(ctx context.Context, meeting *models.ClassMeeting) error {
	if _, ok := s.meetings[meeting.ID]; !ok {
		return sql.ErrNoRows
	}
	s.meetings[meeting.ID] = *meeting
	return nil
}

func (s *meetingRepoStub) Delete(ctx context.Context, id string) error {
	delete(s.meetings, id)
	return nil
}

type masterDataStub struct {
	rooms []models.Room
}

func (s *masterDataStub) ListAllSubjects(ctx context.Context) ([]models.Subject, error) {
	return nil, nil
}

func (s *masterDataStub) ListSectionsByTerm(ctx context.Context, termID string) ([]models.Section, error) {
	return nil, nil
}

func (s *masterDataStub) ListAllRooms(ctx context.Context) ([]models.Room, error) {
	return s.rooms, nil
}

func (s *masterDataStub) ListAllFaculty(ctx context.Context) ([]models.FacultyUser, error) {
	return nil, nil
}

func (s *masterDataStub) ListAllFacultyProfiles(ctx context.Context) ([]models.FacultyProfile, error) {
	return nil, nil
}

func (s *masterDataStub) ListTimeBlocksByTerm(ctx context.Context, termID string) ([]models.TimeBlock, error) {
	return nil, nil
}

func newClassServiceFixture() (*ClassService, *classRepoStub, *meetingRepoStub, *versionRepoStub) {
	versions := newVersionStub(
		models.ScheduleVersion{ID: "ver-1", TermID: "term-1", DepartmentID: "dept-1", Status: models.VersionDraft},
		models.ScheduleVersion{ID: "ver-locked", TermID: "term-1", DepartmentID: "dept-1", Status: models.VersionLocked},
	)
	classes := &classRepoStub{offerings: map[string]models.ClassOffering{
		"class-1": {ID: "class-1", TermID: "term-1", DepartmentID: "dept-1", VersionID: "ver-1", SectionID: "sec-1", SubjectID: "subj-1", FacultyUserID: "fac-1"},
		"class-2": {ID: "class-2", TermID: "term-1", DepartmentID: "dept-1", VersionID: "ver-1", SectionID: "sec-2", SubjectID: "subj-2", FacultyUserID: "fac-2"},
		"class-3": {ID: "class-3", TermID: "term-1", DepartmentID: "dept-1", VersionID: "ver-locked", SectionID: "sec-1", SubjectID: "subj-1", FacultyUserID: "fac-1"},
	}}
	meetings := &meetingRepoStub{meetings: map[string]models.ClassMeeting{
		"meet-1": {ID: "meet-1", ClassID: "class-1", VersionID: "ver-1", DayOfWeek: "Mon", StartTime: "08:00", EndTime: "09:30", RoomID: "room-1", MeetingType: models.MeetingLecture},
	}}
	master := &masterDataStub{rooms: []models.Room{{ID: "room-1", Code: "RM101", Name: "Room 101", IsActive: true}}}
	reports := NewReportService(versions, classes, meetings, master, nil, nil, nil)
	svc := NewClassService(classes, meetings, versions, reports, nil, nil)
	return svc, classes, meetings, versions
}

func TestClassServiceCreateMeetingRejectsRoomConflict(t *testing.T) {
	svc, _, meetings, _ := newClassServiceFixture()

	_, introduced, err := svc.CreateMeeting(context.Background(), dto.CreateMeetingRequest{
		ClassID:   "class-2",
		DayOfWeek: "Mon",
		StartTime: "09:00",
		EndTime:   "10:00",
		RoomID:    "room-1",
	})
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErr.Code)
	require.Len(t, introduced, 1)
	assert.Equal(t, dto.ConflictRoom, introduced[0].Type)
	assert.Len(t, meetings.meetings, 1)
}

func TestClassServiceCreateMeetingBackToBack(t *testing.T) {
	svc, _, meetings, _ := newClassServiceFixture()

	meeting, introduced, err := svc.CreateMeeting(context.Background(), dto.CreateMeetingRequest{
		ClassID:   "class-2",
		DayOfWeek: "Mon",
		StartTime: "09:30",
		EndTime:   "11:00",
		RoomID:    "room-1",
	})
	require.NoError(t, err)
	assert.Empty(t, introduced)
	assert.Equal(t, models.MeetingLecture, meeting.MeetingType)
	assert.Len(t, meetings.meetings, 2)
}

func TestClassServiceMeetingOnLockedVersionRejected(t *testing.T) {
	svc, _, _, _ := newClassServiceFixture()

	_, _, err := svc.CreateMeeting(context.Background(), dto.CreateMeetingRequest{
		ClassID:   "class-3",
		DayOfWeek: "Tue",
		StartTime: "08:00",
		EndTime:   "09:00",
		RoomID:    "room-1",
	})
	assert.ErrorIs(t, err, appErrors.ErrVersionLocked)
}

func TestClassServiceUpdateMeetingExcludesOwnStoredCopy(t *testing.T) {
	svc, _, meetings, _ := newClassServiceFixture()

	// shifting the only meeting by 30 minutes cannot conflict with itself
	start := "08:30"
	end := "10:00"
	meeting, introduced, err := svc.UpdateMeeting(context.Background(), "meet-1", dto.UpdateMeetingRequest{
		StartTime: &start,
		EndTime:   &end,
	})
	require.NoError(t, err)
	assert.Empty(t, introduced)
	assert.Equal(t, "08:30", meetings.meetings["meet-1"].StartTime)
	assert.Equal(t, "10:00", meeting.EndTime)
}

func TestClassServiceDeleteOfferingOnLockedVersionRejected(t *testing.T) {
	svc, classes, _, _ := newClassServiceFixture()

	err := svc.Delete(context.Background(), "class-3")
	assert.ErrorIs(t, err, appErrors.ErrVersionLocked)
	_, ok := classes.offerings["class-3"]
	assert.True(t, ok)
}

func TestClassServiceMeetingMustEndAfterStart(t *testing.T) {
	svc, _, _, _ := newClassServiceFixture()

	_, _, err := svc.CreateMeeting(context.Background(), dto.CreateMeetingRequest{
		ClassID:   "class-2",
		DayOfWeek: "Mon",
		StartTime: "10:00",
		EndTime:   "09:00",
		RoomID:    "room-1",
	})
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
