package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campuskit/acadsched-api/internal/dto"
	"github.com/campuskit/acadsched-api/internal/models"
	appErrors "github.com/campuskit/acadsched-api/pkg/errors"
	"github.com/campuskit/acadsched-api/pkg/timeutil"
)

type classRepository interface {
	List(ctx context.Context, filter models.ClassFilter) ([]models.ClassOffering, int, error)
	FindByID(ctx context.Context, id string) (*models.ClassOffering, error)
	Create(ctx context.Context, offering *models.ClassOffering) error
	UpdateFaculty(ctx context.Context, id, facultyUserID string) error
	Delete(ctx context.Context, id string) error
}

type meetingRepository interface {
	ListByClass(ctx context.Context, classID string) ([]models.ClassMeeting, error)
	FindByID(ctx context.Context, id string) (*models.ClassMeeting, error)
	Create(ctx context.Context, meeting *models.ClassMeeting) error
	Update(ctx context.Context, meeting *models.ClassMeeting) error
	Delete(ctx context.Context, id string) error
}

// ClassService manages offerings and meetings inside a schedule version.
// Every mutation is guarded by the version lifecycle: Locked and Archived
// versions reject edits. Meeting saves run a conflict pre-check over the
// target version's snapshot.
type ClassService struct {
	classes   classRepository
	meetings  meetingRepository
	versions  ReportVersionRepository
	reports   *ReportService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassService creates a new class service.
func NewClassService(classes classRepository, meetings meetingRepository, versions ReportVersionRepository, reports *ReportService, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{
		classes:   classes,
		meetings:  meetings,
		versions:  versions,
		reports:   reports,
		validator: validate,
		logger:    logger,
	}
}

// List returns paginated offerings.
func (s *ClassService) List(ctx context.Context, filter models.ClassFilter) ([]models.ClassOffering, *models.Pagination, error) {
	offerings, total, err := s.classes.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list class offerings")
	}
	return offerings, models.NewPagination(filter.Page, filter.PageSize, total), nil
}

// Get returns one offering with its meetings.
func (s *ClassService) Get(ctx context.Context, id string) (*models.ClassOffering, []models.ClassMeeting, error) {
	offering, err := s.classes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "class offering not found")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class offering")
	}
	meetings, err := s.meetings.ListByClass(ctx, id)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class meetings")
	}
	return offering, meetings, nil
}

// Create registers an offering inside a mutable version.
func (s *ClassService) Create(ctx context.Context, req dto.CreateClassRequest) (*models.ClassOffering, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}
	if err := s.guardVersion(ctx, req.VersionID); err != nil {
		return nil, err
	}

	offering := &models.ClassOffering{
		TermID:        req.TermID,
		DepartmentID:  req.DepartmentID,
		VersionID:     req.VersionID,
		SectionID:     req.SectionID,
		SubjectID:     req.SubjectID,
		FacultyUserID: req.FacultyUserID,
	}
	if err := s.classes.Create(ctx, offering); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create class offering")
	}
	s.invalidate(ctx, offering.VersionID)
	s.logger.Info("class offering created", zap.String("class_id", offering.ID), zap.String("version_id", offering.VersionID))
	return offering, nil
}

// UpdateFaculty reassigns the instructor of an offering.
func (s *ClassService) UpdateFaculty(ctx context.Context, id string, req dto.UpdateClassRequest) (*models.ClassOffering, error) {
	offering, _, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.guardVersion(ctx, offering.VersionID); err != nil {
		return nil, err
	}
	if req.FacultyUserID == nil {
		return offering, nil
	}

	if err := s.classes.UpdateFaculty(ctx, id, *req.FacultyUserID); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reassign class faculty")
	}
	s.invalidate(ctx, offering.VersionID)
	offering.FacultyUserID = *req.FacultyUserID
	return offering, nil
}

// Delete removes an offering and all of its meetings.
func (s *ClassService) Delete(ctx context.Context, id string) error {
	offering, _, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.guardVersion(ctx, offering.VersionID); err != nil {
		return err
	}
	if err := s.classes.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete class offering")
	}
	s.invalidate(ctx, offering.VersionID)
	return nil
}

// CreateMeeting schedules a meeting after the conflict pre-check.
func (s *ClassService) CreateMeeting(ctx context.Context, req dto.CreateMeetingRequest) (*models.ClassMeeting, []dto.ConflictItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid meeting payload")
	}
	if timeutil.Duration(req.StartTime, req.EndTime) <= 0 {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, "meeting must end after it starts")
	}

	offering, err := s.classes.FindByID(ctx, req.ClassID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "class offering not found")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class offering")
	}
	if err := s.guardVersion(ctx, offering.VersionID); err != nil {
		return nil, nil, err
	}

	meetingType := models.MeetingType(req.MeetingType)
	if meetingType == "" {
		meetingType = models.MeetingLecture
	}
	meeting := &models.ClassMeeting{
		ClassID:     req.ClassID,
		VersionID:   offering.VersionID,
		DayOfWeek:   req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		RoomID:      req.RoomID,
		MeetingType: meetingType,
		Notes:       req.Notes,
	}

	introduced, err := s.checkMeeting(ctx, offering.VersionID, meeting, "")
	if err != nil {
		return nil, nil, err
	}
	if len(introduced) > 0 {
		return nil, introduced, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("meeting introduces %d scheduling conflict(s)", len(introduced)))
	}

	if err := s.meetings.Create(ctx, meeting); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create meeting")
	}
	s.invalidate(ctx, offering.VersionID)
	return meeting, nil, nil
}

// UpdateMeeting moves or retags a meeting after the conflict pre-check.
func (s *ClassService) UpdateMeeting(ctx context.Context, id string, req dto.UpdateMeetingRequest) (*models.ClassMeeting, []dto.ConflictItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid meeting payload")
	}

	meeting, err := s.meetings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "meeting not found")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load meeting")
	}
	if err := s.guardVersion(ctx, meeting.VersionID); err != nil {
		return nil, nil, err
	}

	if req.DayOfWeek != nil {
		meeting.DayOfWeek = *req.DayOfWeek
	}
	if req.StartTime != nil {
		meeting.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		meeting.EndTime = *req.EndTime
	}
	if req.RoomID != nil {
		meeting.RoomID = *req.RoomID
	}
	if req.MeetingType != nil {
		meeting.MeetingType = models.MeetingType(*req.MeetingType)
	}
	if req.Notes != nil {
		meeting.Notes = req.Notes
	}
	if timeutil.Duration(meeting.StartTime, meeting.EndTime) <= 0 {
		return nil, nil, appErrors.Clone(appErrors.ErrValidation, "meeting must end after it starts")
	}

	introduced, err := s.checkMeeting(ctx, meeting.VersionID, meeting, meeting.ID)
	if err != nil {
		return nil, nil, err
	}
	if len(introduced) > 0 {
		return nil, introduced, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("meeting introduces %d scheduling conflict(s)", len(introduced)))
	}

	if err := s.meetings.Update(ctx, meeting); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update meeting")
	}
	s.invalidate(ctx, meeting.VersionID)
	return meeting, nil, nil
}

// DeleteMeeting removes a meeting from a mutable version.
func (s *ClassService) DeleteMeeting(ctx context.Context, id string) error {
	meeting, err := s.meetings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "meeting not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load meeting")
	}
	if err := s.guardVersion(ctx, meeting.VersionID); err != nil {
		return err
	}
	if err := s.meetings.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete meeting")
	}
	s.invalidate(ctx, meeting.VersionID)
	return nil
}

// checkMeeting runs the detector over the version snapshot with the candidate
// meeting applied and returns only the conflicts the candidate introduces.
// excludeID drops the stored copy of the meeting being updated.
func (s *ClassService) checkMeeting(ctx context.Context, versionID string, candidate *models.ClassMeeting, excludeID string) ([]dto.ConflictItem, error) {
	if s.reports == nil {
		return nil, nil
	}
	snap, err := s.reports.Snapshot(ctx, versionID)
	if err != nil {
		return nil, err
	}

	baseline := snap
	baseline.Meetings = withoutMeeting(snap.Meetings, excludeID)
	existing := conflictSet(DetectConflicts(baseline))

	probe := *candidate
	if probe.ID == "" {
		probe.ID = "candidate"
	}
	modified := baseline
	modified.Meetings = append(append([]models.ClassMeeting(nil), baseline.Meetings...), probe)

	var introduced []dto.ConflictItem
	for _, item := range DetectConflicts(modified) {
		if _, ok := existing[conflictFingerprint(item)]; !ok {
			introduced = append(introduced, item)
		}
	}
	return introduced, nil
}

func withoutMeeting(meetings []models.ClassMeeting, id string) []models.ClassMeeting {
	if id == "" {
		return meetings
	}
	out := make([]models.ClassMeeting, 0, len(meetings))
	for _, m := range meetings {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}

func conflictSet(items []dto.ConflictItem) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[conflictFingerprint(item)] = struct{}{}
	}
	return set
}

func conflictFingerprint(item dto.ConflictItem) string {
	return item.Type + "|" + item.DayOfWeek + "|" + item.StartTime + "|" + item.EndTime + "|" + item.Resource + "|" + item.ClassA + "|" + item.ClassB
}

// guardVersion rejects mutations against Locked or Archived versions.
func (s *ClassService) guardVersion(ctx context.Context, versionID string) error {
	version, err := s.versions.FindByID(ctx, versionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "schedule version not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule version")
	}
	return guardMutable(version)
}

func (s *ClassService) invalidate(ctx context.Context, versionID string) {
	if s.reports != nil {
		s.reports.InvalidateVersion(ctx, versionID)
	}
}
