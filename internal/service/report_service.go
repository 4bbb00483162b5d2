package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/campuskit/acadsched-api/internal/dto"
	"github.com/campuskit/acadsched-api/internal/models"
	appErrors "github.com/campuskit/acadsched-api/pkg/errors"
)

// ReportVersionRepository resolves the schedule version a report targets.
type ReportVersionRepository interface {
	FindByID(ctx context.Context, id string) (*models.ScheduleVersion, error)
}

// ReportClassRepository loads offerings and meetings for a version.
type ReportClassRepository interface {
	ListByVersion(ctx context.Context, versionID string) ([]models.ClassOffering, error)
}

// ReportMeetingRepository loads meetings for a version.
type ReportMeetingRepository interface {
	ListByVersion(ctx context.Context, versionID string) ([]models.ClassMeeting, error)
}

// ReportMasterDataRepository loads the reference lists a snapshot needs.
type ReportMasterDataRepository interface {
	ListAllSubjects(ctx context.Context) ([]models.Subject, error)
	ListSectionsByTerm(ctx context.Context, termID string) ([]models.Section, error)
	ListAllRooms(ctx context.Context) ([]models.Room, error)
	ListAllFaculty(ctx context.Context) ([]models.FacultyUser, error)
	ListAllFacultyProfiles(ctx context.Context) ([]models.FacultyProfile, error)
	ListTimeBlocksByTerm(ctx context.Context, termID string) ([]models.TimeBlock, error)
}

// ReportService assembles version snapshots and runs the report computations
// over them, with Redis-backed caching keyed by version id.
type ReportService struct {
	versions ReportVersionRepository
	classes  ReportClassRepository
	meetings ReportMeetingRepository
	master   ReportMasterDataRepository
	cache    *CacheService
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewReportService constructs a report service.
func NewReportService(versions ReportVersionRepository, classes ReportClassRepository, meetings ReportMeetingRepository, master ReportMasterDataRepository, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *ReportService {
	return &ReportService{
		versions: versions,
		classes:  classes,
		meetings: meetings,
		master:   master,
		cache:    cache,
		metrics:  metrics,
		logger:   logger,
	}
}

// Snapshot loads all the data a report run needs for one schedule version.
func (s *ReportService) Snapshot(ctx context.Context, versionID string) (ReportSnapshot, error) {
	version, err := s.versions.FindByID(ctx, versionID)
	if err != nil {
		return ReportSnapshot{}, appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, "schedule version not found")
	}

	start := time.Now()
	offerings, err := s.classes.ListByVersion(ctx, versionID)
	if err != nil {
		return ReportSnapshot{}, fmt.Errorf("snapshot offerings: %w", err)
	}
	meetings, err := s.meetings.ListByVersion(ctx, versionID)
	if err != nil {
		return ReportSnapshot{}, fmt.Errorf("snapshot meetings: %w", err)
	}
	subjects, err := s.master.ListAllSubjects(ctx)
	if err != nil {
		return ReportSnapshot{}, fmt.Errorf("snapshot subjects: %w", err)
	}
	sections, err := s.master.ListSectionsByTerm(ctx, version.TermID)
	if err != nil {
		return ReportSnapshot{}, fmt.Errorf("snapshot sections: %w", err)
	}
	rooms, err := s.master.ListAllRooms(ctx)
	if err != nil {
		return ReportSnapshot{}, fmt.Errorf("snapshot rooms: %w", err)
	}
	faculty, err := s.master.ListAllFaculty(ctx)
	if err != nil {
		return ReportSnapshot{}, fmt.Errorf("snapshot faculty: %w", err)
	}
	profiles, err := s.master.ListAllFacultyProfiles(ctx)
	if err != nil {
		return ReportSnapshot{}, fmt.Errorf("snapshot faculty profiles: %w", err)
	}
	blocks, err := s.master.ListTimeBlocksByTerm(ctx, version.TermID)
	if err != nil {
		return ReportSnapshot{}, fmt.Errorf("snapshot time blocks: %w", err)
	}
	if s.metrics != nil {
		s.metrics.ObserveDBQuery("report_snapshot", time.Since(start))
	}

	return ReportSnapshot{
		Offerings:  offerings,
		Meetings:   meetings,
		Subjects:   subjects,
		Sections:   sections,
		Rooms:      rooms,
		Faculty:    faculty,
		Profiles:   profiles,
		TimeBlocks: blocks,
	}, nil
}

// FacultyLoad returns per-faculty load rows for a version. The boolean
// indicates whether the payload came from cache.
func (s *ReportService) FacultyLoad(ctx context.Context, versionID string) ([]dto.FacultyLoadRow, bool, error) {
	cacheKey := reportCacheKey("faculty-load", versionID)
	var cached []dto.FacultyLoadRow
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return cached, true, nil
	}

	snap, err := s.Snapshot(ctx, versionID)
	if err != nil {
		return nil, false, err
	}

	start := time.Now()
	rows := ComputeFacultyLoad(snap)
	if s.metrics != nil {
		s.metrics.ObserveReportBuild("faculty_load", time.Since(start))
	}
	s.cacheSet(ctx, cacheKey, rows)
	return rows, false, nil
}

// RoomUtilization returns per-room weekly utilization for a version.
func (s *ReportService) RoomUtilization(ctx context.Context, versionID string) ([]dto.RoomUtilRow, bool, error) {
	cacheKey := reportCacheKey("room-utilization", versionID)
	var cached []dto.RoomUtilRow
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return cached, true, nil
	}

	snap, err := s.Snapshot(ctx, versionID)
	if err != nil {
		return nil, false, err
	}

	start := time.Now()
	rows := ComputeRoomUtilization(snap)
	if s.metrics != nil {
		s.metrics.ObserveReportBuild("room_utilization", time.Since(start))
	}
	s.cacheSet(ctx, cacheKey, rows)
	return rows, false, nil
}

// Conflicts returns all detected scheduling conflicts for a version.
func (s *ReportService) Conflicts(ctx context.Context, versionID string) ([]dto.ConflictItem, bool, error) {
	cacheKey := reportCacheKey("conflicts", versionID)
	var cached []dto.ConflictItem
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return cached, true, nil
	}

	snap, err := s.Snapshot(ctx, versionID)
	if err != nil {
		return nil, false, err
	}

	start := time.Now()
	items := DetectConflicts(snap)
	if s.metrics != nil {
		s.metrics.ObserveReportBuild("conflicts", time.Since(start))
	}
	s.cacheSet(ctx, cacheKey, items)
	return items, false, nil
}

// ScheduleRows returns the flat display rows of a version's timetable.
func (s *ReportService) ScheduleRows(ctx context.Context, versionID string) ([]dto.ScheduleRow, bool, error) {
	cacheKey := reportCacheKey("schedule", versionID)
	var cached []dto.ScheduleRow
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return cached, true, nil
	}

	snap, err := s.Snapshot(ctx, versionID)
	if err != nil {
		return nil, false, err
	}

	start := time.Now()
	rows := BuildScheduleRows(snap)
	if s.metrics != nil {
		s.metrics.ObserveReportBuild("schedule", time.Since(start))
	}
	s.cacheSet(ctx, cacheKey, rows)
	return rows, false, nil
}

// InvalidateVersion drops every cached report for a version. Called after any
// mutation of the version's offerings or meetings.
func (s *ReportService) InvalidateVersion(ctx context.Context, versionID string) {
	if err := s.cache.Invalidate(ctx, fmt.Sprintf("reports:*:%s", versionID)); err != nil && s.logger != nil {
		s.logger.Warn("invalidate report cache", zap.String("version_id", versionID), zap.Error(err))
	}
}

func (s *ReportService) cacheSet(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value, 0); err != nil && s.logger != nil {
		s.logger.Warn("cache report", zap.String("key", key), zap.Error(err))
	}
}

func reportCacheKey(report, versionID string) string {
	return fmt.Sprintf("reports:%s:%s", report, versionID)
}
