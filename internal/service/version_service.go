package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/campuskit/acadsched-api/internal/dto"
	"github.com/campuskit/acadsched-api/internal/models"
	appErrors "github.com/campuskit/acadsched-api/pkg/errors"
)

// VersionRepository describes the persistence layer required by VersionService.
type VersionRepository interface {
	ListByScope(ctx context.Context, termID, departmentID string) ([]models.ScheduleVersion, error)
	FindByID(ctx context.Context, id string) (*models.ScheduleVersion, error)
	NextVersionNumber(ctx context.Context, termID, departmentID string) (int, error)
	Create(ctx context.Context, version *models.ScheduleVersion) error
	Activate(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status models.VersionStatus, actorID string) error
}

// VersionService enforces the schedule version lifecycle:
// Draft -> Active -> Locked/Archived, with Locked and Archived terminal and
// at most one Active version per term+department.
type VersionService struct {
	repo    VersionRepository
	reports *ReportService
	logger  *zap.Logger
}

// NewVersionService constructs a version service.
func NewVersionService(repo VersionRepository, reports *ReportService, logger *zap.Logger) *VersionService {
	return &VersionService{repo: repo, reports: reports, logger: logger}
}

// List returns all versions of a term+department, newest first.
func (s *VersionService) List(ctx context.Context, termID, departmentID string) ([]models.ScheduleVersion, error) {
	return s.repo.ListByScope(ctx, termID, departmentID)
}

// Get returns one version.
func (s *VersionService) Get(ctx context.Context, id string) (*models.ScheduleVersion, error) {
	version, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule version not found")
		}
		return nil, fmt.Errorf("get version: %w", err)
	}
	return version, nil
}

// Create opens a new Draft version with the next sequence number in scope.
func (s *VersionService) Create(ctx context.Context, req dto.CreateVersionRequest, actorID string) (*models.ScheduleVersion, error) {
	next, err := s.repo.NextVersionNumber(ctx, req.TermID, req.DepartmentID)
	if err != nil {
		return nil, err
	}

	label := req.Label
	if label == "" {
		label = fmt.Sprintf("Version %d", next)
	}

	version := &models.ScheduleVersion{
		TermID:       req.TermID,
		DepartmentID: req.DepartmentID,
		Version:      next,
		Label:        label,
		Status:       models.VersionDraft,
		CreatedBy:    actorID,
		Notes:        req.Notes,
	}
	if err := s.repo.Create(ctx, version); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("schedule version created",
			zap.String("version_id", version.ID),
			zap.String("term_id", version.TermID),
			zap.Int("version", version.Version))
	}
	return version, nil
}

// Activate promotes a Draft version to Active. Any other Active version in
// the same term+department is demoted back to Draft.
func (s *VersionService) Activate(ctx context.Context, id string) (*models.ScheduleVersion, error) {
	version, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := guardMutable(version); err != nil {
		return nil, err
	}
	if version.Status == models.VersionActive {
		return version, nil
	}

	if err := s.repo.Activate(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule version not found")
		}
		return nil, err
	}
	return s.Get(ctx, id)
}

// Lock freezes a version against further edits. Only Draft and Active
// versions can be locked.
func (s *VersionService) Lock(ctx context.Context, id, actorID string) (*models.ScheduleVersion, error) {
	return s.transition(ctx, id, models.VersionLocked, actorID)
}

// Archive retires a version. Only Draft and Active versions can be archived.
func (s *VersionService) Archive(ctx context.Context, id, actorID string) (*models.ScheduleVersion, error) {
	return s.transition(ctx, id, models.VersionArchived, actorID)
}

func (s *VersionService) transition(ctx context.Context, id string, target models.VersionStatus, actorID string) (*models.ScheduleVersion, error) {
	version, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := guardMutable(version); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, target, actorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule version not found")
		}
		return nil, err
	}
	if s.reports != nil {
		s.reports.InvalidateVersion(ctx, id)
	}
	return s.Get(ctx, id)
}

// guardMutable rejects lifecycle or content changes on terminal versions.
func guardMutable(version *models.ScheduleVersion) error {
	switch version.Status {
	case models.VersionLocked:
		return appErrors.ErrVersionLocked
	case models.VersionArchived:
		return appErrors.ErrVersionArchived
	default:
		return nil
	}
}
