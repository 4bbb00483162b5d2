package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campuskit/acadsched-api/internal/models"
	appErrors "github.com/campuskit/acadsched-api/pkg/errors"
)

type facultyRepository interface {
	List(ctx context.Context, filter models.FacultyFilter) ([]models.FacultyUser, int, error)
	FindByID(ctx context.Context, userID string) (*models.FacultyUser, error)
	FindProfile(ctx context.Context, userID string) (*models.FacultyProfile, error)
	UpsertProfile(ctx context.Context, profile *models.FacultyProfile) error
}

// UpsertFacultyProfileRequest sets department placement and load ceilings for
// a roster member. Zero ceilings mean no limit.
type UpsertFacultyProfileRequest struct {
	DepartmentID string  `json:"departmentId" validate:"required"`
	EmployeeNo   *string `json:"employeeNo"`
	Rank         *string `json:"rank"`
	MaxUnits     int     `json:"maxUnits" validate:"min=0"`
	MaxHours     float64 `json:"maxHours" validate:"min=0"`
}

// FacultyService handles roster and profile workflows.
type FacultyService struct {
	repo      facultyRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewFacultyService creates a new faculty service.
func NewFacultyService(repo facultyRepository, validate *validator.Validate, logger *zap.Logger) *FacultyService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FacultyService{repo: repo, validator: validate, logger: logger}
}

// List returns paginated roster entries.
func (s *FacultyService) List(ctx context.Context, filter models.FacultyFilter) ([]models.FacultyUser, *models.Pagination, error) {
	roster, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list faculty")
	}
	return roster, models.NewPagination(filter.Page, filter.PageSize, total), nil
}

// Get returns one roster entry with its profile when present.
func (s *FacultyService) Get(ctx context.Context, userID string) (*models.FacultyUser, *models.FacultyProfile, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "faculty member not found")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load faculty member")
	}

	profile, err := s.repo.FindProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, nil, nil
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load faculty profile")
	}
	return user, profile, nil
}

// UpsertProfile creates or updates a profile for a roster member.
func (s *FacultyService) UpsertProfile(ctx context.Context, userID string, req UpsertFacultyProfileRequest) (*models.FacultyProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid profile payload")
	}
	if _, err := s.repo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "faculty member not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load faculty member")
	}

	profile := &models.FacultyProfile{
		UserID:       userID,
		DepartmentID: req.DepartmentID,
		EmployeeNo:   req.EmployeeNo,
		Rank:         req.Rank,
		MaxUnits:     req.MaxUnits,
		MaxHours:     req.MaxHours,
	}
	if err := s.repo.UpsertProfile(ctx, profile); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save faculty profile")
	}
	s.logger.Info("faculty profile saved", zap.String("user_id", userID), zap.String("department_id", req.DepartmentID))
	return profile, nil
}
