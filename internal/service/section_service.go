package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campuskit/acadsched-api/internal/dto"
	"github.com/campuskit/acadsched-api/internal/models"
	appErrors "github.com/campuskit/acadsched-api/pkg/errors"
)

type sectionRepository interface {
	List(ctx context.Context, filter models.SectionFilter) ([]models.Section, int, error)
	FindByID(ctx context.Context, id string) (*models.Section, error)
	ExistsByKey(ctx context.Context, termID, departmentID string, yearLevel int, name string) (bool, error)
	Create(ctx context.Context, section *models.Section) error
}

// SectionService handles student section workflows. Section identity is
// (term, department, year level, name) with the name compared
// case-insensitively.
type SectionService struct {
	repo      sectionRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSectionService creates a new section service.
func NewSectionService(repo sectionRepository, validate *validator.Validate, logger *zap.Logger) *SectionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SectionService{repo: repo, validator: validate, logger: logger}
}

// List returns paginated sections.
func (s *SectionService) List(ctx context.Context, filter models.SectionFilter) ([]models.Section, *models.Pagination, error) {
	sections, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sections")
	}
	return sections, models.NewPagination(filter.Page, filter.PageSize, total), nil
}

// Get returns a section by identifier.
func (s *SectionService) Get(ctx context.Context, id string) (*models.Section, error) {
	section, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "section not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load section")
	}
	return section, nil
}

// Create registers a section after the uniqueness probe.
func (s *SectionService) Create(ctx context.Context, req dto.CreateSectionRequest) (*models.Section, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid section payload")
	}

	exists, err := s.repo.ExistsByKey(ctx, req.TermID, req.DepartmentID, req.YearLevel, req.Name)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check section uniqueness")
	}
	if exists {
		return nil, appErrors.ErrDuplicateSection
	}

	section := &models.Section{
		TermID:       req.TermID,
		DepartmentID: req.DepartmentID,
		ProgramID:    req.ProgramID,
		YearLevel:    req.YearLevel,
		Name:         req.Name,
		StudentCount: req.StudentCount,
	}
	if err := s.repo.Create(ctx, section); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create section")
	}
	s.logger.Info("section created", zap.String("section_id", section.ID), zap.String("name", section.Name))
	return section, nil
}
