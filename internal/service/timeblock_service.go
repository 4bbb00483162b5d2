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
	"github.com/campuskit/acadsched-api/pkg/timeutil"
)

type timeBlockRepository interface {
	ListByTerm(ctx context.Context, termID string) ([]models.TimeBlock, error)
	FindByID(ctx context.Context, id string) (*models.TimeBlock, error)
	Create(ctx context.Context, block *models.TimeBlock) error
	SetActive(ctx context.Context, id string, active bool) error
}

// TimeBlockService manages the weekly open-hours windows of a term.
type TimeBlockService struct {
	repo      timeBlockRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTimeBlockService creates a new time block service.
func NewTimeBlockService(repo timeBlockRepository, validate *validator.Validate, logger *zap.Logger) *TimeBlockService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimeBlockService{repo: repo, validator: validate, logger: logger}
}

// ListByTerm returns the blocks of a term.
func (s *TimeBlockService) ListByTerm(ctx context.Context, termID string) ([]models.TimeBlock, error) {
	blocks, err := s.repo.ListByTerm(ctx, termID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list time blocks")
	}
	return blocks, nil
}

// Create registers an active scheduling window. The window must span a
// positive duration.
func (s *TimeBlockService) Create(ctx context.Context, req dto.CreateTimeBlockRequest) (*models.TimeBlock, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid time block payload")
	}
	if timeutil.Duration(req.StartTime, req.EndTime) <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "time block must end after it starts")
	}
	block := &models.TimeBlock{
		TermID:    req.TermID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsActive:  true,
	}
	if err := s.repo.Create(ctx, block); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create time block")
	}
	return block, nil
}

// SetActive toggles whether a block counts toward weekly capacity.
func (s *TimeBlockService) SetActive(ctx context.Context, id string, active bool) (*models.TimeBlock, error) {
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update time block")
	}
	block, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "time block not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load time block")
	}
	return block, nil
}
