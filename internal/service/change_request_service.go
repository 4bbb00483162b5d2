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

type changeRequestRepository interface {
	List(ctx context.Context, filter models.ChangeRequestFilter) ([]models.ChangeRequest, int, error)
	FindByID(ctx context.Context, id string) (*models.ChangeRequest, error)
	Create(ctx context.Context, request *models.ChangeRequest) error
	Review(ctx context.Context, id string, status models.ChangeRequestStatus, reviewerID string, notes *string) error
}

// ChangeRequestService runs the request/review workflow. Only Pending
// requests can be approved or rejected.
type ChangeRequestService struct {
	repo      changeRequestRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewChangeRequestService creates a new change request service.
func NewChangeRequestService(repo changeRequestRepository, validate *validator.Validate, logger *zap.Logger) *ChangeRequestService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChangeRequestService{repo: repo, validator: validate, logger: logger}
}

// List returns paginated change requests.
func (s *ChangeRequestService) List(ctx context.Context, filter models.ChangeRequestFilter) ([]models.ChangeRequest, *models.Pagination, error) {
	requests, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list change requests")
	}
	return requests, models.NewPagination(filter.Page, filter.PageSize, total), nil
}

// Get returns a change request by identifier.
func (s *ChangeRequestService) Get(ctx context.Context, id string) (*models.ChangeRequest, error) {
	request, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "change request not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load change request")
	}
	return request, nil
}

// Create files a new Pending request on behalf of the requester.
func (s *ChangeRequestService) Create(ctx context.Context, req dto.CreateChangeRequestRequest, requesterID string) (*models.ChangeRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid change request payload")
	}
	request := &models.ChangeRequest{
		TermID:       req.TermID,
		DepartmentID: req.DepartmentID,
		RequestedBy:  requesterID,
		ClassID:      req.ClassID,
		MeetingID:    req.MeetingID,
		Type:         req.Type,
		Details:      req.Details,
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create change request")
	}
	s.logger.Info("change request filed",
		zap.String("request_id", request.ID),
		zap.String("requested_by", requesterID),
		zap.String("type", request.Type))
	return request, nil
}

// Review approves or rejects a Pending request. A request that has already
// been decided (or cancelled) is rejected with ErrRequestReviewed.
func (s *ChangeRequestService) Review(ctx context.Context, id string, req dto.ReviewChangeRequestRequest, reviewerID string) (*models.ChangeRequest, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != models.RequestPending {
		return nil, appErrors.ErrRequestReviewed
	}

	target := models.RequestRejected
	if req.Approve {
		target = models.RequestApproved
	}
	if err := s.repo.Review(ctx, id, target, reviewerID, req.ResolutionNotes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// lost the race against another reviewer
			return nil, appErrors.ErrRequestReviewed
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to review change request")
	}
	return s.Get(ctx, id)
}
