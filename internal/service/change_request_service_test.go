package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/acadsched-api/internal/dto"
	"github.com/campuskit/acadsched-api/internal/models"
	appErrors "github.com/campuskit/acadsched-api/pkg/errors"
)

type changeRequestRepoStub struct {
	items map[string]models.ChangeRequest
}

func (s *changeRequestRepoStub) List(ctx context.Context, filter models.ChangeRequestFilter) ([]models.ChangeRequest, int, error) {
	var out []models.ChangeRequest
	for _, r := range s.items {
		out = append(out, r)
	}
	return out, len(out), nil
}

func (s *changeRequestRepoStub) FindByID(ctx context.Context, id string) (*models.ChangeRequest, error) {
	if r, ok := s.items[id]; ok {
		return &r, nil
	}
	return nil, sql.ErrNoRows
}

func (s *changeRequestRepoStub) Create(ctx context.Context, request *models.ChangeRequest) error {
	if request.ID == "" {
		request.ID = "req-new"
	}
	request.Status = models.RequestPending
	if s.items == nil {
		s.items = make(map[string]models.ChangeRequest)
	}
	s.items[request.ID] = *request
	return nil
}

func (s *changeRequestRepoStub) Review(ctx context.Context, id string, status models.ChangeRequestStatus, reviewerID string, notes *string) error {
	r, ok := s.items[id]
	if !ok || r.Status != models.RequestPending {
		return sql.ErrNoRows
	}
	now := time.Now()
	r.Status = status
	r.ReviewedBy = &reviewerID
	r.ReviewedAt = &now
	r.ResolutionNotes = notes
	s.items[id] = r
	return nil
}

func TestChangeRequestServiceCreateStartsPending(t *testing.T) {
	stub := &changeRequestRepoStub{}
	svc := NewChangeRequestService(stub, nil, nil)

	request, err := svc.Create(context.Background(), dto.CreateChangeRequestRequest{
		TermID:       "term-1",
		DepartmentID: "dept-1",
		Type:         "MOVE_MEETING",
		Details:      "Move Friday lab to Thursday",
	}, "user-7")
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, request.Status)
	assert.Equal(t, "user-7", request.RequestedBy)
}

func TestChangeRequestServiceApprove(t *testing.T) {
	stub := &changeRequestRepoStub{items: map[string]models.ChangeRequest{
		"req-1": {ID: "req-1", Status: models.RequestPending},
	}}
	svc := NewChangeRequestService(stub, nil, nil)

	request, err := svc.Review(context.Background(), "req-1", dto.ReviewChangeRequestRequest{Approve: true}, "dean-1")
	require.NoError(t, err)
	assert.Equal(t, models.RequestApproved, request.Status)
	require.NotNil(t, request.ReviewedBy)
	assert.Equal(t, "dean-1", *request.ReviewedBy)
}

func TestChangeRequestServiceRejectWithNotes(t *testing.T) {
	stub := &changeRequestRepoStub{items: map[string]models.ChangeRequest{
		"req-1": {ID: "req-1", Status: models.RequestPending},
	}}
	svc := NewChangeRequestService(stub, nil, nil)

	notes := "room unavailable"
	request, err := svc.Review(context.Background(), "req-1", dto.ReviewChangeRequestRequest{ResolutionNotes: &notes}, "dean-1")
	require.NoError(t, err)
	assert.Equal(t, models.RequestRejected, request.Status)
	require.NotNil(t, request.ResolutionNotes)
	assert.Equal(t, "room unavailable", *request.ResolutionNotes)
}

func TestChangeRequestServiceReviewOnlyOncePerRequest(t *testing.T) {
	stub := &changeRequestRepoStub{items: map[string]models.ChangeRequest{
		"req-1": {ID: "req-1", Status: models.RequestApproved},
		"req-2": {ID: "req-2", Status: models.RequestCancelled},
	}}
	svc := NewChangeRequestService(stub, nil, nil)

	_, err := svc.Review(context.Background(), "req-1", dto.ReviewChangeRequestRequest{Approve: true}, "dean-1")
	assert.ErrorIs(t, err, appErrors.ErrRequestReviewed)

	_, err = svc.Review(context.Background(), "req-2", dto.ReviewChangeRequestRequest{Approve: true}, "dean-1")
	assert.ErrorIs(t, err, appErrors.ErrRequestReviewed)
}
