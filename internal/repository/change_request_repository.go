package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campuskit/acadsched-api/internal/models"
)

// ChangeRequestRepository handles persistence for change requests.
type ChangeRequestRepository struct {
	db *sqlx.DB
}

// NewChangeRequestRepository creates a new repository instance.
func NewChangeRequestRepository(db *sqlx.DB) *ChangeRequestRepository {
	return &ChangeRequestRepository{db: db}
}

const changeRequestColumns = "id, term_id, department_id, requested_by, class_id, meeting_id, type, details, status, reviewed_by, reviewed_at, resolution_notes, created_at, updated_at"

// List returns change requests matching filters with pagination metadata.
func (r *ChangeRequestRepository) List(ctx context.Context, filter models.ChangeRequestFilter) ([]models.ChangeRequest, int, error) {
	base := "FROM change_requests WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.TermID != "" {
		conditions = append(conditions, fmt.Sprintf("term_id = $%d", len(args)+1))
		args = append(args, filter.TermID)
	}
	if filter.DepartmentID != "" {
		conditions = append(conditions, fmt.Sprintf("department_id = $%d", len(args)+1))
		args = append(args, filter.DepartmentID)
	}
	if filter.RequestedBy != "" {
		conditions = append(conditions, fmt.Sprintf("requested_by = $%d", len(args)+1))
		args = append(args, filter.RequestedBy)
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, filter.Status)
	}

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	query := fmt.Sprintf("SELECT %s %s ORDER BY created_at DESC LIMIT %d OFFSET %d", changeRequestColumns, base, size, offset)
	var requests []models.ChangeRequest
	if err := r.db.SelectContext(ctx, &requests, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list change requests: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count change requests: %w", err)
	}

	return requests, total, nil
}

// FindByID loads a change request by id.
func (r *ChangeRequestRepository) FindByID(ctx context.Context, id string) (*models.ChangeRequest, error) {
	query := fmt.Sprintf("SELECT %s FROM change_requests WHERE id = $1", changeRequestColumns)
	var request models.ChangeRequest
	if err := r.db.GetContext(ctx, &request, query, id); err != nil {
		return nil, err
	}
	return &request, nil
}

// Create inserts a change request in Pending state.
func (r *ChangeRequestRepository) Create(ctx context.Context, request *models.ChangeRequest) error {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	request.Status = models.RequestPending
	request.CreatedAt = now
	request.UpdatedAt = now
	const query = `INSERT INTO change_requests (id, term_id, department_id, requested_by, class_id, meeting_id, type, details, status, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	if _, err := r.db.ExecContext(ctx, query, request.ID, request.TermID, request.DepartmentID, request.RequestedBy, request.ClassID, request.MeetingID, request.Type, request.Details, request.Status, request.CreatedAt, request.UpdatedAt); err != nil {
		return fmt.Errorf("create change request: %w", err)
	}
	return nil
}

// Review records a decision. The WHERE clause guards the Pending-only rule so
// two concurrent reviewers cannot both win.
func (r *ChangeRequestRepository) Review(ctx context.Context, id string, status models.ChangeRequestStatus, reviewerID string, notes *string) error {
	now := time.Now().UTC()
	const query = `UPDATE change_requests SET status = $1, reviewed_by = $2, reviewed_at = $3, resolution_notes = $4, updated_at = $3 WHERE id = $5 AND status = $6`
	res, err := r.db.ExecContext(ctx, query, status, reviewerID, now, notes, id, models.RequestPending)
	if err != nil {
		return fmt.Errorf("review change request: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
