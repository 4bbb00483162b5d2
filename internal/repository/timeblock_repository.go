package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campuskit/acadsched-api/internal/models"
)

// TimeBlockRepository handles persistence for scheduling windows.
type TimeBlockRepository struct {
	db *sqlx.DB
}

// NewTimeBlockRepository creates a new repository instance.
func NewTimeBlockRepository(db *sqlx.DB) *TimeBlockRepository {
	return &TimeBlockRepository{db: db}
}

// ListByTerm returns all time blocks of a term, day then start order.
func (r *TimeBlockRepository) ListByTerm(ctx context.Context, termID string) ([]models.TimeBlock, error) {
	const query = `SELECT id, term_id, day_of_week, start_time, end_time, is_active, created_at, updated_at FROM time_blocks WHERE term_id = $1 ORDER BY day_of_week ASC, start_time ASC`
	var blocks []models.TimeBlock
	if err := r.db.SelectContext(ctx, &blocks, query, termID); err != nil {
		return nil, fmt.Errorf("list time blocks: %w", err)
	}
	return blocks, nil
}

// FindByID loads a time block by id.
func (r *TimeBlockRepository) FindByID(ctx context.Context, id string) (*models.TimeBlock, error) {
	const query = `SELECT id, term_id, day_of_week, start_time, end_time, is_active, created_at, updated_at FROM time_blocks WHERE id = $1`
	var block models.TimeBlock
	if err := r.db.GetContext(ctx, &block, query, id); err != nil {
		return nil, err
	}
	return &block, nil
}

// Create inserts a time block.
func (r *TimeBlockRepository) Create(ctx context.Context, block *models.TimeBlock) error {
	if block.ID == "" {
		block.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	block.CreatedAt = now
	block.UpdatedAt = now
	const query = `INSERT INTO time_blocks (id, term_id, day_of_week, start_time, end_time, is_active, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := r.db.ExecContext(ctx, query, block.ID, block.TermID, block.DayOfWeek, block.StartTime, block.EndTime, block.IsActive, block.CreatedAt, block.UpdatedAt); err != nil {
		return fmt.Errorf("create time block: %w", err)
	}
	return nil
}

// SetActive toggles a block without touching its window.
func (r *TimeBlockRepository) SetActive(ctx context.Context, id string, active bool) error {
	const query = `UPDATE time_blocks SET is_active = $1, updated_at = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, active, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("set time block active: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("time block %s not found", id)
	}
	return nil
}
