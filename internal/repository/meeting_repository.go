package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campuskit/acadsched-api/internal/models"
)

// MeetingRepository handles persistence for class meetings.
type MeetingRepository struct {
	db *sqlx.DB
}

// NewMeetingRepository creates a new repository instance.
func NewMeetingRepository(db *sqlx.DB) *MeetingRepository {
	return &MeetingRepository{db: db}
}

const meetingColumns = "id, class_id, version_id, day_of_week, start_time, end_time, room_id, meeting_type, notes, created_at, updated_at"

// ListByVersion returns every meeting inside a schedule version.
func (r *MeetingRepository) ListByVersion(ctx context.Context, versionID string) ([]models.ClassMeeting, error) {
	query := fmt.Sprintf("SELECT %s FROM class_meetings WHERE version_id = $1 ORDER BY day_of_week ASC, start_time ASC, id ASC", meetingColumns)
	var meetings []models.ClassMeeting
	if err := r.db.SelectContext(ctx, &meetings, query, versionID); err != nil {
		return nil, fmt.Errorf("list meetings by version: %w", err)
	}
	return meetings, nil
}

// ListByClass returns all meetings of one offering.
func (r *MeetingRepository) ListByClass(ctx context.Context, classID string) ([]models.ClassMeeting, error) {
	query := fmt.Sprintf("SELECT %s FROM class_meetings WHERE class_id = $1 ORDER BY day_of_week ASC, start_time ASC", meetingColumns)
	var meetings []models.ClassMeeting
	if err := r.db.SelectContext(ctx, &meetings, query, classID); err != nil {
		return nil, fmt.Errorf("list meetings by class: %w", err)
	}
	return meetings, nil
}

// FindByID loads a meeting by id.
func (r *MeetingRepository) FindByID(ctx context.Context, id string) (*models.ClassMeeting, error) {
	query := fmt.Sprintf("SELECT %s FROM class_meetings WHERE id = $1", meetingColumns)
	var meeting models.ClassMeeting
	if err := r.db.GetContext(ctx, &meeting, query, id); err != nil {
		return nil, err
	}
	return &meeting, nil
}

// Create inserts a meeting.
func (r *MeetingRepository) Create(ctx context.Context, meeting *models.ClassMeeting) error {
	if meeting.ID == "" {
		meeting.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	meeting.CreatedAt = now
	meeting.UpdatedAt = now
	const query = `INSERT INTO class_meetings (id, class_id, version_id, day_of_week, start_time, end_time, room_id, meeting_type, notes, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	if _, err := r.db.ExecContext(ctx, query, meeting.ID, meeting.ClassID, meeting.VersionID, meeting.DayOfWeek, meeting.StartTime, meeting.EndTime, meeting.RoomID, meeting.MeetingType, meeting.Notes, meeting.CreatedAt, meeting.UpdatedAt); err != nil {
		return fmt.Errorf("create meeting: %w", err)
	}
	return nil
}

// Update rewrites the schedulable fields of a meeting.
func (r *MeetingRepository) Update(ctx context.Context, meeting *models.ClassMeeting) error {
	meeting.UpdatedAt = time.Now().UTC()
	const query = `UPDATE class_meetings SET day_of_week = $1, start_time = $2, end_time = $3, room_id = $4, meeting_type = $5, notes = $6, updated_at = $7 WHERE id = $8`
	res, err := r.db.ExecContext(ctx, query, meeting.DayOfWeek, meeting.StartTime, meeting.EndTime, meeting.RoomID, meeting.MeetingType, meeting.Notes, meeting.UpdatedAt, meeting.ID)
	if err != nil {
		return fmt.Errorf("update meeting: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("meeting %s not found", meeting.ID)
	}
	return nil
}

// Delete removes a meeting.
func (r *MeetingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM class_meetings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete meeting: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("meeting %s not found", id)
	}
	return nil
}
