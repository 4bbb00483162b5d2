package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campuskit/acadsched-api/internal/models"
)

// ClassRepository handles persistence for class offerings.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository creates a new repository instance.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

const classColumns = "id, term_id, department_id, version_id, section_id, subject_id, faculty_user_id, created_at, updated_at"

// List returns offerings matching filters with pagination metadata.
func (r *ClassRepository) List(ctx context.Context, filter models.ClassFilter) ([]models.ClassOffering, int, error) {
	base := "FROM class_offerings WHERE 1=1"
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
	if filter.VersionID != "" {
		conditions = append(conditions, fmt.Sprintf("version_id = $%d", len(args)+1))
		args = append(args, filter.VersionID)
	}
	if filter.SectionID != "" {
		conditions = append(conditions, fmt.Sprintf("section_id = $%d", len(args)+1))
		args = append(args, filter.SectionID)
	}
	if filter.SubjectID != "" {
		conditions = append(conditions, fmt.Sprintf("subject_id = $%d", len(args)+1))
		args = append(args, filter.SubjectID)
	}
	if filter.FacultyID != "" {
		conditions = append(conditions, fmt.Sprintf("faculty_user_id = $%d", len(args)+1))
		args = append(args, filter.FacultyID)
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

	query := fmt.Sprintf("SELECT %s %s ORDER BY created_at DESC LIMIT %d OFFSET %d", classColumns, base, size, offset)
	var offerings []models.ClassOffering
	if err := r.db.SelectContext(ctx, &offerings, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list class offerings: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count class offerings: %w", err)
	}

	return offerings, total, nil
}

// ListByVersion returns every offering inside a schedule version.
func (r *ClassRepository) ListByVersion(ctx context.Context, versionID string) ([]models.ClassOffering, error) {
	query := fmt.Sprintf("SELECT %s FROM class_offerings WHERE version_id = $1 ORDER BY created_at ASC", classColumns)
	var offerings []models.ClassOffering
	if err := r.db.SelectContext(ctx, &offerings, query, versionID); err != nil {
		return nil, fmt.Errorf("list offerings by version: %w", err)
	}
	return offerings, nil
}

// FindByID loads an offering by id.
func (r *ClassRepository) FindByID(ctx context.Context, id string) (*models.ClassOffering, error) {
	query := fmt.Sprintf("SELECT %s FROM class_offerings WHERE id = $1", classColumns)
	var offering models.ClassOffering
	if err := r.db.GetContext(ctx, &offering, query, id); err != nil {
		return nil, err
	}
	return &offering, nil
}

// Create inserts an offering.
func (r *ClassRepository) Create(ctx context.Context, offering *models.ClassOffering) error {
	if offering.ID == "" {
		offering.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	offering.CreatedAt = now
	offering.UpdatedAt = now
	const query = `INSERT INTO class_offerings (id, term_id, department_id, version_id, section_id, subject_id, faculty_user_id, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	if _, err := r.db.ExecContext(ctx, query, offering.ID, offering.TermID, offering.DepartmentID, offering.VersionID, offering.SectionID, offering.SubjectID, offering.FacultyUserID, offering.CreatedAt, offering.UpdatedAt); err != nil {
		return fmt.Errorf("create class offering: %w", err)
	}
	return nil
}

// UpdateFaculty reassigns an offering's faculty member.
func (r *ClassRepository) UpdateFaculty(ctx context.Context, id, facultyUserID string) error {
	const query = `UPDATE class_offerings SET faculty_user_id = $1, updated_at = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, facultyUserID, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("update class faculty: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("class offering %s not found", id)
	}
	return nil
}

// Delete removes an offering and cascades to its meetings.
func (r *ClassRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete offering: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM class_meetings WHERE class_id = $1`, id); err != nil {
		return fmt.Errorf("delete offering meetings: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM class_offerings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete offering: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("class offering %s not found", id)
	}
	return tx.Commit()
}
