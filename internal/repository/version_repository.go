package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campuskit/acadsched-api/internal/models"
)

// VersionRepository handles persistence for schedule versions.
type VersionRepository struct {
	db *sqlx.DB
}

// NewVersionRepository creates a new repository instance.
func NewVersionRepository(db *sqlx.DB) *VersionRepository {
	return &VersionRepository{db: db}
}

const versionColumns = "id, term_id, department_id, version, label, status, created_by, locked_by, locked_at, notes, created_at, updated_at"

// ListByScope returns all versions of a term+department, newest number first.
func (r *VersionRepository) ListByScope(ctx context.Context, termID, departmentID string) ([]models.ScheduleVersion, error) {
	query := fmt.Sprintf("SELECT %s FROM schedule_versions WHERE term_id = $1 AND department_id = $2 ORDER BY version DESC", versionColumns)
	var versions []models.ScheduleVersion
	if err := r.db.SelectContext(ctx, &versions, query, termID, departmentID); err != nil {
		return nil, fmt.Errorf("list schedule versions: %w", err)
	}
	return versions, nil
}

// FindByID loads a version by id.
func (r *VersionRepository) FindByID(ctx context.Context, id string) (*models.ScheduleVersion, error) {
	query := fmt.Sprintf("SELECT %s FROM schedule_versions WHERE id = $1", versionColumns)
	var version models.ScheduleVersion
	if err := r.db.GetContext(ctx, &version, query, id); err != nil {
		return nil, err
	}
	return &version, nil
}

// FindActive returns the Active version of a term+department, if any.
func (r *VersionRepository) FindActive(ctx context.Context, termID, departmentID string) (*models.ScheduleVersion, error) {
	query := fmt.Sprintf("SELECT %s FROM schedule_versions WHERE term_id = $1 AND department_id = $2 AND status = $3", versionColumns)
	var version models.ScheduleVersion
	if err := r.db.GetContext(ctx, &version, query, termID, departmentID, models.VersionActive); err != nil {
		return nil, err
	}
	return &version, nil
}

// NextVersionNumber returns one past the highest version number in scope.
func (r *VersionRepository) NextVersionNumber(ctx context.Context, termID, departmentID string) (int, error) {
	const query = `SELECT COALESCE(MAX(version), 0) + 1 FROM schedule_versions WHERE term_id = $1 AND department_id = $2`
	var next int
	if err := r.db.GetContext(ctx, &next, query, termID, departmentID); err != nil {
		return 0, fmt.Errorf("next version number: %w", err)
	}
	return next, nil
}

// Create inserts a version.
func (r *VersionRepository) Create(ctx context.Context, version *models.ScheduleVersion) error {
	if version.ID == "" {
		version.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	version.CreatedAt = now
	version.UpdatedAt = now
	const query = `INSERT INTO schedule_versions (id, term_id, department_id, version, label, status, created_by, locked_by, locked_at, notes, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	if _, err := r.db.ExecContext(ctx, query, version.ID, version.TermID, version.DepartmentID, version.Version, version.Label, version.Status, version.CreatedBy, version.LockedBy, version.LockedAt, version.Notes, version.CreatedAt, version.UpdatedAt); err != nil {
		return fmt.Errorf("create schedule version: %w", err)
	}
	return nil
}

// Activate promotes a version and demotes any other Active version sharing
// its term+department, in one transaction.
func (r *VersionRepository) Activate(ctx context.Context, id string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin activate version: %w", err)
	}
	defer tx.Rollback()

	var scope struct {
		TermID       string `db:"term_id"`
		DepartmentID string `db:"department_id"`
	}
	if err := tx.GetContext(ctx, &scope, `SELECT term_id, department_id FROM schedule_versions WHERE id = $1`, id); err != nil {
		return err
	}

	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx,
		`UPDATE schedule_versions SET status = $1, updated_at = $2 WHERE term_id = $3 AND department_id = $4 AND status = $5 AND id <> $6`,
		models.VersionDraft, now, scope.TermID, scope.DepartmentID, models.VersionActive, id); err != nil {
		return fmt.Errorf("demote active version: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE schedule_versions SET status = $1, updated_at = $2 WHERE id = $3`,
		models.VersionActive, now, id)
	if err != nil {
		return fmt.Errorf("activate version: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}

// UpdateStatus moves a version to a new status. Lock bookkeeping is written
// when the target status is Locked.
func (r *VersionRepository) UpdateStatus(ctx context.Context, id string, status models.VersionStatus, actorID string) error {
	now := time.Now().UTC()
	var res sql.Result
	var err error
	if status == models.VersionLocked {
		res, err = r.db.ExecContext(ctx,
			`UPDATE schedule_versions SET status = $1, locked_by = $2, locked_at = $3, updated_at = $3 WHERE id = $4`,
			status, actorID, now, id)
	} else {
		res, err = r.db.ExecContext(ctx,
			`UPDATE schedule_versions SET status = $1, updated_at = $2 WHERE id = $3`,
			status, now, id)
	}
	if err != nil {
		return fmt.Errorf("update version status: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
