package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/campuskit/acadsched-api/internal/models"
)

// FacultyRepository reads the faculty roster and its profiles.
type FacultyRepository struct {
	db *sqlx.DB
}

// NewFacultyRepository creates a new repository instance.
func NewFacultyRepository(db *sqlx.DB) *FacultyRepository {
	return &FacultyRepository{db: db}
}

// List returns roster entries matching filters with pagination metadata.
func (r *FacultyRepository) List(ctx context.Context, filter models.FacultyFilter) ([]models.FacultyUser, int, error) {
	base := "FROM faculty_users fu LEFT JOIN faculty_profiles fp ON fp.user_id = fu.user_id WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.DepartmentID != "" {
		conditions = append(conditions, fmt.Sprintf("fp.department_id = $%d", len(args)+1))
		args = append(args, filter.DepartmentID)
	}
	if filter.Role != "" {
		conditions = append(conditions, fmt.Sprintf("fu.role = $%d", len(args)+1))
		args = append(args, filter.Role)
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(LOWER(fu.name) LIKE $%d OR LOWER(fu.email) LIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}

	if len(conditions) > 0 {
		base += " AND " + strings.Join(conditions, " AND ")
	}

	sortBy := filter.SortBy
	allowedSorts := map[string]bool{
		"name":       true,
		"email":      true,
		"created_at": true,
	}
	if !allowedSorts[sortBy] {
		sortBy = "name"
	}
	order := strings.ToUpper(filter.SortOrder)
	if order != "ASC" && order != "DESC" {
		order = "ASC"
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

	query := fmt.Sprintf("SELECT fu.user_id, fu.name, fu.email, fu.role, fu.created_at, fu.updated_at %s ORDER BY fu.%s %s LIMIT %d OFFSET %d", base, sortBy, order, size, offset)
	var roster []models.FacultyUser
	if err := r.db.SelectContext(ctx, &roster, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list faculty: %w", err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) %s", base)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count faculty: %w", err)
	}

	return roster, total, nil
}

// ListAll returns the full roster ordered by name.
func (r *FacultyRepository) ListAll(ctx context.Context) ([]models.FacultyUser, error) {
	const query = `SELECT user_id, name, email, role, created_at, updated_at FROM faculty_users ORDER BY name ASC`
	var roster []models.FacultyUser
	if err := r.db.SelectContext(ctx, &roster, query); err != nil {
		return nil, fmt.Errorf("list all faculty: %w", err)
	}
	return roster, nil
}

// ListAllProfiles returns every faculty profile.
func (r *FacultyRepository) ListAllProfiles(ctx context.Context) ([]models.FacultyProfile, error) {
	const query = `SELECT user_id, department_id, employee_no, rank, max_units, max_hours, created_at, updated_at FROM faculty_profiles`
	var profiles []models.FacultyProfile
	if err := r.db.SelectContext(ctx, &profiles, query); err != nil {
		return nil, fmt.Errorf("list faculty profiles: %w", err)
	}
	return profiles, nil
}

// FindByID loads a roster entry.
func (r *FacultyRepository) FindByID(ctx context.Context, userID string) (*models.FacultyUser, error) {
	const query = `SELECT user_id, name, email, role, created_at, updated_at FROM faculty_users WHERE user_id = $1`
	var fu models.FacultyUser
	if err := r.db.GetContext(ctx, &fu, query, userID); err != nil {
		return nil, err
	}
	return &fu, nil
}

// FindProfile loads a faculty profile by owner id.
func (r *FacultyRepository) FindProfile(ctx context.Context, userID string) (*models.FacultyProfile, error) {
	const query = `SELECT user_id, department_id, employee_no, rank, max_units, max_hours, created_at, updated_at FROM faculty_profiles WHERE user_id = $1`
	var fp models.FacultyProfile
	if err := r.db.GetContext(ctx, &fp, query, userID); err != nil {
		return nil, err
	}
	return &fp, nil
}

// UpsertProfile creates or replaces a faculty profile.
func (r *FacultyRepository) UpsertProfile(ctx context.Context, profile *models.FacultyProfile) error {
	now := time.Now().UTC()
	profile.UpdatedAt = now
	const query = `INSERT INTO faculty_profiles (user_id, department_id, employee_no, rank, max_units, max_hours, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			department_id = EXCLUDED.department_id,
			employee_no = EXCLUDED.employee_no,
			rank = EXCLUDED.rank,
			max_units = EXCLUDED.max_units,
			max_hours = EXCLUDED.max_hours,
			updated_at = EXCLUDED.updated_at`
	if _, err := r.db.ExecContext(ctx, query, profile.UserID, profile.DepartmentID, profile.EmployeeNo, profile.Rank, profile.MaxUnits, profile.MaxHours, now); err != nil {
		return fmt.Errorf("upsert faculty profile: %w", err)
	}
	return nil
}
