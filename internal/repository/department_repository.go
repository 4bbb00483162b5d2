package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campuskit/acadsched-api/internal/models"
)

// DepartmentRepository handles persistence for departments and their programs.
type DepartmentRepository struct {
	db *sqlx.DB
}

// NewDepartmentRepository creates a new repository instance.
func NewDepartmentRepository(db *sqlx.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// List returns all departments ordered by code.
func (r *DepartmentRepository) List(ctx context.Context) ([]models.Department, error) {
	const query = `SELECT id, code, name, created_at, updated_at FROM departments ORDER BY code ASC`
	var departments []models.Department
	if err := r.db.SelectContext(ctx, &departments, query); err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	return departments, nil
}

// FindByID loads a department by id.
func (r *DepartmentRepository) FindByID(ctx context.Context, id string) (*models.Department, error) {
	const query = `SELECT id, code, name, created_at, updated_at FROM departments WHERE id = $1`
	var department models.Department
	if err := r.db.GetContext(ctx, &department, query, id); err != nil {
		return nil, err
	}
	return &department, nil
}

// Create inserts a department.
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	if department.ID == "" {
		department.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	department.CreatedAt = now
	department.UpdatedAt = now
	const query = `INSERT INTO departments (id, code, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	if _, err := r.db.ExecContext(ctx, query, department.ID, department.Code, department.Name, department.CreatedAt, department.UpdatedAt); err != nil {
		return fmt.Errorf("create department: %w", err)
	}
	return nil
}

// ListPrograms returns the programs of a department ordered by code.
func (r *DepartmentRepository) ListPrograms(ctx context.Context, departmentID string) ([]models.Program, error) {
	const query = `SELECT id, department_id, code, name, created_at, updated_at FROM programs WHERE department_id = $1 ORDER BY code ASC`
	var programs []models.Program
	if err := r.db.SelectContext(ctx, &programs, query, departmentID); err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	return programs, nil
}

// CreateProgram inserts a program under a department.
func (r *DepartmentRepository) CreateProgram(ctx context.Context, program *models.Program) error {
	if program.ID == "" {
		program.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	program.CreatedAt = now
	program.UpdatedAt = now
	const query = `INSERT INTO programs (id, department_id, code, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.ExecContext(ctx, query, program.ID, program.DepartmentID, program.Code, program.Name, program.CreatedAt, program.UpdatedAt); err != nil {
		return fmt.Errorf("create program: %w", err)
	}
	return nil
}
