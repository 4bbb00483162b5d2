package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/campuskit/acadsched-api/internal/models"
	appErrors "github.com/campuskit/acadsched-api/pkg/errors"
)

type departmentRepository interface {
	List(ctx context.Context) ([]models.Department, error)
	FindByID(ctx context.Context, id string) (*models.Department, error)
	Create(ctx context.Context, department *models.Department) error
	ListPrograms(ctx context.Context, departmentID string) ([]models.Program, error)
	CreateProgram(ctx context.Context, program *models.Program) error
}

// DepartmentService handles departments and their degree programs.
type DepartmentService struct {
	repo   departmentRepository
	logger *zap.Logger
}

// NewDepartmentService creates a new department service.
func NewDepartmentService(repo departmentRepository, logger *zap.Logger) *DepartmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DepartmentService{repo: repo, logger: logger}
}

// List returns all departments.
func (s *DepartmentService) List(ctx context.Context) ([]models.Department, error) {
	departments, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list departments")
	}
	return departments, nil
}

// Get returns a department by identifier.
func (s *DepartmentService) Get(ctx context.Context, id string) (*models.Department, error) {
	department, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "department not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load department")
	}
	return department, nil
}

// Create registers a department.
func (s *DepartmentService) Create(ctx context.Context, code, name string) (*models.Department, error) {
	if code == "" || name == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "department code and name are required")
	}
	department := &models.Department{Code: code, Name: name}
	if err := s.repo.Create(ctx, department); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create department")
	}
	s.logger.Info("department created", zap.String("department_id", department.ID), zap.String("code", code))
	return department, nil
}

// ListPrograms returns the programs of a department.
func (s *DepartmentService) ListPrograms(ctx context.Context, departmentID string) ([]models.Program, error) {
	programs, err := s.repo.ListPrograms(ctx, departmentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list programs")
	}
	return programs, nil
}

// CreateProgram registers a program under a department.
func (s *DepartmentService) CreateProgram(ctx context.Context, departmentID, code, name string) (*models.Program, error) {
	if code == "" || name == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "program code and name are required")
	}
	if _, err := s.Get(ctx, departmentID); err != nil {
		return nil, err
	}
	program := &models.Program{DepartmentID: departmentID, Code: code, Name: name}
	if err := s.repo.CreateProgram(ctx, program); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create program")
	}
	return program, nil
}
