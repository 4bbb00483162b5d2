package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/acadsched-api/internal/dto"
	"github.com/campuskit/acadsched-api/internal/models"
	appErrors "github.com/campuskit/acadsched-api/pkg/errors"
)

type sectionRepoStub struct {
	items []models.Section
}

func (s *sectionRepoStub) List(ctx context.Context, filter models.SectionFilter) ([]models.Section, int, error) {
	return s.items, len(s.items), nil
}

func (s *sectionRepoStub) FindByID(ctx context.Context, id string) (*models.Section, error) {
	for _, item := range s.items {
		if item.ID == id {
			return &item, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *sectionRepoStub) ExistsByKey(ctx context.Context, termID, departmentID string, yearLevel int, name string) (bool, error) {
	for _, item := range s.items {
		if item.TermID == termID && item.DepartmentID == departmentID && item.YearLevel == yearLevel && strings.EqualFold(item.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (s *sectionRepoStub) Create(ctx context.Context, section *models.Section) error {
	if section.ID == "" {
		section.ID = "sec-new"
	}
	s.items = append(s.items, *section)
	return nil
}

func TestSectionServiceCreate(t *testing.T) {
	stub := &sectionRepoStub{}
	svc := NewSectionService(stub, nil, nil)

	section, err := svc.Create(context.Background(), dto.CreateSectionRequest{
		TermID:       "term-1",
		DepartmentID: "dept-1",
		YearLevel:    1,
		Name:         "BSIT 1-A",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, section.ID)
	assert.Equal(t, "BSIT 1-A", section.Name)
}

func TestSectionServiceRejectsDuplicateCaseInsensitive(t *testing.T) {
	stub := &sectionRepoStub{items: []models.Section{
		{ID: "sec-1", TermID: "term-1", DepartmentID: "dept-1", YearLevel: 1, Name: "BSIT 1-A"},
	}}
	svc := NewSectionService(stub, nil, nil)

	_, err := svc.Create(context.Background(), dto.CreateSectionRequest{
		TermID:       "term-1",
		DepartmentID: "dept-1",
		YearLevel:    1,
		Name:         "bsit 1-a",
	})
	assert.ErrorIs(t, err, appErrors.ErrDuplicateSection)
}

func TestSectionServiceAllowsSameNameAcrossYearLevels(t *testing.T) {
	stub := &sectionRepoStub{items: []models.Section{
		{ID: "sec-1", TermID: "term-1", DepartmentID: "dept-1", YearLevel: 1, Name: "A"},
	}}
	svc := NewSectionService(stub, nil, nil)

	_, err := svc.Create(context.Background(), dto.CreateSectionRequest{
		TermID:       "term-1",
		DepartmentID: "dept-1",
		YearLevel:    2,
		Name:         "A",
	})
	assert.NoError(t, err)
}

func TestSectionServiceCreateValidation(t *testing.T) {
	svc := NewSectionService(&sectionRepoStub{}, nil, nil)

	_, err := svc.Create(context.Background(), dto.CreateSectionRequest{Name: "A"})
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
