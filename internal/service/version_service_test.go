package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/acadsched-api/internal/dto"
	"github.com/campuskit/acadsched-api/internal/models"
	appErrors "github.com/campuskit/acadsched-api/pkg/errors"
)

type versionRepoStub struct {
	items map[string]models.ScheduleVersion
	next  int
}

func (s *versionRepoStub) ListByScope(ctx context.Context, termID, departmentID string) ([]models.ScheduleVersion, error) {
	var out []models.ScheduleVersion
	for _, v := range s.items {
		if v.TermID == termID && v.DepartmentID == departmentID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *versionRepoStub) FindByID(ctx context.Context, id string) (*models.ScheduleVersion, error) {
	if v, ok := s.items[id]; ok {
		return &v, nil
	}
	return nil, sql.ErrNoRows
}

func (s *versionRepoStub) NextVersionNumber(ctx context.Context, termID, departmentID string) (int, error) {
	if s.next == 0 {
		s.next = 1
	}
	return s.next, nil
}

func (s *versionRepoStub) Create(ctx context.Context, version *models.ScheduleVersion) error {
	if version.ID == "" {
		version.ID = "ver-new"
	}
	if s.items == nil {
		s.items = make(map[string]models.ScheduleVersion)
	}
	s.items[version.ID] = *version
	return nil
}

func (s *versionRepoStub) Activate(ctx context.Context, id string) error {
	target, ok := s.items[id]
	if !ok {
		return sql.ErrNoRows
	}
	for key, v := range s.items {
		if key != id && v.TermID == target.TermID && v.DepartmentID == target.DepartmentID && v.Status == models.VersionActive {
			v.Status = models.VersionDraft
			s.items[key] = v
		}
	}
	target.Status = models.VersionActive
	s.items[id] = target
	return nil
}

func (s *versionRepoStub) UpdateStatus(ctx context.Context, id string, status models.VersionStatus, actorID string) error {
	v, ok := s.items[id]
	if !ok {
		return sql.ErrNoRows
	}
	v.Status = status
	s.items[id] = v
	return nil
}

func newVersionStub(versions ...models.ScheduleVersion) *versionRepoStub {
	stub := &versionRepoStub{items: make(map[string]models.ScheduleVersion)}
	for _, v := range versions {
		stub.items[v.ID] = v
	}
	return stub
}

func TestVersionServiceCreateAssignsSequence(t *testing.T) {
	stub := newVersionStub()
	stub.next = 4
	svc := NewVersionService(stub, nil, nil)

	version, err := svc.Create(context.Background(), dto.CreateVersionRequest{
		TermID:       "term-1",
		DepartmentID: "dept-1",
	}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 4, version.Version)
	assert.Equal(t, models.VersionDraft, version.Status)
	assert.Equal(t, "Version 4", version.Label)
	assert.Equal(t, "user-1", version.CreatedBy)
}

func TestVersionServiceActivateDemotesSibling(t *testing.T) {
	stub := newVersionStub(
		models.ScheduleVersion{ID: "ver-1", TermID: "term-1", DepartmentID: "dept-1", Status: models.VersionActive},
		models.ScheduleVersion{ID: "ver-2", TermID: "term-1", DepartmentID: "dept-1", Status: models.VersionDraft},
		models.ScheduleVersion{ID: "ver-3", TermID: "term-1", DepartmentID: "dept-2", Status: models.VersionActive},
	)
	svc := NewVersionService(stub, nil, nil)

	version, err := svc.Activate(context.Background(), "ver-2")
	require.NoError(t, err)
	assert.Equal(t, models.VersionActive, version.Status)

	// sibling in the same scope is demoted, other departments untouched
	assert.Equal(t, models.VersionDraft, stub.items["ver-1"].Status)
	assert.Equal(t, models.VersionActive, stub.items["ver-3"].Status)
}

func TestVersionServiceActivateIdempotent(t *testing.T) {
	stub := newVersionStub(
		models.ScheduleVersion{ID: "ver-1", TermID: "term-1", DepartmentID: "dept-1", Status: models.VersionActive},
	)
	svc := NewVersionService(stub, nil, nil)

	version, err := svc.Activate(context.Background(), "ver-1")
	require.NoError(t, err)
	assert.Equal(t, models.VersionActive, version.Status)
}

func TestVersionServiceLockedIsTerminal(t *testing.T) {
	stub := newVersionStub(
		models.ScheduleVersion{ID: "ver-1", TermID: "term-1", DepartmentID: "dept-1", Status: models.VersionLocked},
	)
	svc := NewVersionService(stub, nil, nil)

	_, err := svc.Activate(context.Background(), "ver-1")
	assert.ErrorIs(t, err, appErrors.ErrVersionLocked)

	_, err = svc.Archive(context.Background(), "ver-1", "user-1")
	assert.ErrorIs(t, err, appErrors.ErrVersionLocked)
}

func TestVersionServiceArchivedIsTerminal(t *testing.T) {
	stub := newVersionStub(
		models.ScheduleVersion{ID: "ver-1", TermID: "term-1", DepartmentID: "dept-1", Status: models.VersionArchived},
	)
	svc := NewVersionService(stub, nil, nil)

	_, err := svc.Lock(context.Background(), "ver-1", "user-1")
	assert.ErrorIs(t, err, appErrors.ErrVersionArchived)
}

func TestVersionServiceLockFromDraft(t *testing.T) {
	stub := newVersionStub(
		models.ScheduleVersion{ID: "ver-1", TermID: "term-1", DepartmentID: "dept-1", Status: models.VersionDraft},
	)
	svc := NewVersionService(stub, nil, nil)

	version, err := svc.Lock(context.Background(), "ver-1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.VersionLocked, version.Status)
}

func TestVersionServiceGetMissing(t *testing.T) {
	svc := NewVersionService(newVersionStub(), nil, nil)
	_, err := svc.Get(context.Background(), "missing")
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
