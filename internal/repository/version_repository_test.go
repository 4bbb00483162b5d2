package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/acadsched-api/internal/models"
)

func newVersionRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestVersionRepositoryNextVersionNumber(t *testing.T) {
	db, mock, cleanup := newVersionRepoMock(t)
	defer cleanup()
	repo := NewVersionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(MAX(version), 0) + 1 FROM schedule_versions WHERE term_id = $1 AND department_id = $2")).
		WithArgs("term-1", "dept-1").
		WillReturnRows(sqlmock.NewRows([]string{"next"}).AddRow(3))

	next, err := repo.NextVersionNumber(context.Background(), "term-1", "dept-1")
	require.NoError(t, err)
	assert.Equal(t, 3, next)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVersionRepositoryActivateDemotesSibling(t *testing.T) {
	db, mock, cleanup := newVersionRepoMock(t)
	defer cleanup()
	repo := NewVersionRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT term_id, department_id FROM schedule_versions WHERE id = $1")).
		WithArgs("ver-2").
		WillReturnRows(sqlmock.NewRows([]string{"term_id", "department_id"}).AddRow("term-1", "dept-1"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE schedule_versions SET status = $1, updated_at = $2 WHERE term_id = $3 AND department_id = $4 AND status = $5 AND id <> $6")).
		WithArgs(string(models.VersionDraft), sqlmock.AnyArg(), "term-1", "dept-1", string(models.VersionActive), "ver-2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE schedule_versions SET status = $1, updated_at = $2 WHERE id = $3")).
		WithArgs(string(models.VersionActive), sqlmock.AnyArg(), "ver-2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Activate(context.Background(), "ver-2"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVersionRepositoryActivateMissing(t *testing.T) {
	db, mock, cleanup := newVersionRepoMock(t)
	defer cleanup()
	repo := NewVersionRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT term_id, department_id FROM schedule_versions WHERE id = $1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.Activate(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVersionRepositoryUpdateStatusLocked(t *testing.T) {
	db, mock, cleanup := newVersionRepoMock(t)
	defer cleanup()
	repo := NewVersionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE schedule_versions SET status = $1, locked_by = $2, locked_at = $3, updated_at = $3 WHERE id = $4")).
		WithArgs(string(models.VersionLocked), "user-1", sqlmock.AnyArg(), "ver-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), "ver-1", models.VersionLocked, "user-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVersionRepositoryListByScope(t *testing.T) {
	db, mock, cleanup := newVersionRepoMock(t)
	defer cleanup()
	repo := NewVersionRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "term_id", "department_id", "version", "label", "status", "created_by", "locked_by", "locked_at", "notes", "created_at", "updated_at"}).
		AddRow("ver-2", "term-1", "dept-1", 2, "Revision B", string(models.VersionActive), "user-1", nil, nil, nil, now, now).
		AddRow("ver-1", "term-1", "dept-1", 1, "Initial", string(models.VersionArchived), "user-1", nil, nil, nil, now, now)
	mock.ExpectQuery("SELECT .+ FROM schedule_versions WHERE term_id = .+ ORDER BY version DESC").
		WithArgs("term-1", "dept-1").
		WillReturnRows(rows)

	versions, err := repo.ListByScope(context.Background(), "term-1", "dept-1")
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, 2, versions[0].Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}
