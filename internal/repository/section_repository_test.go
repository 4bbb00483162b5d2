package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/acadsched-api/internal/models"
)

func newSectionRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestSectionRepositoryExistsByKey(t *testing.T) {
	db, mock, cleanup := newSectionRepoMock(t)
	defer cleanup()
	repo := NewSectionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM sections WHERE term_id = $1 AND department_id = $2 AND year_level = $3 AND LOWER(name) = LOWER($4))")).
		WithArgs("term-1", "dept-1", 1, "BSIT 1-A").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByKey(context.Background(), "term-1", "dept-1", 1, "BSIT 1-A")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSectionRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newSectionRepoMock(t)
	defer cleanup()
	repo := NewSectionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sections")).
		WithArgs(sqlmock.AnyArg(), "term-1", "dept-1", nil, 1, "BSIT 1-A", nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	section := &models.Section{
		TermID:       "term-1",
		DepartmentID: "dept-1",
		YearLevel:    1,
		Name:         "BSIT 1-A",
	}
	require.NoError(t, repo.Create(context.Background(), section))
	assert.NotEmpty(t, section.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
