package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ftth_backend/internals/features/projects/project/model"
)

func newMockRepo(t *testing.T) (*ProjectRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewProjectRepository(db), mock
}

func sampleRows() []model.ProjectModel {
	return []model.ProjectModel{
		{Regional: "JABAR", NoProject: "PRJ001", NamaProject: "A", Pop: "P1", Status: "PLAN", UIC: "PLANNING"},
		{Regional: "JABAR", NoProject: "PRJ001", NamaProject: "B", Pop: "P1", Status: "PLAN", UIC: "PLANNING"},
	}
}

func TestInsertBatchRollsBackOnUniqueViolation(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "projects"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	out, err := repo.InsertBatch(context.Background(), sampleRows())
	require.Error(t, err)
	assert.Nil(t, out)

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "23505", pgErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBatchCommits(t *testing.T) {
	repo, mock := newMockRepo(t)
	id1, id2 := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "projects"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id1.String()).AddRow(id2.String()))
	mock.ExpectCommit()

	out, err := repo.InsertBatch(context.Background(), sampleRows())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, id1, out[0].ID)
	assert.Equal(t, id2, out[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBatchEmpty(t *testing.T) {
	repo, mock := newMockRepo(t)
	out, err := repo.InsertBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "projects"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetArchivedMissingRow(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "projects"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	_, err := repo.SetArchived(context.Background(), uuid.New(), true, time.Now())
	assert.ErrorIs(t, err, ErrProjectNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
