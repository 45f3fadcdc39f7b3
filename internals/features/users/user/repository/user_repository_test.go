package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewUserRepository(db), mock
}

func TestDivisionOf(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "division" FROM "users" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"division"}).AddRow(" deployment "))

	div, err := repo.DivisionOf(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "DEPLOYMENT", div)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDivisionOfNull(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "division" FROM "users" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"division"}).AddRow(nil))

	div, err := repo.DivisionOf(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "", div)
}

func TestDivisionOfMissingUser(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "division" FROM "users" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"division"}))

	_, err := repo.DivisionOf(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
