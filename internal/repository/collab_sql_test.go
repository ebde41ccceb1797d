package repository

import (
	"context"
	"testing"

	"skillswap/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

// The transition write must be a single guarded UPDATE: the WHERE clause
// carries both id and the expected current status.
func TestUpdateStatusEmitsGuardedUpdate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCollabRepository(db)

	mock.ExpectExec(`UPDATE "collab_requests" SET .+ WHERE id = \$\d+ AND status = \$\d+`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), uint(7), string(models.CollabStatusPending)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), 7, models.CollabStatusPending, models.CollabStatusAccepted)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusZeroRowsIsConflict(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCollabRepository(db)

	mock.ExpectExec(`UPDATE "collab_requests"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 7, models.CollabStatusPending, models.CollabStatusAccepted)
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.ErrCodeConflict, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// GetForUpdate must emit FOR UPDATE so the row lock serializes concurrent
// transitions for the duration of the surrounding transaction.
func TestGetForUpdateEmitsRowLock(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCollabRepository(db)

	rows := sqlmock.NewRows([]string{"id", "requester_id", "receiver_id", "status"}).
		AddRow(7, 1, 2, string(models.CollabStatusPending))
	mock.ExpectQuery(`SELECT .+ FROM "collab_requests" .+ FOR UPDATE`).
		WillReturnRows(rows)

	req, err := repo.GetForUpdate(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, models.CollabStatusPending, req.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
