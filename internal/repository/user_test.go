package repository

import (
	"context"
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryCreateDuplicateHandle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "alice")

	err := repo.Create(ctx, &models.User{
		Handle:       "alice",
		Email:        "other@example.com",
		FullName:     "Other Alice",
		PasswordHash: "x",
	})
	require.Error(t, err)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.ErrCodeConflict, appErr.Code)
}

func TestUserRepositoryExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "alice")

	ok, err := repo.Exists(ctx, alice.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserRepositorySearch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "alice")
	createTestUser(t, db, "bob")

	found, err := repo.Search(ctx, "ali", 10, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "alice", found[0].Handle)
}
