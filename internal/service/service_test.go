package service

import (
	"testing"

	"skillswap/internal/database"
	"skillswap/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, handle string) *models.User {
	t.Helper()

	user := &models.User{
		Handle:       handle,
		Email:        handle + "@example.com",
		FullName:     "Test " + handle,
		PasswordHash: "x",
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestSkill(t *testing.T, db *gorm.DB, name, slug string) *models.Skill {
	t.Helper()

	skill := &models.Skill{Name: name, Slug: slug, IsActive: true}
	require.NoError(t, db.Create(skill).Error)
	return skill
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, code, appErr.Code)
}
