package repository

import (
	"testing"

	"skillswap/internal/database"
	"skillswap/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a fresh in-memory database with the full schema.
// TranslateError maps sqlite unique violations onto gorm.ErrDuplicatedKey the
// same way the postgres driver does in production.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

// setupTestDBWithFKs is like setupTestDB but with foreign key enforcement
// enabled, for tests that exercise referential-integrity error mapping.
func setupTestDBWithFKs(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
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
