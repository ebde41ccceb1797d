package seed

import (
	"testing"

	"skillswap/internal/database"
	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

func TestCatalogIsIdempotent(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, Catalog(db))
	require.NoError(t, Catalog(db))

	var count int64
	require.NoError(t, db.Model(&models.Skill{}).Count(&count).Error)
	assert.Equal(t, int64(len(BuiltInSkills)), count)
}

func TestSeedCreatesMesh(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)

	require.NoError(t, s.Seed(Options{NumUsers: 8, NumCollabs: 20}))

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(8), users)

	var collabs []models.CollabRequest
	require.NoError(t, db.Find(&collabs).Error)
	assert.NotEmpty(t, collabs)
	for _, c := range collabs {
		assert.NotEqual(t, c.RequesterID, c.ReceiverID)
		assert.True(t, c.Status.Valid(), "status %q", c.Status)
	}

	var slots int64
	require.NoError(t, db.Model(&models.AvailabilitySlot{}).Count(&slots).Error)
	assert.Equal(t, int64(16), slots)
}

func TestSeedExchangeMeshNeedsTwoUsers(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)

	u, err := s.factory.CreateUser(0)
	require.NoError(t, err)

	_, err = s.SeedExchangeMesh([]*models.User{u}, 5)
	assert.Error(t, err)
}
