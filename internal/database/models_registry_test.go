package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// The registry must migrate cleanly onto an empty schema; this is the same
// set AutoMigrate applies at startup in non-production environments.
func TestPersistentModelsMigrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(PersistentModels()...))

	for _, table := range []string{
		"users", "skills", "user_skills", "user_interests",
		"collab_requests", "matches", "match_candidates",
		"reviews", "availability_slots", "audit_logs",
	} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}
