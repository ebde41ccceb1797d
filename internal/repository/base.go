package repository

import (
	"skillswap/internal/database"

	"gorm.io/gorm"
)

// readDB returns the connection used for read-only queries: the read replica
// when one is configured, otherwise the primary. Reads run in autocommit mode
// with no transaction held.
func readDB(primary *gorm.DB) *gorm.DB {
	if db := database.GetReadDB(); db != nil {
		return db
	}
	return primary
}
