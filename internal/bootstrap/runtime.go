// Package bootstrap wires process-level resources (database, cache, seeding)
// for the command binaries.
package bootstrap

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"skillswap/internal/cache"
	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/models"
	"skillswap/internal/seed"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedCatalog bool
}

// InitRuntime connects to DB and Redis and optionally seeds the built-in
// skill catalog.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// May result in a nil client if unreachable; callers tolerate that.
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if err := ensureDevAdmin(cfg, db); err != nil {
		return nil, nil, fmt.Errorf("failed to bootstrap development admin: %w", err)
	}

	if opts.SeedCatalog {
		if err := seed.Catalog(db); err != nil {
			return nil, nil, fmt.Errorf("failed to seed built-in skill catalog: %w", err)
		}
	}

	return db, r, nil
}

// ensureDevAdmin guarantees a usable admin account in development so the
// catalog management endpoints are reachable out of the box.
func ensureDevAdmin(cfg *config.Config, db *gorm.DB) error {
	if cfg == nil || db == nil {
		return nil
	}
	if !strings.EqualFold(cfg.Env, "development") {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var admin models.User
		findErr := tx.Where("handle = ?", "admin").First(&admin).Error
		switch {
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			admin = models.User{
				Handle:       "admin",
				Email:        "admin@skillswap.local",
				FullName:     "SkillSwap Admin",
				PasswordHash: string(hashedPassword),
				IsActive:     true,
				IsAdmin:      true,
			}
			if err := tx.Create(&admin).Error; err != nil {
				return err
			}
			log.Println("development admin account created (admin / password123)")
		case findErr != nil:
			return findErr
		default:
			if !admin.IsAdmin {
				if err := tx.Model(&models.User{}).
					Where("id = ?", admin.ID).
					Update("is_admin", true).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
