package repository

import (
	"context"
	"encoding/json"
	"time"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// AuditRepository records accepted mutations. Record must be called with a
// repository built on the same transaction as the mutation so the audit row
// commits or rolls back with it.
type AuditRepository interface {
	Record(ctx context.Context, entry *models.AuditLog) error
	ListByEntity(ctx context.Context, entity string, entityID uint, limit, offset int) ([]models.AuditLog, error)
}

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit log repository
func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Record(ctx context.Context, entry *models.AuditLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *auditRepository) ListByEntity(ctx context.Context, entity string, entityID uint, limit, offset int) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	if err := readDB(r.db).WithContext(ctx).
		Where("entity = ? AND entity_id = ?", entity, entityID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

// AuditEntry builds a log row; metadata marshals best-effort and is dropped
// on marshal failure rather than failing the mutation.
func AuditEntry(actorID *uint, entity string, entityID uint, action string, metadata map[string]interface{}) *models.AuditLog {
	entry := &models.AuditLog{
		ActorUserID: actorID,
		Entity:      entity,
		EntityID:    &entityID,
		Action:      action,
		CreatedAt:   time.Now().UTC(),
	}
	if metadata != nil {
		if raw, err := json.Marshal(metadata); err == nil {
			entry.Metadata = raw
		}
	}
	return entry
}
