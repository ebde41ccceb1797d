package models

import (
	"encoding/json"
	"time"
)

// Audit action keywords.
const (
	AuditActionCreate = "CREATE"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"
)

// AuditLog records one accepted mutation. The actor is nullable for
// system-originated writes. Rows are written in the same transaction as the
// mutation they describe, so no mutation commits without its audit record.
type AuditLog struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	ActorUserID *uint           `gorm:"index" json:"actor_user_id,omitempty"`
	Entity      string          `gorm:"size:60;not null;index" json:"entity"`
	EntityID    *uint           `json:"entity_id,omitempty"`
	Action      string          `gorm:"size:40;not null" json:"action"`
	Metadata    json.RawMessage `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for GORM
func (AuditLog) TableName() string {
	return "audit_logs"
}
