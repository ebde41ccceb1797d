// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a marketplace member who can teach and learn skills.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Handle       string    `gorm:"uniqueIndex;size:50;not null" json:"handle"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	FullName     string    `gorm:"size:120;not null" json:"full_name"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Bio          string    `gorm:"size:500" json:"bio,omitempty"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	IsAdmin      bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
