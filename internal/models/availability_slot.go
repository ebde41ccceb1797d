package models

import "time"

// AvailabilitySlot is a weekly recurring window in which a user is open to
// sessions. Minutes are counted from midnight; weekday 1 is Monday.
type AvailabilitySlot struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Weekday     int       `gorm:"not null" json:"weekday"`
	StartMinute int       `gorm:"not null" json:"start_minute"`
	EndMinute   int       `gorm:"not null" json:"end_minute"`
	IsOnline    bool      `gorm:"default:true" json:"is_online"`
	Location    string    `gorm:"size:160" json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for GORM
func (AvailabilitySlot) TableName() string {
	return "availability_slots"
}
