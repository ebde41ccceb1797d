package models

import "time"

// Review is post-session feedback from one party about the other. The collab
// request reference is nullable so reviews survive hard deletion of the
// request they came from.
type Review struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ReviewerID      uint      `gorm:"not null;index" json:"reviewer_id"`
	RevieweeID      uint      `gorm:"not null;index" json:"reviewee_id"`
	CollabRequestID *uint     `json:"collab_request_id,omitempty"`
	Rating          int       `gorm:"not null" json:"rating"`
	Comment         string    `gorm:"size:400" json:"comment,omitempty"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`

	Reviewer User `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
	Reviewee User `gorm:"foreignKey:RevieweeID" json:"reviewee,omitempty"`
}

// TableName specifies the table name for GORM
func (Review) TableName() string {
	return "reviews"
}
