package models

import "time"

// CollabStatus represents the lifecycle state of a collaboration request.
type CollabStatus string

const (
	// CollabStatusPending is the initial status of every request.
	CollabStatusPending CollabStatus = "PENDING"
	// CollabStatusAccepted indicates the receiver agreed to the session.
	CollabStatusAccepted CollabStatus = "ACCEPTED"
	// CollabStatusDeclined indicates the receiver turned the request down. Terminal.
	CollabStatusDeclined CollabStatus = "DECLINED"
	// CollabStatusCancelled indicates either party withdrew. Terminal.
	CollabStatusCancelled CollabStatus = "CANCELLED"
	// CollabStatusCompleted indicates the session took place. Terminal.
	CollabStatusCompleted CollabStatus = "COMPLETED"
)

// collabTransitions is the fixed transition table. A status missing from the
// map (or mapped to an empty set) is terminal.
var collabTransitions = map[CollabStatus]map[CollabStatus]bool{
	CollabStatusPending: {
		CollabStatusAccepted:  true,
		CollabStatusDeclined:  true,
		CollabStatusCancelled: true,
	},
	CollabStatusAccepted: {
		CollabStatusCancelled: true,
		CollabStatusCompleted: true,
	},
}

// Valid reports whether the status is one of the allowed enum values.
func (s CollabStatus) Valid() bool {
	switch s {
	case CollabStatusPending, CollabStatusAccepted, CollabStatusDeclined,
		CollabStatusCancelled, CollabStatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether the transition s -> next exists in the
// transition table.
func (s CollabStatus) CanTransitionTo(next CollabStatus) bool {
	return collabTransitions[s][next]
}

// Terminal reports whether no transition leaves this status.
func (s CollabStatus) Terminal() bool {
	return len(collabTransitions[s]) == 0
}

// CollabRequest is a proposed skill-exchange session between two users.
// Status only moves along the transition table; once terminal the row is
// read-only apart from hard deletion by either party.
type CollabRequest struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	RequesterID    uint         `gorm:"not null;index" json:"requester_id"`
	ReceiverID     uint         `gorm:"not null;index" json:"receiver_id"`
	OfferedSkillID *uint        `json:"offered_skill_id,omitempty"`
	WantedSkillID  *uint        `json:"wanted_skill_id,omitempty"`
	Status         CollabStatus `gorm:"type:varchar(20);default:'PENDING';index:idx_collab_requests_status" json:"status"`
	Message        string       `gorm:"size:500" json:"message,omitempty"`
	ScheduledAt    *time.Time   `json:"scheduled_at,omitempty"`
	CreatedAt      time.Time    `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`

	// Relationships
	Requester    User   `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Receiver     User   `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
	OfferedSkill *Skill `gorm:"foreignKey:OfferedSkillID" json:"offered_skill,omitempty"`
	WantedSkill  *Skill `gorm:"foreignKey:WantedSkillID" json:"wanted_skill,omitempty"`
}

// TableName specifies the table name for GORM
func (CollabRequest) TableName() string {
	return "collab_requests"
}

// IsParty reports whether userID is the requester or the receiver.
func (r *CollabRequest) IsParty(userID uint) bool {
	return userID == r.RequesterID || userID == r.ReceiverID
}
