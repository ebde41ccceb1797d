package models

import "time"

// Match is a confirmed pairing between two users. Scores are supplied by an
// external scorer; this service only stores them.
type Match struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserAID   uint      `gorm:"not null;index" json:"user_a_id"`
	UserBID   uint      `gorm:"not null;index" json:"user_b_id"`
	Score     float64   `gorm:"type:numeric(5,2);not null" json:"score"`
	Reason    string    `gorm:"size:300" json:"reason,omitempty"`
	CreatedBy string    `gorm:"size:40;default:'system'" json:"created_by"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	UserA User `gorm:"foreignKey:UserAID" json:"user_a,omitempty"`
	UserB User `gorm:"foreignKey:UserBID" json:"user_b,omitempty"`
}

// TableName specifies the table name for GORM
func (Match) TableName() string {
	return "matches"
}

// MatchCandidate is a scored suggestion produced by the external matcher for
// one user to approach another. Candidates feed collaboration requests but
// carry no lifecycle of their own.
type MatchCandidate struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	SourceUserID   uint      `gorm:"not null;index" json:"source_user_id"`
	TargetUserID   uint      `gorm:"not null" json:"target_user_id"`
	OfferedSkillID *uint     `json:"offered_skill_id,omitempty"`
	WantedSkillID  *uint     `json:"wanted_skill_id,omitempty"`
	Score          float64   `gorm:"type:numeric(5,2);not null" json:"score"`
	Rationale      string    `gorm:"size:400" json:"rationale,omitempty"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`

	SourceUser   User   `gorm:"foreignKey:SourceUserID" json:"source_user,omitempty"`
	TargetUser   User   `gorm:"foreignKey:TargetUserID" json:"target_user,omitempty"`
	OfferedSkill *Skill `gorm:"foreignKey:OfferedSkillID" json:"offered_skill,omitempty"`
	WantedSkill  *Skill `gorm:"foreignKey:WantedSkillID" json:"wanted_skill,omitempty"`
}

// TableName specifies the table name for GORM
func (MatchCandidate) TableName() string {
	return "match_candidates"
}
