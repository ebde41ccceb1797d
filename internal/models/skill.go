package models

import (
	"encoding/json"
	"time"
)

// Skill is a teachable topic in the catalog. Slugs are unique and stable;
// deactivation (is_active=false) is the default removal path so existing
// user skills and interests keep resolving.
type Skill struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"size:100;not null" json:"name"`
	Slug      string          `gorm:"uniqueIndex;size:120;not null" json:"slug"`
	Category  string          `gorm:"size:80;index" json:"category,omitempty"`
	Synonyms  json.RawMessage `gorm:"type:jsonb" json:"synonyms,omitempty"`
	IsActive  bool            `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time       `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Skill) TableName() string {
	return "skills"
}

// SkillLevel is the proficiency a user claims for a skill they teach.
type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "beginner"
	SkillLevelIntermediate SkillLevel = "intermediate"
	SkillLevelAdvanced     SkillLevel = "advanced"
	SkillLevelExpert       SkillLevel = "expert"
)

// Valid reports whether the level is one of the allowed enum values.
func (l SkillLevel) Valid() bool {
	switch l {
	case SkillLevelBeginner, SkillLevelIntermediate, SkillLevelAdvanced, SkillLevelExpert:
		return true
	}
	return false
}

// UserSkill links a user to a skill they can teach.
type UserSkill struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null;uniqueIndex:idx_user_skill_pair" json:"user_id"`
	SkillID   uint       `gorm:"not null;uniqueIndex:idx_user_skill_pair" json:"skill_id"`
	Level     SkillLevel `gorm:"type:varchar(20);default:'intermediate'" json:"level"`
	YearsExp  float64    `gorm:"default:0" json:"years_exp"`
	Note      string     `gorm:"size:200" json:"note,omitempty"`
	CreatedAt time.Time  `json:"created_at"`

	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Skill Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

// TableName specifies the table name for GORM
func (UserSkill) TableName() string {
	return "user_skills"
}

// DesiredLevel is the proficiency a learner wants to reach.
type DesiredLevel string

const (
	DesiredLevelBeginner     DesiredLevel = "beginner"
	DesiredLevelIntermediate DesiredLevel = "intermediate"
	DesiredLevelAdvanced     DesiredLevel = "advanced"
)

// Valid reports whether the desired level is one of the allowed enum values.
func (l DesiredLevel) Valid() bool {
	switch l {
	case DesiredLevelBeginner, DesiredLevelIntermediate, DesiredLevelAdvanced:
		return true
	}
	return false
}

// UserInterest links a user to a skill they want to learn.
type UserInterest struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	UserID       uint         `gorm:"not null;uniqueIndex:idx_user_interest_pair" json:"user_id"`
	SkillID      uint         `gorm:"not null;uniqueIndex:idx_user_interest_pair" json:"skill_id"`
	DesiredLevel DesiredLevel `gorm:"type:varchar(20);default:'beginner'" json:"desired_level"`
	Priority     int          `gorm:"default:3" json:"priority"`
	Note         string       `gorm:"size:200" json:"note,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`

	User  User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Skill Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

// TableName specifies the table name for GORM
func (UserInterest) TableName() string {
	return "user_interests"
}
