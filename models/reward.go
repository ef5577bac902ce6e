// models/reward.go - Reward Catalog and Unlock Data Models
package models

import (
	"time"

	"gorm.io/datatypes"
)

// SpicySurprise is a static reward-catalog entry. Rows are seeded at
// migration time and treated as read-only reference data.
type SpicySurprise struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null;size:50"`
	ContentType string         `json:"content_type" gorm:"not null;size:30"` // voice_clip, script, badge, book_recommendation
	ContentData datatypes.JSON `json:"content_data" gorm:"type:jsonb"`
	Rarity      string         `json:"rarity" gorm:"not null;default:'common';size:20"`
	IsNSFW      bool           `json:"is_nsfw" gorm:"default:false"`

	// Unlock requirements
	StreakDays     int     `json:"streak_days" gorm:"default:0"`
	ActivityPoints int     `json:"activity_points" gorm:"default:0"`
	ThemedDay      *string `json:"themed_day,omitempty" gorm:"size:50"` // theme slug, nil = any day

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UnlockedReward records one user unlocking one catalog entry. The
// (user, definition) pair is unique; the row is created exactly once,
// the first time eligibility is met, and mutated only by a claim.
type UnlockedReward struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	UserID       uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_unlocked_user_definition"`
	User         *User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	DefinitionID uint           `json:"definition_id" gorm:"not null;uniqueIndex:idx_unlocked_user_definition"`
	Definition   *SpicySurprise `json:"definition,omitempty" gorm:"foreignKey:DefinitionID"`
	RewardType   string         `json:"reward_type" gorm:"not null;size:30"`
	RewardData   datatypes.JSON `json:"reward_data" gorm:"type:jsonb"`
	IsClaimed    bool           `json:"is_claimed" gorm:"default:false"`
	UnlockedAt   time.Time      `json:"unlocked_at"`
	ClaimedAt    *time.Time     `json:"claimed_at,omitempty"`
}

func (SpicySurprise) TableName() string {
	return "spicy_surprises"
}

func (UnlockedReward) TableName() string {
	return "unlocked_rewards"
}
