// models/challenge.go - Daily Challenge Data Models
package models

import (
	"time"
)

// Challenge difficulty constants
type ChallengeDifficulty string

const (
	DifficultyEasy      ChallengeDifficulty = "easy"
	DifficultyMedium    ChallengeDifficulty = "medium"
	DifficultyHard      ChallengeDifficulty = "hard"
	DifficultyLegendary ChallengeDifficulty = "legendary"
)

// RequirementType identifies what a challenge requirement counts.
type RequirementType string

const (
	RequirementReadingMinutes RequirementType = "reading_minutes"
	RequirementSpicyScenes    RequirementType = "spicy_scenes"
	RequirementContentShares  RequirementType = "content_shares"
)

// ChallengeRequirement is one counter inside a challenge. Current is
// advanced as the user performs matching activities; never decremented.
type ChallengeRequirement struct {
	Type    RequirementType `json:"type"`
	Target  int             `json:"target"`
	Current int             `json:"current"`
}

// ChallengeReward describes what completing a challenge grants.
type ChallengeReward struct {
	Type   string `json:"type"` // points, voice_clip, book_recommendation, badge
	Value  string `json:"value"`
	Rarity string `json:"rarity"` // common, rare, epic, legendary
}

// DailyChallenge is one generated challenge for one user and calendar
// date. The (user, date, slug) triple is unique so regenerating a day
// never duplicates a challenge set.
type DailyChallenge struct {
	ID     uint  `json:"id" gorm:"primaryKey"`
	UserID uint  `json:"user_id" gorm:"not null;uniqueIndex:idx_challenges_user_date_slug"`
	User   *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	// Calendar date the challenge belongs to, stored as YYYY-MM-DD.
	ChallengeDate string                 `json:"date" gorm:"size:10;not null;uniqueIndex:idx_challenges_user_date_slug"`
	Slug          string                 `json:"slug" gorm:"not null;size:50;uniqueIndex:idx_challenges_user_date_slug"`
	Title         string                 `json:"title" gorm:"not null;size:100"`
	Description   string                 `json:"description" gorm:"type:text"`
	Difficulty    ChallengeDifficulty    `json:"difficulty" gorm:"not null;default:'medium';size:20"`
	Requirements  []ChallengeRequirement `json:"requirements" gorm:"type:jsonb;serializer:json"`
	Rewards       []ChallengeReward      `json:"rewards" gorm:"type:jsonb;serializer:json"`
	ThemeSlug     string                 `json:"theme_slug" gorm:"size:50;index"`
	IsActive      bool                   `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

func (DailyChallenge) TableName() string {
	return "daily_challenges"
}
