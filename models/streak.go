// models/streak.go - Streak System Data Models
package models

import (
	"time"
)

// StreakType identifies which activity chain a streak counts.
type StreakType string

const (
	StreakDailyReading   StreakType = "daily_reading"
	StreakSpicyScenes    StreakType = "spicy_scenes"
	StreakContentSharing StreakType = "content_sharing"
	StreakBookClub       StreakType = "book_club"
)

// Streak tracks consecutive-day activity per user and streak type.
// One row per (user, streak_type); LongestStreak never decreases.
type Streak struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	UserID        uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_streaks_user_type"`
	User          *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	StreakType    StreakType `json:"streak_type" gorm:"not null;size:30;uniqueIndex:idx_streaks_user_type"`
	CurrentStreak int        `json:"current_streak" gorm:"default:0"`
	LongestStreak int        `json:"longest_streak" gorm:"default:0"`
	// Calendar date of the last counted activity, stored as YYYY-MM-DD.
	LastActivityDate string    `json:"last_activity_date" gorm:"size:10;not null"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Streak) TableName() string {
	return "streaks"
}
