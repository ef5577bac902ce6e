// models/activity.go - Activity Log Data Models
package models

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityType identifies what the reader did.
type ActivityType string

const (
	ActivityReadingSession    ActivityType = "reading_session"
	ActivitySpicySceneMarked  ActivityType = "spicy_scene_marked"
	ActivityContentShared     ActivityType = "content_shared"
	ActivityBookCompleted     ActivityType = "book_completed"
	ActivityClubParticipation ActivityType = "club_participation"
)

// StreakTypeFor maps an activity type to the streak it extends.
// book_completed (and unknown types) feed no streak.
func StreakTypeFor(at ActivityType) (StreakType, bool) {
	switch at {
	case ActivityReadingSession:
		return StreakDailyReading, true
	case ActivitySpicySceneMarked:
		return StreakSpicyScenes, true
	case ActivityContentShared:
		return StreakContentSharing, true
	case ActivityClubParticipation:
		return StreakBookClub, true
	default:
		return "", false
	}
}

// Activity is an immutable, append-only log entry. PointsEarned is
// computed once at creation time and never recomputed.
type Activity struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	UserID       uint           `json:"user_id" gorm:"not null;index:idx_activities_user_date"`
	User         *User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ActivityType ActivityType   `json:"activity_type" gorm:"not null;size:30;index"`
	ActivityData datatypes.JSON `json:"activity_data" gorm:"type:jsonb"`
	PointsEarned int            `json:"points_earned" gorm:"default:0"`
	// Calendar date the activity counts toward, stored as YYYY-MM-DD.
	ActivityDate string    `json:"date" gorm:"size:10;not null;index:idx_activities_user_date"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Activity) TableName() string {
	return "activities"
}
