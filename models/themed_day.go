// models/themed_day.go - Themed Day Reference Data
package models

import (
	"time"
)

// ThemedDay is static reference data, one row per day of week (7 total).
// Multipliers scale points for matching activity types; they are always >= 1.0.
type ThemedDay struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Slug        string `json:"slug" gorm:"uniqueIndex;not null;size:50"`
	Name        string `json:"name" gorm:"not null;size:100"`
	DayOfWeek   int    `json:"day_of_week" gorm:"uniqueIndex;not null"` // 0=Sunday .. 6=Saturday
	ThemeColor  string `json:"theme_color" gorm:"size:20"`
	Icon        string `json:"icon" gorm:"size:50"`
	Description string `json:"description" gorm:"type:text"`

	// Special multipliers
	ReadingPoints    float64 `json:"reading_points" gorm:"default:1.0"`
	SpicyScenePoints float64 `json:"spicy_scene_points" gorm:"default:1.0"`
	SharingPoints    float64 `json:"sharing_points" gorm:"default:1.0"`

	// Exclusive content tags, e.g. voice lines and scripts only served today.
	ExclusiveVoiceLines []string `json:"exclusive_voice_lines,omitempty" gorm:"type:jsonb;serializer:json"`
	ExclusiveScripts    []string `json:"exclusive_scripts,omitempty" gorm:"type:jsonb;serializer:json"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Multiplier returns the point multiplier this theme applies to the
// given activity type. Types without a themed bonus multiply by 1.0.
func (t ThemedDay) Multiplier(at ActivityType) float64 {
	switch at {
	case ActivityReadingSession:
		return t.ReadingPoints
	case ActivitySpicySceneMarked:
		return t.SpicyScenePoints
	case ActivityContentShared:
		return t.SharingPoints
	default:
		return 1.0
	}
}

func (ThemedDay) TableName() string {
	return "themed_days"
}
