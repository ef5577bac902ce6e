// services/activity.go - Activity Recorder
package services

import (
	"encoding/json"
	"fmt"

	"bookbound/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RecordActivity persists one discrete user activity and applies its
// side effects: point award (themed multiplier included), challenge
// progress, and the streak transition for the mapped streak type.
// Everything runs in one transaction, so a failed recording awards
// nothing at all.
func (s *GamificationService) RecordActivity(userID uint, at models.ActivityType, data map[string]any) (*models.Activity, *models.Streak, error) {
	theme := s.TodayTheme()
	points := ComputePoints(at, data, theme)

	payload := datatypes.JSON("{}")
	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return nil, nil, fmt.Errorf("encode activity data: %w", err)
		}
		payload = datatypes.JSON(raw)
	}

	activity := models.Activity{
		UserID:       userID,
		ActivityType: at,
		ActivityData: payload,
		PointsEarned: points,
		ActivityDate: s.today(),
	}

	var streak *models.Streak
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&activity).Error; err != nil {
			return fmt.Errorf("insert activity: %w", err)
		}

		if err := s.advanceChallengeProgress(tx, userID, at, data); err != nil {
			return err
		}

		if streakType, ok := models.StreakTypeFor(at); ok {
			updated, err := s.updateStreakTx(tx, userID, streakType)
			if err != nil {
				return err
			}
			streak = updated
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &activity, streak, nil
}
