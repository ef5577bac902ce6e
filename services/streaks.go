// services/streaks.go - Streak Tracker
package services

import (
	"errors"
	"fmt"

	"bookbound/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// streakUpdateRetries bounds the optimistic-update loop. Two attempts
// cover the realistic race (two recorders on the same day); the third
// is slack.
const streakUpdateRetries = 3

// GetStreak returns the streak row for one (user, streak_type), or nil
// if the user has never recorded that activity type.
func (s *GamificationService) GetStreak(userID uint, st models.StreakType) (*models.Streak, error) {
	var streak models.Streak
	err := s.db.Where("user_id = ? AND streak_type = ?", userID, st).First(&streak).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get streak: %w", err)
	}
	return &streak, nil
}

// UpdateStreak applies one day of activity to the (user, streak_type)
// counter and returns the resulting row.
func (s *GamificationService) UpdateStreak(userID uint, st models.StreakType) (*models.Streak, error) {
	return s.updateStreakTx(s.db, userID, st)
}

// updateStreakTx is the transition driven by the calendar-day gap
// between the last counted activity and today:
//
//	no row      -> create with current=longest=1
//	gap == 0    -> no-op (same-day activity never double-increments)
//	gap == 1    -> extend; longest ratchets up
//	gap  > 1    -> broken; reset current to 1, longest untouched
//	gap  < 0    -> backdated or clock skew; no-op
//
// Writes are guarded so two concurrent recorders cannot both apply an
// increment: creation is an insert-if-absent on (user_id, streak_type)
// and mutation is a conditional UPDATE on the previous activity date.
func (s *GamificationService) updateStreakTx(tx *gorm.DB, userID uint, st models.StreakType) (*models.Streak, error) {
	today := s.today()

	for attempt := 0; attempt < streakUpdateRetries; attempt++ {
		var streak models.Streak
		err := tx.Where("user_id = ? AND streak_type = ?", userID, st).First(&streak).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created := models.Streak{
				UserID:           userID,
				StreakType:       st,
				CurrentStreak:    1,
				LongestStreak:    1,
				LastActivityDate: today,
			}
			res := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "streak_type"}},
				DoNothing: true,
			}).Create(&created)
			if res.Error != nil {
				return nil, fmt.Errorf("create streak: %w", res.Error)
			}
			if res.RowsAffected == 1 {
				return &created, nil
			}
			// Lost the insert race; reload and run the update path.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load streak: %w", err)
		}

		gap, err := daysBetween(streak.LastActivityDate, today)
		if err != nil {
			return nil, err
		}

		var current, longest int
		switch {
		case gap == 0 || gap < 0:
			// Same day, or backdated activity: leave the row alone.
			return &streak, nil
		case gap == 1:
			current = streak.CurrentStreak + 1
			longest = streak.LongestStreak
			if current > longest {
				longest = current
			}
		default:
			current = 1
			longest = streak.LongestStreak
		}

		res := tx.Model(&models.Streak{}).
			Where("id = ? AND last_activity_date = ?", streak.ID, streak.LastActivityDate).
			Updates(map[string]any{
				"current_streak":     current,
				"longest_streak":     longest,
				"last_activity_date": today,
			})
		if res.Error != nil {
			return nil, fmt.Errorf("update streak: %w", res.Error)
		}
		if res.RowsAffected == 1 {
			streak.CurrentStreak = current
			streak.LongestStreak = longest
			streak.LastActivityDate = today
			return &streak, nil
		}
		// A concurrent recorder moved the row first; retry from a
		// fresh read, which normally resolves to the same-day no-op.
	}

	return nil, fmt.Errorf("streak update for user %d type %s did not settle", userID, st)
}
