// services/rewards.go - Reward Unlocker
package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"bookbound/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CheckAndUnlock evaluates the reward catalog against the user's
// current streak and point state and creates UnlockedReward rows for
// definitions that just became eligible. Only rewards unlocked by THIS
// call are returned; the unique (user_id, definition_id) index plus
// insert-if-absent makes repeated calls (and concurrent tabs) safe.
func (s *GamificationService) CheckAndUnlock(userID uint) ([]models.UnlockedReward, error) {
	stats, err := s.Stats(userID)
	if err != nil {
		return nil, err
	}
	return s.checkAndUnlockWithStats(userID, stats)
}

func (s *GamificationService) checkAndUnlockWithStats(userID uint, stats *StreakStats) ([]models.UnlockedReward, error) {
	maxStreak := 0
	for _, streak := range stats.ActiveStreaks {
		if streak.CurrentStreak > maxStreak {
			maxStreak = streak.CurrentStreak
		}
	}
	todaySlug := s.TodayTheme().Slug

	var catalog []models.SpicySurprise
	if err := s.db.Find(&catalog).Error; err != nil {
		return nil, fmt.Errorf("load reward catalog: %w", err)
	}

	newlyUnlocked := []models.UnlockedReward{}
	for _, def := range catalog {
		if maxStreak < def.StreakDays {
			continue
		}
		if stats.TotalPoints < def.ActivityPoints {
			continue
		}
		if def.ThemedDay != nil && *def.ThemedDay != todaySlug {
			continue
		}

		payload, err := rewardPayload(def)
		if err != nil {
			return newlyUnlocked, err
		}

		unlock := models.UnlockedReward{
			UserID:       userID,
			DefinitionID: def.ID,
			RewardType:   def.ContentType,
			RewardData:   payload,
			UnlockedAt:   s.now(),
		}
		res := s.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "definition_id"}},
			DoNothing: true,
		}).Create(&unlock)
		if res.Error != nil {
			return newlyUnlocked, fmt.Errorf("unlock reward %s: %w", def.Slug, res.Error)
		}
		if res.RowsAffected == 1 {
			newlyUnlocked = append(newlyUnlocked, unlock)
		}
	}

	return newlyUnlocked, nil
}

// rewardPayload copies the definition's content, tagged with its
// source definition so clients can dedup and render it.
func rewardPayload(def models.SpicySurprise) (datatypes.JSON, error) {
	raw, err := json.Marshal(map[string]any{
		"definition_id": def.ID,
		"slug":          def.Slug,
		"rarity":        def.Rarity,
		"is_nsfw":       def.IsNSFW,
		"content":       json.RawMessage(def.ContentData),
	})
	if err != nil {
		return nil, fmt.Errorf("encode reward payload for %s: %w", def.Slug, err)
	}
	return datatypes.JSON(raw), nil
}

// UnlockedRewards lists everything the user has unlocked, newest first.
func (s *GamificationService) UnlockedRewards(userID uint) ([]models.UnlockedReward, error) {
	var rewards []models.UnlockedReward
	err := s.db.Where("user_id = ?", userID).
		Order("unlocked_at DESC").
		Find(&rewards).Error
	if err != nil {
		return nil, fmt.Errorf("load unlocked rewards: %w", err)
	}
	return rewards, nil
}

// ClaimReward flips is_claimed false -> true. Claiming an already
// claimed reward is rejected; there is no other state transition.
func (s *GamificationService) ClaimReward(userID, rewardID uint) (*models.UnlockedReward, error) {
	var reward models.UnlockedReward
	err := s.db.Where("id = ? AND user_id = ?", rewardID, userID).First(&reward).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRewardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load reward: %w", err)
	}
	if reward.IsClaimed {
		return nil, ErrRewardAlreadyClaimed
	}

	claimedAt := s.now()
	if err := s.db.Model(&reward).Updates(map[string]any{
		"is_claimed": true,
		"claimed_at": claimedAt,
	}).Error; err != nil {
		return nil, fmt.Errorf("claim reward: %w", err)
	}
	reward.IsClaimed = true
	reward.ClaimedAt = &claimedAt
	return &reward, nil
}
