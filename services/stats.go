// services/stats.go - Stats Aggregator
package services

import (
	"fmt"

	"bookbound/models"
)

const pointsPerLevel = 1000

// StreakStats is the derived dashboard read model. It is composed on
// demand and never persisted.
type StreakStats struct {
	TotalPoints              int             `json:"total_points"`
	CurrentLevel             int             `json:"current_level"`
	PointsToNextLevel        int             `json:"points_to_next_level"`
	ActiveStreaks            []models.Streak `json:"active_streaks"`
	CompletedChallengesToday int             `json:"completed_challenges_today"`
	UnlockedRewardsCount     int64           `json:"unlocked_rewards_count"`
}

// Stats composes today's points, the level formula, all streak rows,
// today's completed challenge count, and the unlocked reward total.
func (s *GamificationService) Stats(userID uint) (*StreakStats, error) {
	today := s.today()

	var totalPoints int
	err := s.db.Model(&models.Activity{}).
		Where("user_id = ? AND activity_date = ?", userID, today).
		Select("COALESCE(SUM(points_earned), 0)").
		Scan(&totalPoints).Error
	if err != nil {
		return nil, fmt.Errorf("sum points: %w", err)
	}

	level := totalPoints/pointsPerLevel + 1
	toNext := level*pointsPerLevel - totalPoints

	var streaks []models.Streak
	if err := s.db.Where("user_id = ?", userID).
		Order("streak_type ASC").
		Find(&streaks).Error; err != nil {
		return nil, fmt.Errorf("load streaks: %w", err)
	}

	challenges, err := s.TodayChallenges(userID)
	if err != nil {
		return nil, err
	}
	completed := 0
	for _, ch := range challenges {
		if ChallengeCompleted(ch) {
			completed++
		}
	}

	var rewardCount int64
	if err := s.db.Model(&models.UnlockedReward{}).
		Where("user_id = ?", userID).
		Count(&rewardCount).Error; err != nil {
		return nil, fmt.Errorf("count rewards: %w", err)
	}

	return &StreakStats{
		TotalPoints:              totalPoints,
		CurrentLevel:             level,
		PointsToNextLevel:        toNext,
		ActiveStreaks:            streaks,
		CompletedChallengesToday: completed,
		UnlockedRewardsCount:     rewardCount,
	}, nil
}
