// services/challenges.go - Daily Challenge Generator and Evaluator
package services

import (
	"fmt"

	"bookbound/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// challengeTemplatesFor builds the deterministic challenge set for one
// themed day. Feral Friday gets longer targets, bigger point rewards,
// and an extra compound challenge.
func challengeTemplatesFor(theme models.ThemedDay) []models.DailyChallenge {
	feral := theme.Slug == models.FeralFridaySlug

	marathonMinutes := 45
	marathonPoints := "100"
	marathonDifficulty := models.DifficultyMedium
	if feral {
		marathonMinutes = 60
		marathonPoints = "150"
		marathonDifficulty = models.DifficultyHard
	}

	challenges := []models.DailyChallenge{
		{
			Slug:        "theme_reading_marathon",
			Title:       fmt.Sprintf("%s Reading Marathon", theme.Name),
			Description: fmt.Sprintf("Read for %d minutes while %s is on.", marathonMinutes, theme.Name),
			Difficulty:  marathonDifficulty,
			Requirements: []models.ChallengeRequirement{
				{Type: models.RequirementReadingMinutes, Target: marathonMinutes},
			},
			Rewards: []models.ChallengeReward{
				{Type: "points", Value: marathonPoints, Rarity: "common"},
				{Type: "voice_clip", Value: "marathon_" + theme.Slug, Rarity: "rare"},
			},
			ThemeSlug: theme.Slug,
			IsActive:  true,
		},
		{
			Slug:        "spice_hunter",
			Title:       "Spice Hunter",
			Description: "Mark 3 spicy scenes in whatever you're reading.",
			Difficulty:  models.DifficultyMedium,
			Requirements: []models.ChallengeRequirement{
				{Type: models.RequirementSpicyScenes, Target: 3},
			},
			Rewards: []models.ChallengeReward{
				{Type: "book_recommendation", Value: "spice_hunter_picks", Rarity: "rare"},
			},
			ThemeSlug: theme.Slug,
			IsActive:  true,
		},
	}

	if feral {
		challenges = append(challenges, models.DailyChallenge{
			Slug:        "go_completely_feral",
			Title:       "Go Completely Feral",
			Description: "90 minutes read, 5 scenes marked, 1 share. No survivors.",
			Difficulty:  models.DifficultyLegendary,
			Requirements: []models.ChallengeRequirement{
				{Type: models.RequirementReadingMinutes, Target: 90},
				{Type: models.RequirementSpicyScenes, Target: 5},
				{Type: models.RequirementContentShares, Target: 1},
			},
			Rewards: []models.ChallengeReward{
				{Type: "voice_clip", Value: "feral_legendary", Rarity: "legendary"},
				{Type: "badge", Value: "went_feral", Rarity: "epic"},
			},
			ThemeSlug: theme.Slug,
			IsActive:  true,
		})
	}

	return challenges
}

// EnsureTodayChallenges generates today's challenge set for a user if
// it does not exist yet and returns the full set. Generation is
// idempotent per (user, date): the unique (user_id, challenge_date,
// slug) index plus insert-if-absent means two concurrent requests at
// day rollover cannot duplicate a challenge.
func (s *GamificationService) EnsureTodayChallenges(userID uint) ([]models.DailyChallenge, error) {
	today := s.today()
	theme := s.TodayTheme()

	templates := challengeTemplatesFor(theme)
	for i := range templates {
		templates[i].UserID = userID
		templates[i].ChallengeDate = today
	}

	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "challenge_date"}, {Name: "slug"}},
		DoNothing: true,
	}).Create(&templates).Error; err != nil {
		return nil, fmt.Errorf("generate challenges: %w", err)
	}

	return s.TodayChallenges(userID)
}

// TodayChallenges returns today's challenge rows without generating.
func (s *GamificationService) TodayChallenges(userID uint) ([]models.DailyChallenge, error) {
	var challenges []models.DailyChallenge
	err := s.db.Where("user_id = ? AND challenge_date = ?", userID, s.today()).
		Order("id ASC").
		Find(&challenges).Error
	if err != nil {
		return nil, fmt.Errorf("load challenges: %w", err)
	}
	return challenges, nil
}

// ChallengeCompleted reports whether every requirement is individually
// met. This is stricter than the aggregate percent reaching 100: one
// unmet small-target requirement keeps the challenge incomplete no
// matter how far another requirement overshoots.
func ChallengeCompleted(ch models.DailyChallenge) bool {
	for _, req := range ch.Requirements {
		if req.Current < req.Target {
			return false
		}
	}
	return true
}

// ChallengeProgressPercent is the weighted aggregate
// sum(current)/sum(target), capped at 100. Requirements with larger
// targets dominate the number.
func ChallengeProgressPercent(ch models.DailyChallenge) float64 {
	var current, target int
	for _, req := range ch.Requirements {
		current += req.Current
		target += req.Target
	}
	if target == 0 {
		return 0
	}
	pct := float64(current) / float64(target) * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

// requirementTypeFor maps an activity to the challenge counter it
// advances, with the amount of progress one activity contributes.
func requirementProgressFor(at models.ActivityType, data map[string]any) (models.RequirementType, int) {
	switch at {
	case models.ActivityReadingSession:
		minutes := intFromPayload(data, "minutes")
		if minutes <= 0 {
			return "", 0
		}
		return models.RequirementReadingMinutes, minutes
	case models.ActivitySpicySceneMarked:
		return models.RequirementSpicyScenes, 1
	case models.ActivityContentShared:
		return models.RequirementContentShares, 1
	default:
		return "", 0
	}
}

// challengeUpdateRetries bounds the optimistic-update loop for
// requirement counters, same scheme as the streak tracker.
const challengeUpdateRetries = 3

// advanceChallengeProgress bumps matching requirement counters on
// today's active challenges. Counters only ever go up.
func (s *GamificationService) advanceChallengeProgress(tx *gorm.DB, userID uint, at models.ActivityType, data map[string]any) error {
	reqType, amount := requirementProgressFor(at, data)
	if amount == 0 {
		return nil
	}

	var ids []uint
	if err := tx.Model(&models.DailyChallenge{}).
		Where("user_id = ? AND challenge_date = ? AND is_active = ?", userID, s.today(), true).
		Pluck("id", &ids).Error; err != nil {
		return fmt.Errorf("load challenges for progress: %w", err)
	}

	for _, id := range ids {
		if err := advanceOneChallenge(tx, id, reqType, amount); err != nil {
			return err
		}
	}
	return nil
}

// advanceOneChallenge applies one counter bump. The requirements
// column is read-modify-write, so the write is conditioned on the
// row's updated_at: a concurrent recorder that commits first makes
// the condition miss and this bump retries from a fresh read instead
// of overwriting the other increment.
func advanceOneChallenge(tx *gorm.DB, id uint, reqType models.RequirementType, amount int) error {
	for attempt := 0; attempt < challengeUpdateRetries; attempt++ {
		var ch models.DailyChallenge
		if err := tx.First(&ch, id).Error; err != nil {
			return fmt.Errorf("load challenge %d: %w", id, err)
		}

		changed := false
		for i := range ch.Requirements {
			if ch.Requirements[i].Type == reqType {
				ch.Requirements[i].Current += amount
				changed = true
			}
		}
		if !changed {
			return nil
		}

		res := tx.Model(&models.DailyChallenge{}).
			Where("id = ? AND updated_at = ?", ch.ID, ch.UpdatedAt).
			Update("requirements", ch.Requirements)
		if res.Error != nil {
			return fmt.Errorf("advance challenge %s: %w", ch.Slug, res.Error)
		}
		if res.RowsAffected == 1 {
			return nil
		}
	}
	return fmt.Errorf("challenge %d progress update did not settle", id)
}
