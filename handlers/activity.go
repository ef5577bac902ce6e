// handlers/activity.go
package handlers

import (
	"bookbound/middleware"
	"bookbound/models"

	"github.com/gofiber/fiber/v2"
)

type RecordActivityRequest struct {
	ActivityType string         `json:"activity_type"`
	ActivityData map[string]any `json:"activity_data"`
}

// RecordActivity logs one user activity and returns the points earned,
// the streak after the update, and any rewards the activity just
// unlocked.
func RecordActivity(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req RecordActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.ActivityType == "" {
		return c.Status(400).JSON(fiber.Map{"error": "activity_type is required"})
	}

	activity, streak, err := gamification.RecordActivity(userID, models.ActivityType(req.ActivityType), req.ActivityData)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record activity"})
	}

	// Reward re-evaluation is best effort: a failure here must not
	// roll back or hide the recorded activity.
	newRewards, rewardErr := gamification.CheckAndUnlock(userID)
	if rewardErr != nil {
		newRewards = []models.UnlockedReward{}
	}

	go pushStats(userID)

	response := fiber.Map{
		"success":       true,
		"activity":      activity,
		"points_earned": activity.PointsEarned,
		"theme":         gamification.TodayTheme().Slug,
		"new_rewards":   newRewards,
	}
	if streak != nil {
		response["streak"] = streak
	}
	if rewardErr != nil {
		response["rewards_degraded"] = true
	}

	return c.JSON(response)
}

// GetActivityHistory returns the user's recent activity log.
func GetActivityHistory(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}

	var activities []models.Activity
	if err := gamification.DB().
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch activities"})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"activities": activities,
		"count":      len(activities),
	})
}
