// handlers/rewards.go
package handlers

import (
	"errors"

	"bookbound/middleware"
	"bookbound/services"

	"github.com/gofiber/fiber/v2"
)

// GetUnlockedRewards lists everything the user has unlocked so far.
func GetUnlockedRewards(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	rewards, err := gamification.UnlockedRewards(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch rewards"})
	}

	claimed := 0
	for _, r := range rewards {
		if r.IsClaimed {
			claimed++
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"rewards": rewards,
		"total":   len(rewards),
		"claimed": claimed,
	})
}

// CheckRewards re-evaluates the catalog and returns only rewards
// newly unlocked by this call. Safe to spam: repeated calls with
// unchanged stats return an empty list.
func CheckRewards(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	newRewards, err := gamification.CheckAndUnlock(userID)
	if err != nil {
		// Best-effort view: report the degradation without failing
		// the whole request.
		return c.JSON(fiber.Map{
			"success":     false,
			"new_rewards": []any{},
			"error":       "Reward check temporarily unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"new_rewards": newRewards,
		"count":       len(newRewards),
	})
}

// ClaimReward marks one unlocked reward as claimed.
func ClaimReward(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	rewardID, err := c.ParamsInt("id")
	if err != nil || rewardID < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid reward id"})
	}

	reward, err := gamification.ClaimReward(userID, uint(rewardID))
	switch {
	case errors.Is(err, services.ErrRewardNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Reward not found"})
	case errors.Is(err, services.ErrRewardAlreadyClaimed):
		return c.Status(409).JSON(fiber.Map{"error": "Reward already claimed"})
	case err != nil:
		return c.Status(500).JSON(fiber.Map{"error": "Failed to claim reward"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"reward":  reward,
	})
}
