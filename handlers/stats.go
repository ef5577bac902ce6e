// handlers/stats.go
package handlers

import (
	"bookbound/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetStats returns the composed streak/points/challenges/rewards
// dashboard read model.
func GetStats(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	stats, err := gamification.Stats(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to aggregate stats"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"stats":   stats,
		"theme":   gamification.TodayTheme(),
	})
}
