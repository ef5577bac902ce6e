// handlers/themes.go
package handlers

import (
	"bookbound/models"

	"github.com/gofiber/fiber/v2"
)

// GetTodayTheme returns the themed day active right now.
func GetTodayTheme(c *fiber.Ctx) error {
	theme := gamification.TodayTheme()
	return c.JSON(fiber.Map{
		"success": true,
		"theme":   theme,
	})
}

// GetThemedDays returns the full week of themed-day reference data,
// read from the seeded table so rows carry their database ids.
func GetThemedDays(c *fiber.Ctx) error {
	db := gamification.DB()

	var days []models.ThemedDay
	if err := db.Order("day_of_week ASC").Find(&days).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch themed days"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"days":    days,
		"total":   len(days),
	})
}
