// handlers/leaderboard.go
package handlers

import (
	"bookbound/models"

	"github.com/gofiber/fiber/v2"
)

type leaderboardRow struct {
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Score       int    `json:"score"`
}

// GetLeaderboard ranks readers by today's points or by best streak.
// GET /api/leaderboard?category=points|streak&limit=25&offset=0
func GetLeaderboard(c *fiber.Ctx) error {
	category := c.Query("category", "points")
	limit := c.QueryInt("limit", 25)
	if limit < 1 || limit > 100 {
		limit = 25
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	db := gamification.DB()
	var rows []leaderboardRow

	switch category {
	case "streak":
		err := db.Model(&models.Streak{}).
			Select("streaks.user_id, users.username, users.display_name, MAX(streaks.longest_streak) AS score").
			Joins("JOIN users ON users.id = streaks.user_id").
			Where("users.is_guest = ?", false).
			Group("streaks.user_id, users.username, users.display_name").
			Order("score DESC").
			Limit(limit).
			Offset(offset).
			Scan(&rows).Error
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch leaderboard"})
		}
	default:
		category = "points"
		today := gamification.Today()
		err := db.Model(&models.Activity{}).
			Select("activities.user_id, users.username, users.display_name, COALESCE(SUM(activities.points_earned), 0) AS score").
			Joins("JOIN users ON users.id = activities.user_id").
			Where("users.is_guest = ? AND activities.activity_date = ?", false, today).
			Group("activities.user_id, users.username, users.display_name").
			Order("score DESC").
			Limit(limit).
			Offset(offset).
			Scan(&rows).Error
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch leaderboard"})
		}
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"category":    category,
		"leaderboard": rows,
		"count":       len(rows),
	})
}
