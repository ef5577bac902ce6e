// handlers/challenges.go
package handlers

import (
	"bookbound/middleware"
	"bookbound/services"

	"github.com/gofiber/fiber/v2"
)

// GetTodayChallenges generates today's challenge set on first access
// and returns it with progress and completion state.
func GetTodayChallenges(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	challenges, err := gamification.EnsureTodayChallenges(userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load challenges"})
	}

	theme := gamification.TodayTheme()

	challengeData := make([]fiber.Map, 0, len(challenges))
	completedCount := 0
	for _, ch := range challenges {
		completed := services.ChallengeCompleted(ch)
		if completed {
			completedCount++
		}
		challengeData = append(challengeData, fiber.Map{
			"id":               ch.ID,
			"slug":             ch.Slug,
			"title":            ch.Title,
			"description":      ch.Description,
			"difficulty":       ch.Difficulty,
			"requirements":     ch.Requirements,
			"rewards":          ch.Rewards,
			"is_active":        ch.IsActive,
			"progress_percent": services.ChallengeProgressPercent(ch),
			"completed":        completed,
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"theme":      theme.Slug,
		"theme_name": theme.Name,
		"challenges": challengeData,
		"completed":  completedCount,
		"total":      len(challenges),
	})
}
