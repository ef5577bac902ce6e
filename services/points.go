// services/points.go - Point Calculator
package services

import (
	"math"

	"bookbound/models"
)

// BasePoints returns the themed-multiplier-free points for one
// activity. Unrecognized types earn a flat 10 so new client activity
// types degrade instead of erroring.
func BasePoints(at models.ActivityType, data map[string]any) int {
	switch at {
	case models.ActivityReadingSession:
		minutes := intFromPayload(data, "minutes")
		if minutes <= 0 {
			return 0
		}
		return 2 * minutes
	case models.ActivitySpicySceneMarked:
		return 25
	case models.ActivityContentShared:
		return 15
	case models.ActivityBookCompleted:
		return 100
	case models.ActivityClubParticipation:
		return 30
	default:
		return 10
	}
}

// ComputePoints applies the themed day's multiplier to the base
// points. Truncation, not rounding: floor(base * multiplier) keeps
// parity with how clients display the award.
func ComputePoints(at models.ActivityType, data map[string]any, theme models.ThemedDay) int {
	base := BasePoints(at, data)
	return int(math.Floor(float64(base) * theme.Multiplier(at)))
}

// intFromPayload reads a numeric payload field. JSON decoding hands us
// float64s; direct callers may pass ints.
func intFromPayload(data map[string]any, key string) int {
	if data == nil {
		return 0
	}
	switch v := data[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	default:
		return 0
	}
}
