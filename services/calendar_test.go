package services

import (
	"testing"
	"time"

	"bookbound/models"

	"github.com/stretchr/testify/assert"
)

func TestThemeForDateCoversEveryWeekday(t *testing.T) {
	// Jan 4 2026 is a Sunday; walk one full week.
	start := time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)
	seen := map[string]bool{}
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		theme := ThemeForDate(day)
		assert.Equal(t, i, theme.DayOfWeek)
		assert.NotEmpty(t, theme.Slug)
		assert.GreaterOrEqual(t, theme.ReadingPoints, 1.0)
		assert.GreaterOrEqual(t, theme.SpicyScenePoints, 1.0)
		assert.GreaterOrEqual(t, theme.SharingPoints, 1.0)
		seen[theme.Slug] = true
	}
	assert.Len(t, seen, 7)
}

func TestThemeForDateFridayIsFeral(t *testing.T) {
	theme := ThemeForDate(friday)
	assert.Equal(t, models.FeralFridaySlug, theme.Slug)
	assert.Equal(t, 5, theme.DayOfWeek)
}

func TestTodayThemeUsesInjectedClock(t *testing.T) {
	svc, clock := newTestService(t, friday)
	assert.Equal(t, models.FeralFridaySlug, svc.TodayTheme().Slug)

	clock.AdvanceDays(1)
	assert.Equal(t, "smutty_saturday", svc.TodayTheme().Slug)
}
