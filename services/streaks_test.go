package services

import (
	"testing"
	"time"

	"bookbound/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateStreakCreatesOnFirstActivity(t *testing.T) {
	svc, _ := newTestService(t, monday)
	user := newTestUser(t, svc.DB())

	streak, err := svc.UpdateStreak(user.ID, models.StreakDailyReading)
	require.NoError(t, err)
	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 1, streak.LongestStreak)
	assert.Equal(t, monday.Format(time.DateOnly), streak.LastActivityDate)
}

func TestUpdateStreakSameDayIsNoOp(t *testing.T) {
	svc, _ := newTestService(t, monday)
	user := newTestUser(t, svc.DB())

	_, err := svc.UpdateStreak(user.ID, models.StreakDailyReading)
	require.NoError(t, err)

	streak, err := svc.UpdateStreak(user.ID, models.StreakDailyReading)
	require.NoError(t, err)
	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 1, streak.LongestStreak)
}

func TestUpdateStreakConsecutiveDayExtends(t *testing.T) {
	svc, clock := newTestService(t, monday)
	user := newTestUser(t, svc.DB())

	_, err := svc.UpdateStreak(user.ID, models.StreakDailyReading)
	require.NoError(t, err)

	clock.AdvanceDays(1)
	streak, err := svc.UpdateStreak(user.ID, models.StreakDailyReading)
	require.NoError(t, err)
	assert.Equal(t, 2, streak.CurrentStreak)
	assert.Equal(t, 2, streak.LongestStreak)
}

func TestUpdateStreakGapResetsButKeepsLongest(t *testing.T) {
	svc, clock := newTestService(t, monday)
	user := newTestUser(t, svc.DB())

	for i := 0; i < 4; i++ {
		_, err := svc.UpdateStreak(user.ID, models.StreakDailyReading)
		require.NoError(t, err)
		clock.AdvanceDays(1)
	}

	// Clock already sits one day past the last update; two more
	// days makes a 3-day gap.
	clock.AdvanceDays(2)
	streak, err := svc.UpdateStreak(user.ID, models.StreakDailyReading)
	require.NoError(t, err)
	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, 4, streak.LongestStreak)
}

func TestUpdateStreakBackdatedClockIsNoOp(t *testing.T) {
	svc, clock := newTestService(t, monday)
	user := newTestUser(t, svc.DB())

	_, err := svc.UpdateStreak(user.ID, models.StreakDailyReading)
	require.NoError(t, err)

	clock.AdvanceDays(-2)
	streak, err := svc.UpdateStreak(user.ID, models.StreakDailyReading)
	require.NoError(t, err)
	assert.Equal(t, 1, streak.CurrentStreak)
	assert.Equal(t, monday.Format(time.DateOnly), streak.LastActivityDate)
}

func TestUpdateStreakTypesAreIndependent(t *testing.T) {
	svc, clock := newTestService(t, monday)
	user := newTestUser(t, svc.DB())

	_, err := svc.UpdateStreak(user.ID, models.StreakDailyReading)
	require.NoError(t, err)
	clock.AdvanceDays(1)
	_, err = svc.UpdateStreak(user.ID, models.StreakDailyReading)
	require.NoError(t, err)

	spicy, err := svc.UpdateStreak(user.ID, models.StreakSpicyScenes)
	require.NoError(t, err)
	assert.Equal(t, 1, spicy.CurrentStreak)

	reading, err := svc.GetStreak(user.ID, models.StreakDailyReading)
	require.NoError(t, err)
	require.NotNil(t, reading)
	assert.Equal(t, 2, reading.CurrentStreak)
}

func TestGetStreakReturnsNilWhenAbsent(t *testing.T) {
	svc, _ := newTestService(t, monday)
	user := newTestUser(t, svc.DB())

	streak, err := svc.GetStreak(user.ID, models.StreakBookClub)
	require.NoError(t, err)
	assert.Nil(t, streak)
}

func TestDaysBetween(t *testing.T) {
	got, err := daysBetween("2026-01-05", "2026-01-06")
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = daysBetween("2026-01-05", "2026-01-05")
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = daysBetween("2026-01-05", "2026-01-03")
	require.NoError(t, err)
	assert.Equal(t, -2, got)

	// Across a month boundary.
	got, err = daysBetween("2026-01-31", "2026-02-02")
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	_, err = daysBetween("garbage", "2026-01-05")
	assert.Error(t, err)
}
