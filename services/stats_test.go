package services

import (
	"testing"

	"bookbound/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsEmptyUser(t *testing.T) {
	svc, _ := newTestService(t, monday)
	user := newTestUser(t, svc.DB())

	stats, err := svc.Stats(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalPoints)
	assert.Equal(t, 1, stats.CurrentLevel)
	assert.Equal(t, 1000, stats.PointsToNextLevel)
	assert.Empty(t, stats.ActiveStreaks)
	assert.Equal(t, 0, stats.CompletedChallengesToday)
	assert.EqualValues(t, 0, stats.UnlockedRewardsCount)
}

func TestStatsLevelFormula(t *testing.T) {
	svc, _ := newTestService(t, monday)
	user := newTestUser(t, svc.DB())

	insertActivityPoints(t, svc, user.ID, 2500)

	stats, err := svc.Stats(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2500, stats.TotalPoints)
	assert.Equal(t, 3, stats.CurrentLevel)
	assert.Equal(t, 500, stats.PointsToNextLevel)
}

func TestStatsOnlyCountsTodaysPoints(t *testing.T) {
	svc, clock := newTestService(t, monday)
	user := newTestUser(t, svc.DB())

	insertActivityPoints(t, svc, user.ID, 300)
	clock.AdvanceDays(1)
	insertActivityPoints(t, svc, user.ID, 120)

	stats, err := svc.Stats(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 120, stats.TotalPoints)
}

func TestStatsComposesStreaksChallengesAndRewards(t *testing.T) {
	svc, _ := newTestService(t, monday)
	user := newTestUser(t, svc.DB())

	_, err := svc.EnsureTodayChallenges(user.ID)
	require.NoError(t, err)

	// Three spicy scenes completes Spice Hunter.
	for i := 0; i < 3; i++ {
		_, _, err := svc.RecordActivity(user.ID, models.ActivitySpicySceneMarked, nil)
		require.NoError(t, err)
	}
	_, err = svc.CheckAndUnlock(user.ID)
	require.NoError(t, err)

	stats, err := svc.Stats(user.ID)
	require.NoError(t, err)
	// Monday spicy multiplier is 1.25: floor(25*1.25) = 31 per scene.
	assert.Equal(t, 93, stats.TotalPoints)
	require.Len(t, stats.ActiveStreaks, 1)
	assert.Equal(t, models.StreakSpicyScenes, stats.ActiveStreaks[0].StreakType)
	assert.Equal(t, 1, stats.ActiveStreaks[0].CurrentStreak)
	assert.Equal(t, 1, stats.CompletedChallengesToday)
	assert.EqualValues(t, 1, stats.UnlockedRewardsCount)
}

// insertActivityPoints writes raw activity rows summing to the given
// point total, bypassing the calculator.
func insertActivityPoints(t *testing.T, svc *GamificationService, userID uint, points int) {
	t.Helper()
	activity := models.Activity{
		UserID:       userID,
		ActivityType: models.ActivityReadingSession,
		ActivityData: []byte(`{}`),
		PointsEarned: points,
		ActivityDate: svc.today(),
	}
	require.NoError(t, svc.DB().Create(&activity).Error)
}
