package services

import (
	"fmt"
	"testing"
	"time"

	"bookbound/database"
	"bookbound/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testClock is a settable clock for driving calendar-day transitions.
type testClock struct {
	current time.Time
}

func (c *testClock) Now() time.Time {
	return c.current
}

func (c *testClock) AdvanceDays(n int) {
	c.current = c.current.AddDate(0, 0, n)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Streak{},
		&models.Activity{},
		&models.ThemedDay{},
		&models.DailyChallenge{},
		&models.SpicySurprise{},
		&models.UnlockedReward{},
	))
	require.NoError(t, database.SeedReferenceData(db))
	return db
}

// newTestService returns a service pinned to the given start date and
// the clock that moves it.
func newTestService(t *testing.T, start time.Time) (*GamificationService, *testClock) {
	t.Helper()
	clock := &testClock{current: start}
	svc := NewGamificationServiceWithClock(newTestDB(t), clock.Now)
	return svc, clock
}

func newTestUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{
		Username:    fmt.Sprintf("reader_%s", t.Name()),
		Password:    "hashed",
		DisplayName: "Test Reader",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// Monday Jan 5 2026: an ordinary themed day.
var monday = time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

// Friday Jan 2 2026: Feral Friday.
var friday = time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
