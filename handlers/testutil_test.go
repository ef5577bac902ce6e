package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookbound/database"
	"bookbound/middleware"
	"bookbound/models"
	"bookbound/services"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Monday Jan 5 2026: an ordinary themed day (reading 1.25x).
var testMonday = time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)

// newTestApp wires the full route tree against an in-memory store and
// a fixed clock, mirroring main.go minus rate limiting.
func newTestApp(t *testing.T, start time.Time) (*fiber.App, *services.GamificationService) {
	t.Helper()
	t.Setenv("JWT_SECRET", "handlers-test-secret-0123456789abcdef")

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

	svc := services.NewGamificationServiceWithClock(db, func() time.Time { return start })
	InitGamification(svc)

	app := fiber.New()
	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/guest", GuestLogin)
	authGroup.Post("/login", Login)
	authGroup.Post("/register", Register)

	api.Get("/themes", GetThemedDays)
	api.Get("/themes/today", GetTodayTheme)
	api.Get("/leaderboard", GetLeaderboard)

	activityGroup := api.Group("/activities", middleware.AuthMiddleware)
	activityGroup.Post("/", RecordActivity)
	activityGroup.Get("/", GetActivityHistory)

	challengeGroup := api.Group("/challenges", middleware.AuthMiddleware)
	challengeGroup.Get("/today", GetTodayChallenges)

	rewardGroup := api.Group("/rewards", middleware.AuthMiddleware)
	rewardGroup.Get("/", GetUnlockedRewards)
	rewardGroup.Post("/check", CheckRewards)
	rewardGroup.Post("/:id/claim", ClaimReward)

	statsGroup := api.Group("/stats", middleware.AuthMiddleware)
	statsGroup.Get("/", GetStats)

	return app, svc
}

// testRequest fires one JSON request through the app and decodes the
// JSON response body.
func testRequest(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	return resp.StatusCode, payload
}

// registerTestReader registers a non-guest account and returns its
// token and id.
func registerTestReader(t *testing.T, app *fiber.App, username string) (string, uint) {
	t.Helper()
	status, payload := testRequest(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": username,
		"email":    username + "@example.com",
		"password": "readmore",
	})
	require.Equal(t, 200, status)
	token, _ := payload["token"].(string)
	require.NotEmpty(t, token)
	user, ok := payload["user"].(map[string]any)
	require.True(t, ok)
	return token, uint(user["id"].(float64))
}
