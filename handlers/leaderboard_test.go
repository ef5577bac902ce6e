package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardRanksByTodaysPointsAndSkipsGuests(t *testing.T) {
	app, _ := newTestApp(t, testMonday)

	highToken, _ := registerTestReader(t, app, "top_reader")
	lowToken, _ := registerTestReader(t, app, "casual_reader")

	status, guestPayload := testRequest(t, app, http.MethodPost, "/api/auth/guest", "", nil)
	require.Equal(t, 200, status)
	guestToken := guestPayload["token"].(string)

	record := func(token string, minutes int) {
		status, _ := testRequest(t, app, http.MethodPost, "/api/activities", token, map[string]any{
			"activity_type": "reading_session",
			"activity_data": map[string]any{"minutes": minutes},
		})
		require.Equal(t, 200, status)
	}
	record(highToken, 60)
	record(lowToken, 10)
	record(guestToken, 120)

	status, payload := testRequest(t, app, http.MethodGet, "/api/leaderboard?category=points", "", nil)
	require.Equal(t, 200, status)
	assert.Equal(t, "points", payload["category"])

	rows := payload["leaderboard"].([]any)
	require.Len(t, rows, 2)
	first := rows[0].(map[string]any)
	second := rows[1].(map[string]any)
	assert.Equal(t, "top_reader", first["username"])
	assert.EqualValues(t, 150, first["score"]) // floor(2*60*1.25)
	assert.Equal(t, "casual_reader", second["username"])
}

func TestLeaderboardStreakCategory(t *testing.T) {
	app, _ := newTestApp(t, testMonday)
	token, _ := registerTestReader(t, app, "streaker")

	status, _ := testRequest(t, app, http.MethodPost, "/api/activities", token, map[string]any{
		"activity_type": "reading_session",
		"activity_data": map[string]any{"minutes": 10},
	})
	require.Equal(t, 200, status)

	status, payload := testRequest(t, app, http.MethodGet, "/api/leaderboard?category=streak", "", nil)
	require.Equal(t, 200, status)
	assert.Equal(t, "streak", payload["category"])

	rows := payload["leaderboard"].([]any)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 1, rows[0].(map[string]any)["score"])
}
