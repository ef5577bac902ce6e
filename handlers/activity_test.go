package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordActivityEndToEnd(t *testing.T) {
	app, _ := newTestApp(t, testMonday)
	token, _ := registerTestReader(t, app, "marathoner")

	status, payload := testRequest(t, app, http.MethodPost, "/api/activities", token, map[string]any{
		"activity_type": "reading_session",
		"activity_data": map[string]any{"minutes": 30},
	})
	require.Equal(t, 200, status)
	assert.Equal(t, true, payload["success"])

	// Monday reading multiplier is 1.25: floor(2*30*1.25) = 75.
	assert.EqualValues(t, 75, payload["points_earned"])
	assert.Equal(t, "morally_gray_monday", payload["theme"])

	streak := payload["streak"].(map[string]any)
	assert.EqualValues(t, 1, streak["current_streak"])
	assert.Equal(t, "daily_reading", streak["streak_type"])

	// First-day streak unlocks the starter badge inline.
	newRewards := payload["new_rewards"].([]any)
	require.Len(t, newRewards, 1)
}

func TestRecordActivityRequiresAuth(t *testing.T) {
	app, _ := newTestApp(t, testMonday)

	status, _ := testRequest(t, app, http.MethodPost, "/api/activities", "", map[string]any{
		"activity_type": "reading_session",
	})
	assert.Equal(t, 401, status)
}

func TestRecordActivityRejectsMissingType(t *testing.T) {
	app, _ := newTestApp(t, testMonday)
	token, _ := registerTestReader(t, app, "typeless")

	status, payload := testRequest(t, app, http.MethodPost, "/api/activities", token, map[string]any{
		"activity_data": map[string]any{"minutes": 30},
	})
	assert.Equal(t, 400, status)
	assert.Equal(t, "activity_type is required", payload["error"])
}

func TestGetActivityHistory(t *testing.T) {
	app, _ := newTestApp(t, testMonday)
	token, _ := registerTestReader(t, app, "historian")

	for i := 0; i < 3; i++ {
		status, _ := testRequest(t, app, http.MethodPost, "/api/activities", token, map[string]any{
			"activity_type": "spicy_scene_marked",
		})
		require.Equal(t, 200, status)
	}

	status, payload := testRequest(t, app, http.MethodGet, "/api/activities?limit=2", token, nil)
	require.Equal(t, 200, status)
	assert.EqualValues(t, 2, payload["count"])
	assert.Len(t, payload["activities"].([]any), 2)
}
