package handlers

import (
	"sync"
	"testing"

	"bookbound/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// All socket writes are funneled through each client's buffered send
// channel; pushStats itself never touches the connection, so rapid
// recordings cannot produce concurrent writers on one socket.
func TestPushStatsQueuesForEveryClient(t *testing.T) {
	_, svc := newTestApp(t, testMonday)

	user := models.User{Username: "two_tabs", Password: "hashed"}
	require.NoError(t, svc.DB().Create(&user).Error)
	userID := user.ID
	_, _, err := svc.RecordActivity(userID, models.ActivityReadingSession, map[string]any{"minutes": 10})
	require.NoError(t, err)

	tabA := &statsClient{send: make(chan any, statsSendBuffer)}
	tabB := &statsClient{send: make(chan any, statsSendBuffer)}
	hub.add(userID, tabA)
	hub.add(userID, tabB)
	defer hub.remove(userID, tabA)
	defer hub.remove(userID, tabB)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pushStats(userID)
		}()
	}
	wg.Wait()

	require.Len(t, tabA.send, 5)
	require.Len(t, tabB.send, 5)

	snapshot := (<-tabA.send).(map[string]any)
	assert.Equal(t, "stats", snapshot["type"])
	assert.NotNil(t, snapshot["stats"])
}

func TestEnqueueNeverBlocksOrPanics(t *testing.T) {
	client := &statsClient{send: make(chan any, 1)}

	client.enqueue("first")
	client.enqueue("dropped")
	assert.Len(t, client.send, 1)

	client.closeSend()
	client.enqueue("after close")
	client.closeSend()

	got, ok := <-client.send
	assert.True(t, ok)
	assert.Equal(t, "first", got)
	_, ok = <-client.send
	assert.False(t, ok)
}
