// handlers/ws.go - Live Stats Push Channel
package handlers

import (
	"log"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

const statsSendBuffer = 8

// statsClient is one open stats socket. All writes go through the
// buffered send channel and a single writePump goroutine; the
// underlying connection allows only one concurrent writer.
type statsClient struct {
	conn *websocket.Conn
	send chan any

	mu     sync.Mutex
	closed bool
}

// writePump drains the send channel onto the connection. It is the
// only goroutine allowed to write.
func (c *statsClient) writePump() {
	defer c.conn.Close()
	for payload := range c.send {
		if err := c.conn.WriteJSON(payload); err != nil {
			return
		}
	}
}

// enqueue queues a payload without blocking. A full buffer means the
// client is not keeping up; stale snapshots are droppable. Enqueues
// after teardown are dropped too, since a push racing a disconnect can
// still hold a reference to the client.
func (c *statsClient) enqueue(payload any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- payload:
	default:
		log.Printf("stats send buffer full, dropping snapshot")
	}
}

// closeSend shuts down the write pump. Safe against in-flight enqueues.
func (c *statsClient) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

// statsHub tracks open stats sockets per user so activity recording
// can push fresh dashboard snapshots to every tab the user has open.
type statsHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*statsClient]bool
}

var hub = &statsHub{clients: make(map[uint]map[*statsClient]bool)}

func (h *statsHub) add(userID uint, client *statsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*statsClient]bool)
	}
	h.clients[userID][client] = true
}

func (h *statsHub) remove(userID uint, client *statsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients[userID], client)
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
	}
}

func (h *statsHub) clientsFor(userID uint) []*statsClient {
	h.mu.RLock()
	defer h.mu.RUnlock()
	clients := make([]*statsClient, 0, len(h.clients[userID]))
	for client := range h.clients[userID] {
		clients = append(clients, client)
	}
	return clients
}

// pushStats queues a fresh StreakStats snapshot for every open socket
// the user has. Best effort; slow clients drop snapshots.
func pushStats(userID uint) {
	clients := hub.clientsFor(userID)
	if len(clients) == 0 {
		return
	}

	stats, err := gamification.Stats(userID)
	if err != nil {
		log.Printf("stats push for user %d skipped: %v", userID, err)
		return
	}

	payload := map[string]any{
		"type":  "stats",
		"stats": stats,
	}
	for _, client := range clients {
		client.enqueue(payload)
	}
}

// StatsSocket upgrades to a WebSocket that receives StreakStats
// snapshots: one immediately on connect, then one after every
// recorded activity. Requires WebSocketAuthMiddleware upstream.
func StatsSocket() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, ok := socketUserID(conn)
		if !ok {
			conn.WriteJSON(map[string]any{"type": "error", "error": "unauthenticated"})
			conn.Close()
			return
		}

		client := &statsClient{
			conn: conn,
			send: make(chan any, statsSendBuffer),
		}
		hub.add(userID, client)
		defer func() {
			hub.remove(userID, client)
			client.closeSend()
		}()

		go client.writePump()

		pushStats(userID)

		// Drain the connection; clients only listen, so the first
		// read error means the socket is gone.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}

func socketUserID(conn *websocket.Conn) (uint, bool) {
	switch id := conn.Locals("userId").(type) {
	case float64:
		return uint(id), true
	case uint:
		return id, true
	default:
		return 0, false
	}
}
