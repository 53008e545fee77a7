// Package notify fans room-change events out to WebSocket subscribers.
// Events are advisory pings: subscribers re-fetch their sanitized view
// over HTTP, so a dropped or late event only delays a refresh.
package notify

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fqlipe/football-imposter/internal/game/engine"
)

const (
	writeWait = 5 * time.Second
	// Inbound frames are ignored, the read pump only services control
	// frames and connection teardown.
	pongWait = 60 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub tracks subscribers per room code.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*websocket.Conn]bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*websocket.Conn]bool)}
}

// Subscribe upgrades the request and registers the connection under the
// room code. It blocks until the peer disconnects.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request, roomCode string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("❌ websocket upgrade failed for room %s: %v", roomCode, err)
		return
	}

	h.add(roomCode, conn)
	defer h.remove(roomCode, conn)

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))

	// Drain inbound frames; subscribers only listen.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	}
}

// Publish sends the event to every subscriber of the room. Broken
// connections are dropped; failures never propagate to the caller.
func (h *Hub) Publish(roomCode string, ev engine.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Printf("❌ marshal event for room %s: %v", roomCode, err)
		return
	}

	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.rooms[roomCode]))
	for c := range h.rooms[roomCode] {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, c := range conns {
		_ = c.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			h.remove(roomCode, c)
			_ = c.Close()
		}
	}
}

// Subscribers returns the current subscriber count for a room.
func (h *Hub) Subscribers(roomCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomCode])
}

func (h *Hub) add(roomCode string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[roomCode] == nil {
		h.rooms[roomCode] = make(map[*websocket.Conn]bool)
	}
	h.rooms[roomCode][conn] = true
}

func (h *Hub) remove(roomCode string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.rooms[roomCode]
	if !ok {
		return
	}
	delete(subs, conn)
	if len(subs) == 0 {
		delete(h.rooms, roomCode)
	}
}
