package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fqlipe/football-imposter/internal/game/engine"
	"github.com/fqlipe/football-imposter/internal/game/room"
)

func newTestHub(t *testing.T) (*Hub, string) {
	t.Helper()
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := strings.TrimPrefix(r.URL.Path, "/ws/")
		hub.Subscribe(w, r, code)
	}))
	t.Cleanup(srv.Close)
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, wsURL, code string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"/ws/"+code, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitForSubscribers(t *testing.T, hub *Hub, code string, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.Subscribers(code) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("room %s never reached %d subscribers", code, want)
}

func TestHub_PublishReachesRoomSubscribers(t *testing.T) {
	hub, wsURL := newTestHub(t)

	conn := dial(t, wsURL, "ABC234")
	waitForSubscribers(t, hub, "ABC234", 1)

	ev := engine.Event{Event: "game-started", Phase: room.PhaseRevealing, UpdatedAt: 42}
	hub.Publish("ABC234", ev)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var got engine.Event
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, ev, got)
}

func TestHub_PublishIsScopedToRoom(t *testing.T) {
	hub, wsURL := newTestHub(t)

	other := dial(t, wsURL, "ZZZ777")
	waitForSubscribers(t, hub, "ZZZ777", 1)

	hub.Publish("ABC234", engine.Event{Event: "player-joined", Phase: room.PhaseWaiting})

	require.NoError(t, other.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err := other.ReadMessage()
	assert.Error(t, err, "subscriber of another room must not receive the event")
}

func TestHub_DisconnectedSubscriberIsDropped(t *testing.T) {
	hub, wsURL := newTestHub(t)

	conn := dial(t, wsURL, "ABC234")
	waitForSubscribers(t, hub, "ABC234", 1)

	require.NoError(t, conn.Close())
	waitForSubscribers(t, hub, "ABC234", 0)

	// Publishing into an empty room is a no-op, not a panic.
	hub.Publish("ABC234", engine.Event{Event: "room-updated", Phase: room.PhaseWaiting})
}

func TestHub_MultipleSubscribers(t *testing.T) {
	hub, wsURL := newTestHub(t)

	a := dial(t, wsURL, "ABC234")
	b := dial(t, wsURL, "ABC234")
	waitForSubscribers(t, hub, "ABC234", 2)

	hub.Publish("ABC234", engine.Event{Event: "player-revealed", Phase: room.PhaseRevealing})

	for _, conn := range []*websocket.Conn{a, b} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Contains(t, string(data), "player-revealed")
	}
}
