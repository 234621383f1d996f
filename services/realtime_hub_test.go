package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// dialHub connects a real websocket pair and registers the server end on the
// hub, returning the registered client and the caller-side connection.
func dialHub(t *testing.T, h *RealtimeHub, userID uint) (*WSClient, *websocket.Conn) {
	t.Helper()

	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	registered := make(chan *WSClient, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := &WSClient{UserID: userID, Conn: conn}
		h.Register(client)
		registered <- client
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	select {
	case client := <-registered:
		return client, conn
	case <-time.After(2 * time.Second):
		t.Fatal("hub never registered the connection")
		return nil, nil
	}
}

func readEvent(t *testing.T, conn *websocket.Conn) RealtimeEvent {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	var ev RealtimeEvent
	require.NoError(t, json.Unmarshal(msg, &ev))
	return ev
}

func hasUser(h *RealtimeHub, userID uint) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[userID]
	return ok
}

func TestHubFansOutToEveryUserSocket(t *testing.T) {
	h := NewRealtimeHub()
	_, tabA := dialHub(t, h, 7)
	_, tabB := dialHub(t, h, 7)
	_, other := dialHub(t, h, 8)

	h.Send(7, RealtimeEvent{Kind: "coach.reply", Payload: map[string]string{"reply": "hydrate"}})

	for _, conn := range []*websocket.Conn{tabA, tabB} {
		ev := readEvent(t, conn)
		require.Equal(t, "coach.reply", ev.Kind)
	}

	// the other user's socket must stay silent
	require.NoError(t, other.SetReadDeadline(time.Now().Add(150*time.Millisecond)))
	_, _, err := other.ReadMessage()
	require.Error(t, err)
}

func TestHubUnregisterDropsEmptySets(t *testing.T) {
	h := NewRealtimeHub()
	clientA, _ := dialHub(t, h, 7)
	clientB, _ := dialHub(t, h, 7)

	h.Unregister(clientA)
	require.True(t, hasUser(h, 7), "one socket left, the set survives")

	h.Unregister(clientB)
	require.False(t, hasUser(h, 7), "last socket gone, the set is removed")

	// sending to a fully unregistered user is a no-op
	h.Send(7, RealtimeEvent{Kind: "coach.reply"})
}

func TestHubUnregisterClosesConnection(t *testing.T) {
	h := NewRealtimeHub()
	client, conn := dialHub(t, h, 7)

	h.Unregister(client)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err, "peer close must surface on the caller side")
}

func TestHubSendToUnknownUser(t *testing.T) {
	h := NewRealtimeHub()
	h.Send(99, RealtimeEvent{Kind: "alert.created"})
}
