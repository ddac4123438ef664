package socket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Runs both pumps against a real connection and drops the peer. Both pumps
// defer close, so teardown must tolerate running twice and must leave the hub
// without the client.
func TestClientDisconnectShutsDownCleanly(t *testing.T) {
	hub := NewHub(testLogger(t))
	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	done := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		ctx, cancel := context.WithCancel(context.Background())
		client := NewClient(conn, hub, uuid.New(), cancel, testLogger(t))
		hub.Subscribe(client, []string{"user:lifecycle"})
		go client.ReadLoop(ctx)
		client.WriteLoop(ctx)
		close(done)
	}))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	_ = conn.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("pumps did not shut down after peer disconnect")
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		hub.mu.RLock()
		_, registered := hub.channels["user:lifecycle"]
		hub.mu.RUnlock()
		if !registered {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("client still subscribed after disconnect")
		}
		time.Sleep(10 * time.Millisecond)
	}

	// Broadcasting after teardown must be a no-op, never a send on a
	// closed channel.
	hub.BroadcastGlobal(context.Background(), Message{Channel: "user:lifecycle", Payload: "x"})
}
