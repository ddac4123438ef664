package socket

import (
    "context"
    "testing"

    "github.com/google/uuid"

    "github.com/onlyfrogs/stylesync-backend/internal/logger"
)

func testLogger(t *testing.T) *logger.Logger {
    t.Helper()
    log, err := logger.New("development")
    if err != nil {
        t.Fatalf("failed to init test logger: %v", err)
    }
    return log
}

func newTestClient(t *testing.T, hub *Hub) *Client {
    t.Helper()
    return &Client{
        ID:       uuid.New(),
        Hub:      hub,
        Log:      testLogger(t),
        Outbound: make(chan Message, OutboundChanBuffer),
    }
}

func TestBroadcastReachesSubscribedChannelOnly(t *testing.T) {
    hub := NewHub(testLogger(t))
    subscribed := newTestClient(t, hub)
    other := newTestClient(t, hub)

    hub.Subscribe(subscribed, []string{"user:abc"})
    hub.Subscribe(other, []string{"user:def"})

    hub.BroadcastGlobal(context.Background(), Message{Channel: "user:abc", Payload: "hello"})

    select {
    case msg := <-subscribed.Outbound:
        if msg.Payload != "hello" {
            t.Fatalf("unexpected payload %v", msg.Payload)
        }
    default:
        t.Fatalf("expected message on subscribed client")
    }
    select {
    case msg := <-other.Outbound:
        t.Fatalf("client on another channel must not receive %v", msg)
    default:
    }
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
    hub := NewHub(testLogger(t))
    client := newTestClient(t, hub)
    hub.Subscribe(client, []string{"user:abc", "user:shared"})

    hub.UnsubscribeFromChannel(client, "user:abc")
    hub.BroadcastGlobal(context.Background(), Message{Channel: "user:abc", Payload: "x"})
    select {
    case <-client.Outbound:
        t.Fatalf("message delivered after channel unsubscribe")
    default:
    }

    hub.BroadcastGlobal(context.Background(), Message{Channel: "user:shared", Payload: "y"})
    select {
    case <-client.Outbound:
    default:
        t.Fatalf("remaining subscription must still deliver")
    }

    hub.Unsubscribe(client)
    hub.BroadcastGlobal(context.Background(), Message{Channel: "user:shared", Payload: "z"})
    select {
    case <-client.Outbound:
        t.Fatalf("message delivered after full unsubscribe")
    default:
    }
}

func TestBroadcastDropsWhenBufferFull(t *testing.T) {
    hub := NewHub(testLogger(t))
    client := &Client{
        ID:       uuid.New(),
        Hub:      hub,
        Log:      testLogger(t),
        Outbound: make(chan Message, 1),
    }
    hub.Subscribe(client, []string{"user:abc"})

    hub.BroadcastGlobal(context.Background(), Message{Channel: "user:abc", Payload: 1})
    // Buffer is full now; the next broadcast must not block.
    hub.BroadcastGlobal(context.Background(), Message{Channel: "user:abc", Payload: 2})

    if got := <-client.Outbound; got.Payload != 1 {
        t.Fatalf("expected first message kept, got %v", got.Payload)
    }
    select {
    case msg := <-client.Outbound:
        t.Fatalf("second message should have been dropped, got %v", msg)
    default:
    }
}
