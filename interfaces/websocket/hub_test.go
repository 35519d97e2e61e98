// interfaces/websocket/hub_test.go
package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinachat/chat-api/domain/chat"
)

func newTestClient(hub *Hub, userID uint, username string) *Client {
	return &Client{
		ID:       uuid.New(),
		UserID:   userID,
		Username: username,
		Send:     make(chan []byte, 16),
		done:     make(chan struct{}),
		Hub:      hub,
	}
}

// drain pops one queued payload, decoded into the outbound envelope.
func drain(t *testing.T, client *Client) WSResponse {
	t.Helper()
	select {
	case payload := <-client.Send:
		var resp WSResponse
		require.NoError(t, json.Unmarshal(payload, &resp))
		return resp
	default:
		t.Fatal("no payload queued")
		return WSResponse{}
	}
}

func TestRegisterClientJoinsPersonalRoom(t *testing.T) {
	hub := NewHub(nil)
	client := newTestClient(hub, 7, "alice")

	hub.registerClient(client)

	assert.True(t, hub.IsUserConnected(7))
	assert.Equal(t, 1, hub.RoomSize(chat.UserRoom(7)))

	ack := drain(t, client)
	assert.Equal(t, EventConnect, ack.Type)
}

func TestUnregisterClientIsIdempotent(t *testing.T) {
	hub := NewHub(nil)
	client := newTestClient(hub, 7, "alice")

	hub.registerClient(client)
	hub.JoinRoom(client.ID, "group_3")

	hub.unregisterClient(client)
	assert.False(t, hub.IsUserConnected(7))
	assert.Equal(t, 0, hub.RoomSize(chat.UserRoom(7)))
	assert.Equal(t, 0, hub.RoomSize("group_3"))

	// The second unregister must not close done twice.
	hub.unregisterClient(client)
	assert.False(t, hub.IsUserConnected(7))
}

func TestSendAfterUnregisterDoesNotPanic(t *testing.T) {
	hub := NewHub(nil)
	client := newTestClient(hub, 7, "alice")
	hub.registerClient(client)

	// The hub drops the client, as the slow-consumer path does.
	hub.unregisterClient(client)

	// A ping still in flight on the read goroutine lands after the drop.
	ping := &PingHandler{hub: hub}
	require.NotPanics(t, func() {
		require.NoError(t, ping.Handle(context.Background(), client, nil))
	})

	// Direct deliveries after the drop are equally harmless.
	require.NotPanics(t, func() {
		hub.sendToClient(client, WSResponse{Type: EventPong, Timestamp: time.Now()})
	})

	select {
	case <-client.done:
	default:
		t.Fatal("done not closed on unregister")
	}
}

func TestUnregisterKeepsOtherConnectionsOfSameUser(t *testing.T) {
	hub := NewHub(nil)
	first := newTestClient(hub, 7, "alice")
	second := newTestClient(hub, 7, "alice")

	hub.registerClient(first)
	hub.registerClient(second)
	assert.Equal(t, 2, hub.RoomSize(chat.UserRoom(7)))

	hub.unregisterClient(first)
	assert.True(t, hub.IsUserConnected(7))
	assert.Equal(t, 1, hub.RoomSize(chat.UserRoom(7)))

	hub.unregisterClient(second)
	assert.False(t, hub.IsUserConnected(7))
}

func TestJoinAndLeaveRoom(t *testing.T) {
	hub := NewHub(nil)
	client := newTestClient(hub, 7, "alice")
	hub.registerClient(client)

	hub.JoinRoom(client.ID, "private_1_2")
	assert.Equal(t, 1, hub.RoomSize("private_1_2"))

	// Joining twice is a no-op.
	hub.JoinRoom(client.ID, "private_1_2")
	assert.Equal(t, 1, hub.RoomSize("private_1_2"))

	hub.LeaveRoom(client.ID, "private_1_2")
	assert.Equal(t, 0, hub.RoomSize("private_1_2"))

	// Leaving a room never joined is a no-op.
	hub.LeaveRoom(client.ID, "group_99")
}

func TestBroadcastToRoomReachesSubscribersOnly(t *testing.T) {
	hub := NewHub(nil)
	member := newTestClient(hub, 1, "alice")
	other := newTestClient(hub, 2, "bob")
	hub.registerClient(member)
	hub.registerClient(other)
	drain(t, member)
	drain(t, other)

	hub.JoinRoom(member.ID, "group_5")
	hub.broadcastToRoom(&RoomEvent{
		Room:  "group_5",
		Event: EventNewMessage,
		Data:  map[string]string{"content": "hi"},
	})

	resp := drain(t, member)
	assert.Equal(t, EventNewMessage, resp.Type)
	assert.Empty(t, other.Send)
}

func TestBroadcastToUserTargetsPersonalRoom(t *testing.T) {
	hub := NewHub(nil)
	target := newTestClient(hub, 3, "carol")
	bystander := newTestClient(hub, 4, "dave")
	hub.registerClient(target)
	hub.registerClient(bystander)
	drain(t, target)
	drain(t, bystander)

	hub.broadcastToRoom(&RoomEvent{
		Room:  chat.UserRoom(3),
		Event: EventMessageNotification,
		Data:  map[string]string{"from_user": "alice"},
	})

	resp := drain(t, target)
	assert.Equal(t, EventMessageNotification, resp.Type)
	assert.Empty(t, bystander.Send)
}

func TestBroadcastToEmptyRoomIsNoOp(t *testing.T) {
	hub := NewHub(nil)
	hub.broadcastToRoom(&RoomEvent{Room: "group_404", Event: EventNewMessage, Data: nil})
}
