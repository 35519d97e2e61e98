// interfaces/websocket/broadcast.go
package websocket

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/vinachat/chat-api/domain/chat"
)

// BroadcastToRoom queues an event for every connection subscribed to the
// room. Best effort: a full queue drops the event rather than blocking the
// caller.
func (h *Hub) BroadcastToRoom(roomKey string, event string, data interface{}) {
	select {
	case h.broadcast <- &RoomEvent{Room: roomKey, Event: event, Data: data}:
	default:
		log.Printf("WebSocket hub: broadcast queue full, dropping %s for room %s", event, roomKey)
	}
}

// BroadcastToUser targets the user's personal room.
func (h *Hub) BroadcastToUser(userID uint, event string, data interface{}) {
	h.BroadcastToRoom(chat.UserRoom(userID), event, data)
}

// broadcastToRoom delivers one queued event. Runs on the hub loop.
func (h *Hub) broadcastToRoom(event *RoomEvent) {
	payload, err := json.Marshal(WSResponse{
		Type:      event.Event,
		Data:      event.Data,
		Timestamp: time.Now(),
	})
	if err != nil {
		log.Printf("WebSocket hub: marshal %s event: %v", event.Event, err)
		return
	}

	h.roomsMux.RLock()
	connIDs := make([]uuid.UUID, 0, len(h.rooms[event.Room]))
	for connID := range h.rooms[event.Room] {
		connIDs = append(connIDs, connID)
	}
	h.roomsMux.RUnlock()

	for _, connID := range connIDs {
		h.clientsMux.RLock()
		client, ok := h.clients[connID]
		h.clientsMux.RUnlock()
		if !ok {
			// Disconnected between subscription lookup and delivery.
			continue
		}

		select {
		case client.Send <- payload:
		default:
			// Send queue full; the client is too slow to keep.
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

// sendToClient writes one response to a single connection, best effort.
func (h *Hub) sendToClient(client *Client, response WSResponse) {
	payload, err := json.Marshal(response)
	if err != nil {
		return
	}

	select {
	case client.Send <- payload:
	default:
		go func(c *Client) { h.unregister <- c }(client)
	}
}
