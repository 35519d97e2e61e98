// infrastructure/adapter/websocket_adapter.go
package adapter

import (
	"github.com/vinachat/chat-api/domain/port"
	"github.com/vinachat/chat-api/interfaces/websocket"
)

// WebSocketAdapter exposes the hub as the RoomBroadcaster port, keeping the
// application layer free of websocket imports.
type WebSocketAdapter struct {
	hub *websocket.Hub
}

func NewWebSocketAdapter(hub *websocket.Hub) port.RoomBroadcaster {
	return &WebSocketAdapter{hub: hub}
}

func (a *WebSocketAdapter) BroadcastToRoom(roomKey string, event string, data interface{}) {
	a.hub.BroadcastToRoom(roomKey, event, data)
}

func (a *WebSocketAdapter) BroadcastToUser(userID uint, event string, data interface{}) {
	a.hub.BroadcastToUser(userID, event, data)
}
