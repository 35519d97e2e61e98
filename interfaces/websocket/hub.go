// interfaces/websocket/hub.go
package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vinachat/chat-api/domain/chat"
	"github.com/vinachat/chat-api/domain/repository"
	"github.com/vinachat/chat-api/domain/service"
)

// Event types on the wire.
const (
	// Inbound
	EventJoinChat    = "join_chat"
	EventLeaveChat   = "leave_chat"
	EventSendMessage = "send_message"
	EventPing        = "ping"

	// Outbound
	EventConnect             = "connect"
	EventNewMessage          = "new_message"
	EventMessageNotification = "message_notification"
	EventPong                = "pong"
)

// WSMessage is the inbound envelope.
type WSMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// WSResponse is the outbound envelope.
type WSResponse struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// RoomEvent is one queued broadcast to a room.
type RoomEvent struct {
	Room  string
	Event string
	Data  interface{}
}

// EventHandler handles one inbound event type.
type EventHandler interface {
	Handle(ctx context.Context, client *Client, data json.RawMessage) error
}

// Hub is the connection registry: it maps live connections to users and room
// subscriptions, and delivers broadcasts. It never authorizes room joins
// itself; the event handlers do that against the membership store before
// calling JoinRoom.
type Hub struct {
	// Registered clients by connection id
	clients    map[uuid.UUID]*Client
	clientsMux sync.RWMutex

	// Room subscriptions (room key -> connection ids)
	rooms    map[string]map[uuid.UUID]struct{}
	roomsMux sync.RWMutex

	// User connections (user id -> connection ids)
	userConnections    map[uint][]uuid.UUID
	userConnectionsMux sync.RWMutex

	// Inbound event handlers
	handlers map[string]EventHandler

	chatService     service.ChatService
	presenceService service.PresenceService
	groupRepo       repository.GroupRepository

	register   chan *Client
	unregister chan *Client
	broadcast  chan *RoomEvent
}

// NewHub creates the hub. ChatService is attached afterwards via
// SetChatService because the dispatcher broadcasts back through this hub.
func NewHub(groupRepo repository.GroupRepository) *Hub {
	hub := &Hub{
		clients:         make(map[uuid.UUID]*Client),
		rooms:           make(map[string]map[uuid.UUID]struct{}),
		userConnections: make(map[uint][]uuid.UUID),
		handlers:        make(map[string]EventHandler),
		groupRepo:       groupRepo,
		register:        make(chan *Client),
		unregister:      make(chan *Client),
		broadcast:       make(chan *RoomEvent, 1024),
	}
	hub.registerHandlers()
	return hub
}

func (h *Hub) SetChatService(chatService service.ChatService) {
	h.chatService = chatService
}

func (h *Hub) SetPresenceService(presenceService service.PresenceService) {
	h.presenceService = presenceService
}

// Run owns the register/unregister/broadcast loop until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			log.Println("WebSocket hub: shutting down")
			return

		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.broadcastToRoom(event)
		}
	}
}

// registerClient binds the connection to its user and auto-subscribes it to
// the personal notification room.
func (h *Hub) registerClient(client *Client) {
	h.clientsMux.Lock()
	h.clients[client.ID] = client
	h.clientsMux.Unlock()

	h.userConnectionsMux.Lock()
	isFirstConnection := len(h.userConnections[client.UserID]) == 0
	h.userConnections[client.UserID] = append(h.userConnections[client.UserID], client.ID)
	h.userConnectionsMux.Unlock()

	h.JoinRoom(client.ID, chat.UserRoom(client.UserID))

	if isFirstConnection && h.presenceService != nil {
		if err := h.presenceService.SetUserOnline(client.UserID); err != nil {
			log.Printf("presence: set user %d online: %v", client.UserID, err)
		}
	}

	h.sendToClient(client, WSResponse{
		Type:      EventConnect,
		Data:      map[string]interface{}{"client_id": client.ID.String()},
		Timestamp: time.Now(),
	})

	log.Printf("WebSocket hub: user %d connected (%s)", client.UserID, client.ID)
}

// unregisterClient removes the connection from every room. Idempotent: a
// connection already gone is a no-op. Send stays open; closing done tells
// writePump to shut the connection, so a handler racing this teardown can
// still enqueue without panicking.
func (h *Hub) unregisterClient(client *Client) {
	h.clientsMux.Lock()
	if _, ok := h.clients[client.ID]; !ok {
		h.clientsMux.Unlock()
		return
	}
	delete(h.clients, client.ID)
	close(client.done)
	h.clientsMux.Unlock()

	h.userConnectionsMux.Lock()
	isLastConnection := false
	if connections, exists := h.userConnections[client.UserID]; exists {
		connections = removeConnID(connections, client.ID)
		if len(connections) == 0 {
			delete(h.userConnections, client.UserID)
			isLastConnection = true
		} else {
			h.userConnections[client.UserID] = connections
		}
	}
	h.userConnectionsMux.Unlock()

	h.removeFromAllRooms(client.ID)

	if isLastConnection && h.presenceService != nil {
		if err := h.presenceService.SetUserOffline(client.UserID); err != nil {
			log.Printf("presence: set user %d offline: %v", client.UserID, err)
		}
	}

	log.Printf("WebSocket hub: user %d disconnected (%s)", client.UserID, client.ID)
}

// JoinRoom subscribes a connection to a room. Authorization happens in the
// caller.
func (h *Hub) JoinRoom(connID uuid.UUID, roomKey string) {
	h.roomsMux.Lock()
	defer h.roomsMux.Unlock()

	members, ok := h.rooms[roomKey]
	if !ok {
		members = make(map[uuid.UUID]struct{})
		h.rooms[roomKey] = members
	}
	members[connID] = struct{}{}
}

// LeaveRoom unsubscribes a connection from a room.
func (h *Hub) LeaveRoom(connID uuid.UUID, roomKey string) {
	h.roomsMux.Lock()
	defer h.roomsMux.Unlock()

	if members, ok := h.rooms[roomKey]; ok {
		delete(members, connID)
		if len(members) == 0 {
			delete(h.rooms, roomKey)
		}
	}
}

func (h *Hub) removeFromAllRooms(connID uuid.UUID) {
	h.roomsMux.Lock()
	defer h.roomsMux.Unlock()

	for roomKey, members := range h.rooms {
		delete(members, connID)
		if len(members) == 0 {
			delete(h.rooms, roomKey)
		}
	}
}

// RoomSize reports how many connections a room currently holds.
func (h *Hub) RoomSize(roomKey string) int {
	h.roomsMux.RLock()
	defer h.roomsMux.RUnlock()
	return len(h.rooms[roomKey])
}

// IsUserConnected reports whether the user has at least one live connection.
func (h *Hub) IsUserConnected(userID uint) bool {
	h.userConnectionsMux.RLock()
	defer h.userConnectionsMux.RUnlock()
	return len(h.userConnections[userID]) > 0
}

func removeConnID(ids []uuid.UUID, target uuid.UUID) []uuid.UUID {
	for i, id := range ids {
		if id == target {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
