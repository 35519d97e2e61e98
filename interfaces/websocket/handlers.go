// interfaces/websocket/handlers.go
package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vinachat/chat-api/domain/chat"
)

func (h *Hub) registerHandlers() {
	h.handlers[EventJoinChat] = &JoinChatHandler{hub: h}
	h.handlers[EventLeaveChat] = &LeaveChatHandler{hub: h}
	h.handlers[EventSendMessage] = &SendMessageHandler{hub: h}
	h.handlers[EventPing] = &PingHandler{hub: h}
}

// ChatRef identifies a conversation in join/leave events.
type ChatRef struct {
	Type string `json:"type"`
	ID   uint   `json:"id"`
}

// JoinChatHandler subscribes the connection to a conversation room. Group
// rooms are membership-gated here, before the hub is touched.
type JoinChatHandler struct {
	hub *Hub
}

func (h *JoinChatHandler) Handle(ctx context.Context, client *Client, data json.RawMessage) error {
	var ref ChatRef
	if err := json.Unmarshal(data, &ref); err != nil {
		return fmt.Errorf("invalid join_chat data: %w", err)
	}

	chatType, err := chat.ParseType(ref.Type)
	if err != nil {
		return err
	}

	if chatType == chat.TypeGroup {
		isMember, err := h.hub.groupRepo.IsMember(ref.ID, client.UserID)
		if err != nil {
			return fmt.Errorf("membership check for group %d: %w", ref.ID, err)
		}
		if !isMember {
			return fmt.Errorf("user %d is not a member of group %d", client.UserID, ref.ID)
		}
	}

	room, err := chat.RoomKey(chatType, ref.ID, client.UserID)
	if err != nil {
		return err
	}

	h.hub.JoinRoom(client.ID, room)
	return nil
}

// LeaveChatHandler unsubscribes the connection from a conversation room.
type LeaveChatHandler struct {
	hub *Hub
}

func (h *LeaveChatHandler) Handle(ctx context.Context, client *Client, data json.RawMessage) error {
	var ref ChatRef
	if err := json.Unmarshal(data, &ref); err != nil {
		return fmt.Errorf("invalid leave_chat data: %w", err)
	}

	chatType, err := chat.ParseType(ref.Type)
	if err != nil {
		return err
	}

	room, err := chat.RoomKey(chatType, ref.ID, client.UserID)
	if err != nil {
		return err
	}

	h.hub.LeaveRoom(client.ID, room)
	return nil
}

// SendMessageData is the send_message payload.
type SendMessageData struct {
	Type    string `json:"type"`
	ID      uint   `json:"id"`
	Content string `json:"content"`
}

// SendMessageHandler routes a realtime send through the fan-out dispatcher.
type SendMessageHandler struct {
	hub *Hub
}

func (h *SendMessageHandler) Handle(ctx context.Context, client *Client, data json.RawMessage) error {
	var msg SendMessageData
	if err := json.Unmarshal(data, &msg); err != nil {
		return fmt.Errorf("invalid send_message data: %w", err)
	}

	chatType, err := chat.ParseType(msg.Type)
	if err != nil {
		return err
	}

	if h.hub.chatService == nil {
		return fmt.Errorf("chat service unavailable")
	}

	_, err = h.hub.chatService.Dispatch(client.UserID, chatType, msg.ID, msg.Content)
	return err
}

// PingHandler answers keepalive pings at the protocol level.
type PingHandler struct {
	hub *Hub
}

func (h *PingHandler) Handle(ctx context.Context, client *Client, data json.RawMessage) error {
	h.hub.sendToClient(client, WSResponse{Type: EventPong, Timestamp: time.Now()})
	return nil
}
