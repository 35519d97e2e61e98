// interfaces/websocket/client.go
package websocket

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	maxMsgSize = 1 << 20 // 1MB
)

// Client is one live WebSocket connection bound to an authenticated user.
// Send is never closed; the hub signals teardown through done so late
// deliveries from other goroutines cannot hit a closed channel.
type Client struct {
	ID       uuid.UUID
	UserID   uint
	Username string
	Conn     *websocket.Conn
	Send     chan []byte
	done     chan struct{}
	Hub      *Hub
}

// ServeWS runs the connection lifecycle. The auth middleware has already put
// the user id and username into the connection locals; an upgrade without
// them never reaches this point.
func (h *Hub) ServeWS(conn *websocket.Conn) {
	userID, okID := conn.Locals("userID").(uint)
	username, okName := conn.Locals("username").(string)
	if !okID || !okName {
		conn.Close()
		return
	}

	client := &Client{
		ID:       uuid.New(),
		UserID:   userID,
		Username: username,
		Conn:     conn,
		Send:     make(chan []byte, 256),
		done:     make(chan struct{}),
		Hub:      h,
	}

	h.register <- client

	go client.writePump()
	client.readPump()
}

// readPump reads inbound events and dispatches them to the hub's handlers.
// Handler failures are logged and swallowed; the realtime path never reports
// errors back to the sender.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMsgSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			break
		}

		var msg WSMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("WebSocket: malformed event from user %d: %v", c.UserID, err)
			continue
		}

		handler, ok := c.Hub.handlers[msg.Type]
		if !ok {
			log.Printf("WebSocket: unknown event type %q from user %d", msg.Type, c.UserID)
			continue
		}

		if err := handler.Handle(context.Background(), c, msg.Data); err != nil {
			log.Printf("WebSocket: %s from user %d failed: %v", msg.Type, c.UserID, err)
		}
	}
}

// writePump serializes all writes to the connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case <-c.done:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case payload := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
