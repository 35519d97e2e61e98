// domain/port/broadcaster.go
package port

// Outbound event names emitted through the port.
const (
	EventNewMessage          = "new_message"
	EventMessageNotification = "message_notification"
)

// RoomBroadcaster is the outbound realtime port the dispatcher emits through.
// Delivery is best effort: implementations must never block or fail the
// caller, and a connection that drops mid-broadcast simply misses the event.
type RoomBroadcaster interface {
	BroadcastToRoom(roomKey string, event string, data interface{})
	BroadcastToUser(userID uint, event string, data interface{})
}
