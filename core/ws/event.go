package ws

import "context"

// EventType tags a transport event.
type EventType uint8

const (
	// EventConnect is the peer's opening event.
	EventConnect EventType = iota + 1
	// EventAccept acknowledges the opening event and completes the upgrade.
	EventAccept
	// EventMessage carries a text or binary payload in either direction.
	EventMessage
	// EventDisconnect reports peer-initiated termination.
	EventDisconnect
	// EventClose terminates the connection from this side.
	EventClose
)

// String returns the event type name for logs and errors.
func (t EventType) String() string {
	switch t {
	case EventConnect:
		return "connect"
	case EventAccept:
		return "accept"
	case EventMessage:
		return "message"
	case EventDisconnect:
		return "disconnect"
	case EventClose:
		return "close"
	default:
		return "unknown"
	}
}

// Event is one tagged record exchanged with the transport. Which fields are
// meaningful depends on Type: Data/Binary for messages, Code for disconnect
// and close, Subprotocol for connect and accept.
type Event struct {
	Type        EventType
	Data        []byte
	Binary      bool
	Code        int
	Subprotocol string
}

// Transport moves events between the connection state machine and the
// underlying channel. Send and Receive are the suspension points of a
// connection's pipeline; no other operation blocks.
type Transport interface {
	Send(ctx context.Context, ev Event) error
	Receive(ctx context.Context) (Event, error)
}
