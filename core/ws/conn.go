package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ConnState is the lifecycle state of a connection.
type ConnState int

const (
	// StateClosed is the initial and terminal state.
	StateClosed ConnState = iota
	// StateConnecting means the peer's opening event has arrived but the
	// connection has not been accepted yet.
	StateConnecting
	// StateConnected means the connection is accepted and open for
	// messages.
	StateConnected
)

// String returns the state name for logs and errors.
func (s ConnState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "unknown"
	}
}

// Message is one received payload.
type Message struct {
	Data   []byte
	Binary bool
}

// Text returns the payload as text.
func (m Message) Text() string {
	return string(m.Data)
}

// Conn governs the lifecycle of one upgraded bidirectional connection.
// State only ever moves CLOSED -> CONNECTING -> CONNECTED -> CLOSED; an
// operation attempted from an illegal state fails with a typed error and
// leaves the state unchanged.
//
// A Conn belongs to a single connection pipeline and is not safe for
// concurrent use.
type Conn struct {
	transport Transport
	state     ConnState
}

// NewConn creates a connection over the given transport in StateClosed.
func NewConn(t Transport) *Conn {
	return &Conn{transport: t}
}

// State returns the current lifecycle state.
func (c *Conn) State() ConnState {
	return c.state
}

type connectConfig struct {
	subprotocol    string
	closeImmediate bool
	closeCode      int
}

// ConnectOption configures the opening handshake.
type ConnectOption func(*connectConfig)

// WithSubprotocol negotiates the given subprotocol during acceptance.
func WithSubprotocol(p string) ConnectOption {
	return func(c *connectConfig) {
		c.subprotocol = p
	}
}

// WithImmediateClose denies the connection right after the opening event,
// closing with the given code instead of accepting.
func WithImmediateClose(code int) ConnectOption {
	return func(c *connectConfig) {
		c.closeImmediate = true
		c.closeCode = code
	}
}

// Connect waits for the peer's opening event and performs the handshake.
// Legal only from StateClosed. If the arrived event is not an opening
// event, Connect fails with ErrProtocol and the state remains StateClosed.
// On a valid opening event the state moves to StateConnecting and the
// connection is either accepted or, with WithImmediateClose, closed.
func (c *Conn) Connect(ctx context.Context, opts ...ConnectOption) error {
	cfg := connectConfig{closeCode: StatusNormalClosure}
	for _, opt := range opts {
		opt(&cfg)
	}

	if c.state != StateClosed {
		return fmt.Errorf("%w: connect attempted while %s", ErrProtocol, c.state)
	}

	ev, err := c.transport.Receive(ctx)
	if err != nil {
		return err
	}
	if ev.Type != EventConnect {
		return fmt.Errorf("%w: expected connect event, got %s", ErrProtocol, ev.Type)
	}

	c.state = StateConnecting

	if cfg.closeImmediate {
		return c.Close(ctx, cfg.closeCode)
	}
	return c.Accept(ctx, cfg.subprotocol)
}

// Accept emits the acceptance event, optionally carrying the negotiated
// subprotocol, and moves the connection to StateConnected. Legal only from
// StateConnecting.
func (c *Conn) Accept(ctx context.Context, subprotocol string) error {
	if c.state != StateConnecting {
		return fmt.Errorf("%w: accept attempted while %s (not connecting)", ErrProtocol, c.state)
	}

	if err := c.transport.Send(ctx, Event{Type: EventAccept, Subprotocol: subprotocol}); err != nil {
		return err
	}
	c.state = StateConnected
	return nil
}

// Send serializes and sends a payload. Strings go as text frames, byte
// slices as binary frames; any other type fails with ErrUnsupportedData.
// Legal only from StateConnected.
func (c *Conn) Send(ctx context.Context, data any) error {
	switch v := data.(type) {
	case string:
		return c.SendRaw(ctx, Event{Type: EventMessage, Data: []byte(v)})
	case []byte:
		return c.SendRaw(ctx, Event{Type: EventMessage, Data: v, Binary: true})
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedData, data)
	}
}

// SendJSON encodes the value through the JSON codec and sends it as a text
// frame. Legal only from StateConnected.
func (c *Conn) SendJSON(ctx context.Context, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.SendRaw(ctx, Event{Type: EventMessage, Data: data})
}

// SendRaw sends a pre-built message event. Legal only from StateConnected.
func (c *Conn) SendRaw(ctx context.Context, ev Event) error {
	if c.state != StateConnected {
		return ErrNotConnected
	}
	return c.transport.Send(ctx, ev)
}

// Receive blocks until a message arrives and returns its payload. Legal
// only from StateConnected.
//
// A disconnect event from the peer moves the connection to StateClosed and
// fails with a *DisconnectError carrying the peer-supplied close code.
// Cancellation by the surrounding runtime is treated as a peer disconnect
// with StatusGoingAway.
func (c *Conn) Receive(ctx context.Context) (Message, error) {
	if c.state != StateConnected {
		return Message{}, ErrNotConnected
	}

	ev, err := c.transport.Receive(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			c.state = StateClosed
			return Message{}, &DisconnectError{Code: StatusGoingAway}
		}
		return Message{}, err
	}

	switch ev.Type {
	case EventMessage:
		return Message{Data: ev.Data, Binary: ev.Binary}, nil
	case EventDisconnect:
		c.state = StateClosed
		return Message{}, &DisconnectError{Code: ev.Code}
	default:
		return Message{}, fmt.Errorf("%w: expected message event, got %s", ErrProtocol, ev.Type)
	}
}

// ReceiveJSON receives a message and decodes its payload into v. Decode
// failures propagate as codec errors.
func (c *Conn) ReceiveJSON(ctx context.Context, v any) error {
	msg, err := c.Receive(ctx)
	if err != nil {
		return err
	}
	return json.Unmarshal(msg.Data, v)
}

// Close emits a close event carrying the given code and unconditionally
// moves the connection to StateClosed. Closing an already-closed connection
// is itself an error, not a no-op: it fails with ErrNotConnected. Use
// EnsureClosed for best-effort cleanup.
func (c *Conn) Close(ctx context.Context, code int) error {
	if c.state == StateClosed {
		return ErrNotConnected
	}
	c.state = StateClosed
	return c.transport.Send(ctx, Event{Type: EventClose, Code: code})
}

// EnsureClosed closes the connection if it is not closed already. Unlike
// Close, calling it on a closed connection is a no-op; this is the cleanup
// path used by the connection finalizer.
func (c *Conn) EnsureClosed(ctx context.Context, code int) error {
	if c.state == StateClosed {
		return nil
	}
	return c.Close(ctx, code)
}
