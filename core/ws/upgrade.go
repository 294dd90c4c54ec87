package ws

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// UpgradeOption configures the HTTP upgrade transport.
type UpgradeOption func(*upgradeTransport)

// WithReadBuffer sets the read buffer size of the upgraded connection.
func WithReadBuffer(size int) UpgradeOption {
	return func(t *upgradeTransport) {
		t.upgrader.ReadBufferSize = size
	}
}

// WithWriteBuffer sets the write buffer size of the upgraded connection.
func WithWriteBuffer(size int) UpgradeOption {
	return func(t *upgradeTransport) {
		t.upgrader.WriteBufferSize = size
	}
}

// WithHandshakeTimeout bounds the duration of the upgrade handshake.
func WithHandshakeTimeout(d time.Duration) UpgradeOption {
	return func(t *upgradeTransport) {
		t.upgrader.HandshakeTimeout = d
	}
}

// WithOriginCheck sets the origin validation function.
func WithOriginCheck(fn func(r *http.Request) bool) UpgradeOption {
	return func(t *upgradeTransport) {
		t.upgrader.CheckOrigin = fn
	}
}

// WithAllowAnyOrigin disables origin validation.
func WithAllowAnyOrigin() UpgradeOption {
	return func(t *upgradeTransport) {
		t.upgrader.CheckOrigin = func(*http.Request) bool { return true }
	}
}

// WithWriteTimeout bounds each outgoing frame write. Zero means no bound.
func WithWriteTimeout(d time.Duration) UpgradeOption {
	return func(t *upgradeTransport) {
		t.writeTimeout = d
	}
}

// Upgrade adapts an inbound HTTP upgrade request into the connection event
// model. The returned transport synthesizes the opening event from the
// request itself; the actual protocol upgrade is deferred until the
// acceptance event is sent, so a connection can still be denied with a
// plain HTTP response.
func Upgrade(w http.ResponseWriter, r *http.Request, opts ...UpgradeOption) Transport {
	t := &upgradeTransport{
		w: w,
		r: r,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

type upgradeTransport struct {
	w            http.ResponseWriter
	r            *http.Request
	upgrader     websocket.Upgrader
	conn         *websocket.Conn
	writeTimeout time.Duration
	opened       bool // opening event already delivered
}

func (t *upgradeTransport) Receive(ctx context.Context) (Event, error) {
	if !t.opened {
		t.opened = true
		return Event{
			Type:        EventConnect,
			Subprotocol: t.r.Header.Get("Sec-WebSocket-Protocol"),
		}, nil
	}

	if t.conn == nil {
		return Event{}, fmt.Errorf("%w: receive before upgrade completed", ErrProtocol)
	}
	if err := ctx.Err(); err != nil {
		return Event{}, err
	}

	msgType, data, err := t.conn.ReadMessage()
	if err != nil {
		var ce *websocket.CloseError
		if errors.As(err, &ce) {
			return Event{Type: EventDisconnect, Code: ce.Code}, nil
		}
		// Reads failing without a close frame count as an abnormal
		// disconnect, matching how peers dropping mid-wait behave.
		return Event{Type: EventDisconnect, Code: StatusAbnormalClosure}, nil
	}

	return Event{
		Type:   EventMessage,
		Data:   data,
		Binary: msgType == websocket.BinaryMessage,
	}, nil
}

func (t *upgradeTransport) Send(ctx context.Context, ev Event) error {
	switch ev.Type {
	case EventAccept:
		if t.conn != nil {
			return fmt.Errorf("%w: connection already upgraded", ErrProtocol)
		}
		var hdr http.Header
		if ev.Subprotocol != "" {
			hdr = http.Header{"Sec-WebSocket-Protocol": []string{ev.Subprotocol}}
		}
		conn, err := t.upgrader.Upgrade(t.w, t.r, hdr)
		if err != nil {
			return err
		}
		t.conn = conn
		return nil

	case EventMessage:
		if t.conn == nil {
			return ErrNotConnected
		}
		msgType := websocket.TextMessage
		if ev.Binary {
			msgType = websocket.BinaryMessage
		}
		if t.writeTimeout > 0 {
			_ = t.conn.SetWriteDeadline(time.Now().Add(t.writeTimeout))
		}
		return t.conn.WriteMessage(msgType, ev.Data)

	case EventClose:
		if t.conn == nil {
			// Denied before the upgrade: reply over plain HTTP.
			t.w.WriteHeader(http.StatusForbidden)
			return nil
		}
		deadline := time.Now().Add(5 * time.Second)
		msg := websocket.FormatCloseMessage(ev.Code, "")
		_ = t.conn.WriteControl(websocket.CloseMessage, msg, deadline)
		return t.conn.Close()

	default:
		return fmt.Errorf("%w: cannot send %s event", ErrProtocol, ev.Type)
	}
}
