package ws

import (
	"errors"
	"fmt"
)

var (
	// ErrProtocol indicates an illegal state transition or an unexpected
	// event from the peer. Always a caller or client bug, never retried.
	ErrProtocol = errors.New("websocket protocol error")

	// ErrNotConnected indicates a data operation attempted outside the
	// CONNECTED state.
	ErrNotConnected = errors.New("websocket is not connected")

	// ErrUnsupportedData indicates a payload type the connection cannot
	// serialize.
	ErrUnsupportedData = errors.New("unsupported websocket payload type")
)

// DisconnectError reports a peer-initiated termination observed during a
// receive. It is terminal: the connection has transitioned to StateClosed.
type DisconnectError struct {
	// Code is the peer-supplied close code.
	Code int
}

// Error implements the error interface.
func (e *DisconnectError) Error() string {
	return fmt.Sprintf("websocket disconnected (code %d)", e.Code)
}
