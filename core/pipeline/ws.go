package pipeline

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dmitrymomot/cascade/core/inject"
	"github.com/dmitrymomot/cascade/core/response"
	"github.com/dmitrymomot/cascade/core/ws"
)

// WSResponse is the terminal value of a connection call: an optional final
// payload and the close code the connection finalizer ends the channel
// with. The zero value closes normally with no payload.
type WSResponse struct {
	// Data is sent as a final message before closing, when non-empty.
	Data []byte

	// Binary marks the payload as a binary frame.
	Binary bool

	// Code is the close code; zero means StatusNormalClosure.
	Code int

	// Failure carries the captured error for optional debug surfacing.
	Failure *response.Failure
}

// CloseCode returns the effective close code.
func (r *WSResponse) CloseCode() int {
	if r.Code == 0 {
		return ws.StatusNormalClosure
	}
	return r.Code
}

// renderConnResponse turns a connection handler's return value into a
// WSResponse: nil yields an empty normal close, text and binary payloads
// become the close payload, and anything else is JSON-encoded.
func (p *Pipeline) renderConnResponse(ctx context.Context, s *inject.State) (any, error) {
	switch v := s.Get(SlotReturnValue).(type) {
	case nil:
		return &WSResponse{}, nil
	case *WSResponse:
		return v, nil
	case string:
		return &WSResponse{Data: []byte(v)}, nil
	case []byte:
		return &WSResponse{Data: v, Binary: true}, nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return &WSResponse{Data: data}, nil
	}
}

// connExceptionHandler is the first recovery level for connections. Peer
// disconnects and runtime cancellation are expected terminations and
// recover into a clean close; everything else escalates.
func (p *Pipeline) connExceptionHandler(ctx context.Context, s *inject.State) (any, error) {
	err := LastError(s)

	var disconnect *ws.DisconnectError
	if errors.As(err, &disconnect) || errors.Is(err, context.Canceled) {
		return &WSResponse{}, nil
	}
	return nil, err
}

// connErrorHandler is the terminal recovery level for connections,
// producing a fixed internal-error close.
func (p *Pipeline) connErrorHandler(ctx context.Context, s *inject.State) (any, error) {
	return &WSResponse{
		Data:    []byte("Server error"),
		Code:    ws.StatusInternalError,
		Failure: capture(LastError(s)),
	}, nil
}

// finalizeConn ensures the connection reaches its terminal closed state:
// if the channel is still open it sends any payload and closes with the
// response's code; if it is already closed this is a no-op, unlike an
// explicit Close, which treats double-close as a caller error.
func (p *Pipeline) finalizeConn(ctx context.Context, s *inject.State) (any, error) {
	resp, _ := inject.Slot[*WSResponse](s, SlotResponse)
	if resp == nil {
		resp = &WSResponse{}
	}

	if resp.Failure != nil && (p.debug || raiseRequested(s)) {
		return nil, &raisedError{failure: resp.Failure}
	}

	conn := Connection(s)
	if conn == nil || conn.State() == ws.StateClosed {
		return nil, nil
	}

	if len(resp.Data) > 0 && conn.State() == ws.StateConnected {
		if err := conn.SendRaw(ctx, ws.Event{Type: ws.EventMessage, Data: resp.Data, Binary: resp.Binary}); err != nil {
			return nil, err
		}
	}
	return nil, conn.EnsureClosed(ctx, resp.CloseCode())
}
