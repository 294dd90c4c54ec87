package pipeline_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cascade/core/inject"
	"github.com/dmitrymomot/cascade/core/pipeline"
	"github.com/dmitrymomot/cascade/core/router"
	"github.com/dmitrymomot/cascade/core/ws"
)

func wsURL(srv *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + path
}

func dialWS(t *testing.T, srv *httptest.Server, path string) *websocket.Conn {
	t.Helper()
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, path), nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func expectClose(t *testing.T, conn *websocket.Conn, code int) {
	t.Helper()
	_, _, err := conn.ReadMessage()
	var closeErr *websocket.CloseError
	require.ErrorAs(t, err, &closeErr)
	assert.Equal(t, code, closeErr.Code)
}

func TestPipeline_ConnEcho(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, []router.Route{{
		Pattern: "/echo",
		Method:  "GET",
		Handler: func(ctx context.Context, s *inject.State) (any, error) {
			conn := pipeline.Connection(s)
			if err := conn.Connect(ctx); err != nil {
				return nil, err
			}
			msg, err := conn.Receive(ctx)
			if err != nil {
				return nil, err
			}
			if err := conn.Send(ctx, msg.Text()); err != nil {
				return nil, err
			}
			return nil, nil
		},
	}})
	srv := httptest.NewServer(p)
	defer srv.Close()

	conn := dialWS(t, srv, "/echo")

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("hello")))
	msgType, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, msgType)
	assert.Equal(t, "hello", string(data))

	// Handler returned nil, so the finalizer ends with a normal close.
	expectClose(t, conn, websocket.CloseNormalClosure)
}

func TestPipeline_ConnStringBecomesClosePayload(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, []router.Route{{
		Pattern: "/bye",
		Method:  "GET",
		Handler: func(ctx context.Context, s *inject.State) (any, error) {
			if err := pipeline.Connection(s).Connect(ctx); err != nil {
				return nil, err
			}
			return "goodbye", nil
		},
	}})
	srv := httptest.NewServer(p)
	defer srv.Close()

	conn := dialWS(t, srv, "/bye")

	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "goodbye", string(data))

	expectClose(t, conn, websocket.CloseNormalClosure)
}

func TestPipeline_ConnValueRendersAsJSON(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, []router.Route{{
		Pattern: "/json",
		Method:  "GET",
		Handler: func(ctx context.Context, s *inject.State) (any, error) {
			if err := pipeline.Connection(s).Connect(ctx); err != nil {
				return nil, err
			}
			return map[string]bool{"ok": true}, nil
		},
	}})
	srv := httptest.NewServer(p)
	defer srv.Close()

	conn := dialWS(t, srv, "/json")

	msgType, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, msgType)
	assert.JSONEq(t, `{"ok":true}`, string(data))

	expectClose(t, conn, websocket.CloseNormalClosure)
}

func TestPipeline_ConnCustomCloseCode(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, []router.Route{{
		Pattern: "/policy",
		Method:  "GET",
		Handler: func(ctx context.Context, s *inject.State) (any, error) {
			if err := pipeline.Connection(s).Connect(ctx); err != nil {
				return nil, err
			}
			return &pipeline.WSResponse{Code: ws.StatusPolicyViolation}, nil
		},
	}})
	srv := httptest.NewServer(p)
	defer srv.Close()

	conn := dialWS(t, srv, "/policy")

	expectClose(t, conn, websocket.ClosePolicyViolation)
}

func TestPipeline_ConnDenyRepliesOverPlainHTTP(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, []router.Route{{
		Pattern: "/private",
		Method:  "GET",
		Handler: func(ctx context.Context, s *inject.State) (any, error) {
			err := pipeline.Connection(s).Connect(ctx, ws.WithImmediateClose(ws.StatusNormalClosure))
			return nil, err
		},
	}})
	srv := httptest.NewServer(p)
	defer srv.Close()

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "/private"), nil)

	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestPipeline_ConnSubprotocolNegotiation(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, []router.Route{{
		Pattern: "/chat",
		Method:  "GET",
		Handler: func(ctx context.Context, s *inject.State) (any, error) {
			err := pipeline.Connection(s).Connect(ctx, ws.WithSubprotocol("v1.chat"))
			return nil, err
		},
	}})
	srv := httptest.NewServer(p)
	defer srv.Close()

	dialer := websocket.Dialer{Subprotocols: []string{"v1.chat"}}
	conn, resp, err := dialer.Dial(wsURL(srv, "/chat"), nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	assert.Equal(t, "v1.chat", resp.Header.Get("Sec-WebSocket-Protocol"))
	expectClose(t, conn, websocket.CloseNormalClosure)
}

func TestPipeline_ConnPeerDisconnectClosesCleanly(t *testing.T) {
	t.Parallel()

	done := make(chan error, 1)
	p := newPipeline(t, []router.Route{{
		Pattern: "/wait",
		Method:  "GET",
		Handler: func(ctx context.Context, s *inject.State) (any, error) {
			conn := pipeline.Connection(s)
			if err := conn.Connect(ctx); err != nil {
				return nil, err
			}
			_, err := conn.Receive(ctx)
			done <- err
			return nil, err
		},
	}})
	srv := httptest.NewServer(p)
	defer srv.Close()

	conn := dialWS(t, srv, "/wait")

	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "")
	require.NoError(t, conn.WriteMessage(websocket.CloseMessage, msg))

	// The handler observes the disconnect; the exception handler recovers
	// it into a clean close and the finalizer finds the channel closed.
	err := <-done
	var disconnect *ws.DisconnectError
	require.ErrorAs(t, err, &disconnect)
	assert.Equal(t, ws.StatusGoingAway, disconnect.Code)
}

func TestPipeline_ConnHandlerFailureClosesWithInternalError(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, []router.Route{{
		Pattern: "/broken",
		Method:  "GET",
		Handler: func(ctx context.Context, s *inject.State) (any, error) {
			if err := pipeline.Connection(s).Connect(ctx); err != nil {
				return nil, err
			}
			panic("ws boom")
		},
	}})
	srv := httptest.NewServer(p)
	defer srv.Close()

	conn := dialWS(t, srv, "/broken")

	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "Server error", string(data))

	expectClose(t, conn, websocket.CloseInternalServerErr)
}

func TestPipeline_ConnUpgradeRequestUsesConnChain(t *testing.T) {
	t.Parallel()

	p := newPipeline(t, []router.Route{{
		Pattern: "/dual",
		Method:  "GET",
		Handler: func(ctx context.Context, s *inject.State) (any, error) {
			if conn := pipeline.Connection(s); conn != nil {
				if err := conn.Connect(ctx); err != nil {
					return nil, err
				}
				return "upgraded", nil
			}
			return "plain", nil
		},
	}})
	srv := httptest.NewServer(p)
	defer srv.Close()

	// A plain request runs the request/response chain.
	resp, err := http.Get(srv.URL + "/dual")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The same route over an upgrade request runs the connection chain.
	conn := dialWS(t, srv, "/dual")
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "upgraded", string(data))
	expectClose(t, conn, websocket.CloseNormalClosure)
}
