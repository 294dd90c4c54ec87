package pipeline

import (
	"net/http"

	"github.com/dmitrymomot/cascade/core/inject"
	"github.com/dmitrymomot/cascade/core/response"
	"github.com/dmitrymomot/cascade/core/router"
	"github.com/dmitrymomot/cascade/core/ws"
)

// Slot names of the per-request execution state. Handlers and hooks read
// and write these through the typed accessors below; the pipeline's own
// stages are wired to them at chain construction time.
const (
	SlotRequest     = "request"
	SlotWriter      = "writer"
	SlotRoute       = "route"
	SlotPathParams  = "path_params"
	SlotReturnValue = "return_value"
	SlotResponse    = "response"
	SlotErr         = "exc"
	SlotConn        = "ws"

	// SlotRaiseErrors may be set to true by a surrounding test harness or
	// adapter to request that captured connection failures are re-raised
	// even outside debug mode.
	SlotRaiseErrors = "raise_errors"
)

// Request returns the inbound *http.Request.
func Request(s *inject.State) *http.Request {
	r, _ := inject.Slot[*http.Request](s, SlotRequest)
	return r
}

// Writer returns the response writer of a request/response call. It is nil
// for connection calls.
func Writer(s *inject.State) http.ResponseWriter {
	w, _ := inject.Slot[*writeTracker](s, SlotWriter)
	if w == nil {
		return nil
	}
	return w
}

// CurrentRoute returns the resolved route, or nil before route lookup has
// succeeded.
func CurrentRoute(s *inject.State) *router.Route {
	r, _ := inject.Slot[*router.Route](s, SlotRoute)
	return r
}

// PathParams returns the params extracted from the matched path.
func PathParams(s *inject.State) map[string]string {
	p, _ := inject.Slot[map[string]string](s, SlotPathParams)
	return p
}

// Param returns one path param by name, or the empty string.
func Param(s *inject.State, name string) string {
	return PathParams(s)[name]
}

// CurrentResponse returns the rendered response, or nil before rendering.
// On-response hooks may mutate it; it becomes immutable once the finalizer
// runs.
func CurrentResponse(s *inject.State) *response.Response {
	r, _ := inject.Slot[*response.Response](s, SlotResponse)
	return r
}

// LastError returns the error captured by the recovery ladder, or nil.
func LastError(s *inject.State) error {
	err, _ := inject.Slot[error](s, SlotErr)
	return err
}

// Connection returns the upgraded connection of a connection call. It is
// nil for plain request/response calls.
func Connection(s *inject.State) *ws.Conn {
	c, _ := inject.Slot[*ws.Conn](s, SlotConn)
	return c
}

func raiseRequested(s *inject.State) bool {
	raise, _ := inject.Slot[bool](s, SlotRaiseErrors)
	return raise
}
