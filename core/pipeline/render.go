package pipeline

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrymomot/cascade/core/inject"
	"github.com/dmitrymomot/cascade/core/response"
	"github.com/dmitrymomot/cascade/core/router"
)

// renderResponse turns a handler's return value into a Response: responses
// pass through, bare text becomes an HTML response, anything else is
// JSON-encoded.
func (p *Pipeline) renderResponse(ctx context.Context, s *inject.State) (any, error) {
	switch v := s.Get(SlotReturnValue).(type) {
	case *response.Response:
		return v, nil
	case string:
		return response.HTML(v), nil
	default:
		return response.JSON(v)
	}
}

// exceptionHandler is the first recovery level. Recognized HTTP-class
// errors are rendered into a structured response carrying their status,
// detail, and headers; anything else is re-raised into the second level.
func (p *Pipeline) exceptionHandler(ctx context.Context, s *inject.State) (any, error) {
	err := LastError(s)
	httpErr, ok := response.AsHTTPError(translateLookupError(err))
	if !ok {
		return nil, err
	}

	resp, encErr := response.JSONWithStatus(httpErr, httpErr.Status)
	if encErr != nil {
		return nil, encErr
	}
	resp.Headers = append(resp.Headers, httpErr.Headers...)
	return resp, nil
}

// translateLookupError maps the router's sentinel errors onto the
// HTTP-class taxonomy so lookup misses recover into proper 404/405
// responses.
func translateLookupError(err error) error {
	switch {
	case errors.Is(err, router.ErrNotFound):
		return response.ErrNotFound
	case errors.Is(err, router.ErrMethodNotAllowed):
		return response.ErrMethodNotAllowed
	default:
		return err
	}
}

// errorHandler is the terminal recovery level. It is deliberately
// infallible: the fixed 500-class response is built without any encoding
// step, carrying the captured failure for optional debug surfacing.
func (p *Pipeline) errorHandler(ctx context.Context, s *inject.State) (any, error) {
	return &response.Response{
		StatusCode:  http.StatusInternalServerError,
		ContentType: "application/json; charset=utf-8",
		Content:     []byte(`"Server error"`),
		Failure:     capture(LastError(s)),
	}, nil
}

// finalizeRequest emits the rendered response through the transport
// exactly once. In debug mode a response carrying a captured failure is
// re-raised instead of emitted.
func (p *Pipeline) finalizeRequest(ctx context.Context, s *inject.State) (any, error) {
	resp := CurrentResponse(s)
	if resp == nil {
		return nil, ErrNoResponse
	}

	if p.debug && resp.Failure != nil {
		return nil, &raisedError{failure: resp.Failure}
	}

	w, _ := inject.Slot[*writeTracker](s, SlotWriter)
	if w == nil || w.Written() {
		return nil, nil
	}

	header := w.Header()
	if resp.ContentType != "" {
		header.Set("Content-Type", resp.ContentType)
	}
	for _, h := range resp.Headers {
		header.Add(h.Key, h.Value)
	}
	w.WriteHeader(resp.Status())
	if len(resp.Content) > 0 {
		if _, err := w.Write(resp.Content); err != nil {
			return nil, err
		}
	}
	return nil, nil
}
