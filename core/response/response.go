package response

import (
	"encoding/json"
	"net/http"
)

// Header is one response header pair. Keys are not required to be unique.
type Header struct {
	Key   string
	Value string
}

// Response is the materialized result of one dispatched request.
type Response struct {
	// StatusCode is the HTTP status, defaulting to 200 when zero.
	StatusCode int

	// ContentType is emitted as the Content-Type header when non-empty.
	ContentType string

	// Headers are emitted in order; duplicate keys are legal.
	Headers []Header

	// Content is the body.
	Content []byte

	// Failure carries the captured error and stack when the response was
	// produced by an error path. Used only for debug surfacing; it never
	// changes how the response is emitted.
	Failure *Failure
}

// Status returns the effective status code.
func (r *Response) Status() int {
	if r.StatusCode == 0 {
		return http.StatusOK
	}
	return r.StatusCode
}

// AddHeader appends a header pair, keeping any existing pairs with the same
// key.
func (r *Response) AddHeader(key, value string) {
	r.Headers = append(r.Headers, Header{Key: key, Value: value})
}

// Text creates a plain-text response with 200 OK status.
func Text(content string) *Response {
	return &Response{
		StatusCode:  http.StatusOK,
		ContentType: "text/plain; charset=utf-8",
		Content:     []byte(content),
	}
}

// HTML creates a text/html response with 200 OK status.
func HTML(content string) *Response {
	return HTMLWithStatus(content, http.StatusOK)
}

// HTMLWithStatus creates a text/html response with a custom status code.
func HTMLWithStatus(content string, status int) *Response {
	return &Response{
		StatusCode:  status,
		ContentType: "text/html; charset=utf-8",
		Content:     []byte(content),
	}
}

// JSON creates an application/json response with 200 OK status. Encoding
// failures propagate to the caller.
func JSON(v any) (*Response, error) {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus creates an application/json response with a custom status
// code.
func JSONWithStatus(v any, status int) (*Response, error) {
	content, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &Response{
		StatusCode:  status,
		ContentType: "application/json; charset=utf-8",
		Content:     content,
	}, nil
}
