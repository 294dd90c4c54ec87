package response

import (
	"errors"
	"net/http"
)

// HTTPError represents a structured error response that implements the
// error interface. The pipeline's exception handler renders it into a JSON
// response carrying its status, detail, and headers.
type HTTPError struct {
	Status  int            `json:"-"`                 // HTTP status code (not in JSON)
	Code    string         `json:"code"`              // Machine-readable error code
	Message string         `json:"message"`           // Human-readable message
	Details map[string]any `json:"details,omitempty"` // Optional context
	Headers []Header       `json:"-"`                 // Headers emitted with the error response
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code for the error.
func (e HTTPError) StatusCode() int {
	return e.Status
}

// WithMessage returns a copy of the error with a custom message.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// WithDetails returns a copy of the error with additional details.
func (e HTTPError) WithDetails(details map[string]any) HTTPError {
	e.Details = details
	return e
}

// WithError returns a copy of the error with an error cause.
func (e HTTPError) WithError(err error) HTTPError {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details["cause"] = err.Error()
	e.Details = details
	return e
}

// WithHeader returns a copy of the error with an additional header pair.
func (e HTTPError) WithHeader(key, value string) HTTPError {
	headers := make([]Header, len(e.Headers), len(e.Headers)+1)
	copy(headers, e.Headers)
	e.Headers = append(headers, Header{Key: key, Value: value})
	return e
}

// Predefined HTTP errors using http.StatusText for default messages.
var (
	ErrBadRequest          = HTTPError{Status: http.StatusBadRequest, Code: "bad_request", Message: http.StatusText(http.StatusBadRequest)}
	ErrUnauthorized        = HTTPError{Status: http.StatusUnauthorized, Code: "unauthorized", Message: http.StatusText(http.StatusUnauthorized)}
	ErrForbidden           = HTTPError{Status: http.StatusForbidden, Code: "forbidden", Message: http.StatusText(http.StatusForbidden)}
	ErrNotFound            = HTTPError{Status: http.StatusNotFound, Code: "not_found", Message: http.StatusText(http.StatusNotFound)}
	ErrMethodNotAllowed    = HTTPError{Status: http.StatusMethodNotAllowed, Code: "method_not_allowed", Message: http.StatusText(http.StatusMethodNotAllowed)}
	ErrRequestTimeout      = HTTPError{Status: http.StatusRequestTimeout, Code: "request_timeout", Message: http.StatusText(http.StatusRequestTimeout)}
	ErrConflict            = HTTPError{Status: http.StatusConflict, Code: "conflict", Message: http.StatusText(http.StatusConflict)}
	ErrUnprocessableEntity = HTTPError{Status: http.StatusUnprocessableEntity, Code: "unprocessable_entity", Message: http.StatusText(http.StatusUnprocessableEntity)}
	ErrTooManyRequests     = HTTPError{Status: http.StatusTooManyRequests, Code: "too_many_requests", Message: http.StatusText(http.StatusTooManyRequests)}
	ErrInternalServerError = HTTPError{Status: http.StatusInternalServerError, Code: "internal_server_error", Message: http.StatusText(http.StatusInternalServerError)}
	ErrNotImplemented      = HTTPError{Status: http.StatusNotImplemented, Code: "not_implemented", Message: http.StatusText(http.StatusNotImplemented)}
	ErrBadGateway          = HTTPError{Status: http.StatusBadGateway, Code: "bad_gateway", Message: http.StatusText(http.StatusBadGateway)}
	ErrServiceUnavailable  = HTTPError{Status: http.StatusServiceUnavailable, Code: "service_unavailable", Message: http.StatusText(http.StatusServiceUnavailable)}
	ErrGatewayTimeout      = HTTPError{Status: http.StatusGatewayTimeout, Code: "gateway_timeout", Message: http.StatusText(http.StatusGatewayTimeout)}
)

// AsHTTPError extracts an HTTPError from err. The second return value is
// false when err is not HTTP-class, meaning the recovery ladder must
// escalate instead of recovering.
func AsHTTPError(err error) (HTTPError, bool) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}
	return HTTPError{}, false
}
