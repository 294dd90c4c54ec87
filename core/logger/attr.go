package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors, enabling safe usage without nil checks.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component identifies the emitting component.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event names the lifecycle event being logged.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Method creates an attribute for an HTTP method.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path creates an attribute for a request path.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// RemoteAddr creates an attribute for the peer address.
func RemoteAddr(addr string) slog.Attr {
	return slog.String("remote_addr", addr)
}

// RequestID creates an attribute for the request correlation ID.
func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

// StatusCode creates an attribute for a response status code.
func StatusCode(code int) slog.Attr {
	return slog.Int("status", code)
}

// CloseCode creates an attribute for a websocket close code.
func CloseCode(code int) slog.Attr {
	return slog.Int("close_code", code)
}

// Duration creates an attribute for elapsed time.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
