package hooks

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrymomot/cascade/core/hook"
	"github.com/dmitrymomot/cascade/core/inject"
	"github.com/dmitrymomot/cascade/core/pipeline"
)

const requestIDSlot = "request_id"

// RequestIDConfig configures the request ID hook.
type RequestIDConfig struct {
	// Generator creates new request IDs (default: UUID v4).
	Generator func() string

	// HeaderName specifies the header for the request ID (default:
	// "X-Request-ID").
	HeaderName string

	// UseExisting reuses a request ID supplied by the incoming request.
	UseExisting bool
}

// RequestID creates a request ID hook with default configuration. It
// assigns a unique identifier to each request and adds it to the response
// headers.
func RequestID() hook.Hook {
	return RequestIDWithConfig(RequestIDConfig{})
}

// RequestIDWithConfig creates a request ID hook with custom configuration.
func RequestIDWithConfig(cfg RequestIDConfig) hook.Hook {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}
	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return hook.Hook{
		OnRequest: func(ctx context.Context, s *inject.State) error {
			var id string
			if cfg.UseExisting {
				if req := pipeline.Request(s); req != nil {
					id = req.Header.Get(cfg.HeaderName)
				}
			}
			if id == "" {
				id = cfg.Generator()
			}
			s.Set(requestIDSlot, id)
			return nil
		},

		OnResponse: func(ctx context.Context, s *inject.State) error {
			if resp := pipeline.CurrentResponse(s); resp != nil {
				resp.AddHeader(cfg.HeaderName, RequestIDFrom(s))
			}
			return nil
		},
	}
}

// RequestIDFrom retrieves the request ID from the execution state, or the
// empty string when the hook is not installed.
func RequestIDFrom(s *inject.State) string {
	id, _ := inject.Slot[string](s, requestIDSlot)
	return id
}
