package hooks

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/cascade/core/hook"
	"github.com/dmitrymomot/cascade/core/inject"
	"github.com/dmitrymomot/cascade/core/logger"
	"github.com/dmitrymomot/cascade/core/pipeline"
)

const loggingStartedAtSlot = "logging_started_at"

// LoggingConfig configures the request/response logging hook.
type LoggingConfig struct {
	// Logger is the slog logger to use (default: slog.Default()).
	Logger *slog.Logger

	// Level for request/response logging (default: slog.LevelInfo).
	// Responses with 4xx statuses log at warn, 5xx at error.
	Level slog.Level

	// Component name for structured logging (default: "pipeline").
	Component string

	// Skip suppresses logging for specific requests.
	Skip func(s *inject.State) bool
}

// Logging creates a request/response logging hook with default
// configuration.
func Logging(log *slog.Logger) hook.Hook {
	return LoggingWithConfig(LoggingConfig{Logger: log})
}

// LoggingWithConfig creates a request/response logging hook with custom
// configuration. It logs request start, completion with status and
// duration, and unrecovered errors reaching the final ladder level.
func LoggingWithConfig(cfg LoggingConfig) hook.Hook {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Level == 0 {
		cfg.Level = slog.LevelInfo
	}
	if cfg.Component == "" {
		cfg.Component = "pipeline"
	}

	return hook.Hook{
		OnRequest: func(ctx context.Context, s *inject.State) error {
			if cfg.Skip != nil && cfg.Skip(s) {
				return nil
			}
			s.Set(loggingStartedAtSlot, time.Now())

			req := pipeline.Request(s)
			attrs := []slog.Attr{
				logger.Component(cfg.Component),
				logger.Event("request"),
				logger.Method(req.Method),
				logger.Path(req.URL.Path),
				logger.RemoteAddr(req.RemoteAddr),
			}
			if id := RequestIDFrom(s); id != "" {
				attrs = append(attrs, logger.RequestID(id))
			}
			cfg.Logger.LogAttrs(ctx, cfg.Level, "request started", attrs...)
			return nil
		},

		OnResponse: func(ctx context.Context, s *inject.State) error {
			if cfg.Skip != nil && cfg.Skip(s) {
				return nil
			}

			req := pipeline.Request(s)
			attrs := []slog.Attr{
				logger.Component(cfg.Component),
				logger.Event("response"),
				logger.Method(req.Method),
				logger.Path(req.URL.Path),
			}
			if id := RequestIDFrom(s); id != "" {
				attrs = append(attrs, logger.RequestID(id))
			}
			if started, ok := inject.Slot[time.Time](s, loggingStartedAtSlot); ok {
				attrs = append(attrs, logger.Duration(time.Since(started)))
			}

			level := cfg.Level
			if resp := pipeline.CurrentResponse(s); resp != nil {
				status := resp.Status()
				attrs = append(attrs, logger.StatusCode(status))
				switch {
				case status >= 500:
					level = slog.LevelError
				case status >= 400:
					level = slog.LevelWarn
				}
			}
			cfg.Logger.LogAttrs(ctx, level, "request completed", attrs...)
			return nil
		},

		OnError: func(ctx context.Context, s *inject.State) error {
			req := pipeline.Request(s)
			cfg.Logger.LogAttrs(ctx, slog.LevelError, "request failed",
				logger.Component(cfg.Component),
				logger.Event("error"),
				logger.Method(req.Method),
				logger.Path(req.URL.Path),
				logger.Error(pipeline.LastError(s)),
			)
			return nil
		},
	}
}
