package pipeline

import (
	"log/slog"

	"github.com/dmitrymomot/cascade/core/hook"
	"github.com/dmitrymomot/cascade/core/ws"
)

// Config carries the per-application pipeline configuration.
type Config struct {
	// Debug re-raises captured failures to the surrounding transport
	// instead of emitting a normal error reply, so an outer debugging or
	// observability layer can present them. It never changes which
	// responses the recovery ladder produces for clients.
	Debug bool `env:"PIPELINE_DEBUG" envDefault:"false"`
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithConfig applies a loaded configuration value.
func WithConfig(cfg Config) Option {
	return func(p *Pipeline) {
		p.debug = cfg.Debug
	}
}

// WithDebug toggles debug-mode error surfacing.
func WithDebug(debug bool) Option {
	return func(p *Pipeline) {
		p.debug = debug
	}
}

// WithLogger sets the logger used for ladder diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithHooks attaches an event hook registry. Without one, all hook phases
// run empty.
func WithHooks(reg *hook.Registry) Option {
	return func(p *Pipeline) {
		p.hooks = reg
	}
}

// WithUpgradeOptions configures the websocket upgrade transport used for
// connection calls.
func WithUpgradeOptions(opts ...ws.UpgradeOption) Option {
	return func(p *Pipeline) {
		p.upgradeOpts = opts
	}
}
