package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/dmitrymomot/cascade/core/hook"
	"github.com/dmitrymomot/cascade/core/inject"
	"github.com/dmitrymomot/cascade/core/logger"
	"github.com/dmitrymomot/cascade/core/router"
	"github.com/dmitrymomot/cascade/core/ws"
)

// ErrNoResponse indicates the finalizer ran without a rendered response in
// the execution state.
var ErrNoResponse = errors.New("no response to finalize")

// Pipeline dispatches inbound requests and upgraded connections. Immutable
// after construction and safe for concurrent use; all per-call mutable
// state lives in the inject.State owned by each call.
type Pipeline struct {
	router      *router.Router
	hooks       *hook.Registry
	logger      *slog.Logger
	debug       bool
	upgradeOpts []ws.UpgradeOption
}

// New creates a dispatch pipeline over the given router.
func New(r *router.Router, opts ...Option) *Pipeline {
	p := &Pipeline{
		router: r,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ReverseURL builds the path for a named route.
func (p *Pipeline) ReverseURL(name string, params map[string]string) (string, error) {
	return p.router.ReverseURL(name, params)
}

// ServeHTTP implements http.Handler. Upgrade requests run the connection
// chain; everything else runs the request/response chain.
func (p *Pipeline) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if websocket.IsWebSocketUpgrade(r) {
		p.serveConn(w, r)
		return
	}
	p.serveRequest(w, r)
}

func (p *Pipeline) serveRequest(w http.ResponseWriter, r *http.Request) {
	s := inject.NewState()
	s.Set(SlotRequest, r)
	s.Set(SlotWriter, newWriteTracker(w))
	s.Set(SlotErr, nil)

	p.dispatch(r.Context(), s, r.URL.Path, r.Method, variant{
		render:       inject.Step{Name: "render", Provides: SlotResponse, Run: p.renderResponse},
		exception:    inject.Step{Name: "exception_handler", Provides: SlotResponse, Run: p.exceptionHandler},
		errorHandler: inject.Step{Name: "error_handler", Provides: SlotResponse, Run: p.errorHandler},
		finalize:     inject.Step{Name: "finalize", Run: p.finalizeRequest},
	})
}

func (p *Pipeline) serveConn(w http.ResponseWriter, r *http.Request) {
	s := inject.NewState()
	s.Set(SlotRequest, r)
	s.Set(SlotConn, ws.NewConn(ws.Upgrade(w, r, p.upgradeOpts...)))
	s.Set(SlotErr, nil)

	p.dispatch(r.Context(), s, r.URL.Path, r.Method, variant{
		render:       inject.Step{Name: "render_ws", Provides: SlotResponse, Run: p.renderConnResponse},
		exception:    inject.Step{Name: "ws_exception_handler", Provides: SlotResponse, Run: p.connExceptionHandler},
		errorHandler: inject.Step{Name: "ws_error_handler", Provides: SlotResponse, Run: p.connErrorHandler},
		finalize:     inject.Step{Name: "finalize_ws", Run: p.finalizeConn},
	})
}

// variant carries the transport-specific stages of the dispatch chain.
type variant struct {
	render       inject.Step
	exception    inject.Step
	errorHandler inject.Step
	finalize     inject.Step
}

// dispatch runs the assembled chain through the recovery ladder. Each level
// has a declared entry condition; the final level is guaranteed terminal.
func (p *Pipeline) dispatch(ctx context.Context, s *inject.State, path, method string, v variant) {
	var onRequest, onResponse, onError []hook.Callback
	if p.hooks != nil {
		onRequest, onResponse, onError = p.hooks.Derive()
	}

	err := p.runPrimary(ctx, s, path, method, onRequest, onResponse, v)
	if err == nil {
		return
	}

	// Level one: recognized failures recover into a structured response;
	// on_response hooks and the finalizer still run.
	s.Set(SlotErr, err)
	steps := make([]inject.Step, 0, len(onResponse)+2)
	steps = append(steps, v.exception)
	steps = append(steps, hookSteps("on_response", onResponse)...)
	steps = append(steps, v.finalize)
	err = inject.Run(ctx, steps, s)
	if err == nil {
		return
	}

	// Level two: on_error hooks run for observability only. Whatever their
	// outcome, the generic error handler and the finalizer run and produce
	// the terminal output.
	s.Set(SlotErr, err)
	if hookErr := inject.Run(ctx, hookSteps("on_error", onError), s); hookErr != nil {
		p.logger.ErrorContext(ctx, "on_error hook failed", logger.Error(hookErr))
	}
	if err := inject.Run(ctx, []inject.Step{v.errorHandler, v.finalize}, s); err != nil {
		var re *raisedError
		if errors.As(err, &re) {
			re.rethrow()
		}
		p.logger.ErrorContext(ctx, "finalization failed",
			logger.Error(err),
			slog.String("path", path),
			slog.String("method", method),
		)
	}
}

func (p *Pipeline) runPrimary(ctx context.Context, s *inject.State, path, method string, onRequest, onResponse []hook.Callback, v variant) error {
	route, params, err := p.router.Lookup(path, method)
	if err != nil {
		return err
	}
	s.Set(SlotRoute, route)
	s.Set(SlotPathParams, params)

	handler := inject.Step{Name: "handler", Provides: SlotReturnValue, Run: route.Handler}

	// Standalone routes own their response life cycle: the chain is the
	// handler alone.
	if route.Standalone {
		return inject.Run(ctx, []inject.Step{handler}, s)
	}

	steps := make([]inject.Step, 0, len(onRequest)+len(onResponse)+3)
	steps = append(steps, hookSteps("on_request", onRequest)...)
	steps = append(steps, handler, v.render)
	steps = append(steps, hookSteps("on_response", onResponse)...)
	steps = append(steps, v.finalize)
	return inject.Run(ctx, steps, s)
}

func hookSteps(phase string, callbacks []hook.Callback) []inject.Step {
	steps := make([]inject.Step, len(callbacks))
	for i, cb := range callbacks {
		cb := cb
		steps[i] = inject.Step{
			Name: phase,
			Run: func(ctx context.Context, s *inject.State) (any, error) {
				return nil, cb(ctx, s)
			},
		}
	}
	return steps
}
