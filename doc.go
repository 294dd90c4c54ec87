// Package cascade provides a fault-tolerant dispatch core for HTTP and
// WebSocket handlers. Requests flow through an ordered chain of steps
// assembled from registered event hooks; failures anywhere in the chain
// descend an explicit recovery ladder that guarantees exactly one
// terminal response per request.
//
// # Package Organization
//
//	github.com/dmitrymomot/cascade/core/config   - Type-safe environment variable loading
//	github.com/dmitrymomot/cascade/core/hook     - Event hook records and ordered registry
//	github.com/dmitrymomot/cascade/core/inject   - Step execution over a named-slot state
//	github.com/dmitrymomot/cascade/core/logger   - Structured logging built on slog
//	github.com/dmitrymomot/cascade/core/pipeline - Dispatch pipeline and recovery ladder
//	github.com/dmitrymomot/cascade/core/response - Response values and HTTP error taxonomy
//	github.com/dmitrymomot/cascade/core/router   - Route table with lookup and URL reversal
//	github.com/dmitrymomot/cascade/core/server   - HTTP server with graceful shutdown
//	github.com/dmitrymomot/cascade/core/ws       - WebSocket connection state machine
//	github.com/dmitrymomot/cascade/hooks         - Ready-made logging, request ID, and metrics hooks
//
// # Getting Started
//
// Build a router from routes, wrap it in a pipeline, and serve it:
//
//	r, err := router.New(
//		router.Route{Method: "GET", Pattern: "/ping", Handler: pingHandler},
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	p := pipeline.New(r, pipeline.WithHooks(hooks.Logging(logger)))
//	srv := server.New(":8080")
//	err = srv.Start(ctx, p)
package cascade
