package router

import "github.com/dmitrymomot/cascade/core/inject"

// Route is an immutable route descriptor, created at application startup
// and read-only thereafter.
type Route struct {
	// Pattern is the path pattern, e.g. "/users/{id}".
	Pattern string

	// Method is the HTTP method the route answers to.
	Method string

	// Handler is the pipeline stage invoked for the route.
	Handler inject.Func

	// Name enables reverse URL lookup when non-empty.
	Name string

	// Standalone marks a route whose handler fully owns response
	// production: hooks, rendering, and the default finalizer are bypassed.
	Standalone bool

	// Documented controls whether the route appears in generated API
	// documentation.
	Documented bool
}
