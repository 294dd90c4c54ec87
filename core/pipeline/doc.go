// Package pipeline routes inbound requests and upgraded connections
// through event hooks, the route handler, rendering, and transport
// finalization, guaranteeing that exactly one response is produced even
// under nested failure.
//
// A Pipeline implements http.Handler. Plain requests run the
// request/response chain; websocket upgrade requests run the connection
// chain, in which the handler drives a ws.Conn through its lifecycle.
//
// # Chain assembly
//
// For a standalone route the chain is the handler alone: such routes own
// their response life cycle and bypass hooks, rendering, and the default
// finalizer. For every other route the chain is
//
//	on_request hooks -> handler -> render -> on_response hooks -> finalize
//
// executed by the inject runner against a per-request execution state.
//
// # Recovery ladder
//
// Failures escalate from the primary chain through two recovery levels,
// each with a declared entry condition:
//
//  1. Any error escaping the primary chain (including route lookup
//     failures) enters the exception handler. Recognized HTTP-class errors
//     are rendered into a structured response and the on_response hooks and
//     finalizer still run.
//  2. An error escaping level one runs the on_error hooks for their side
//     effects only, then unconditionally runs the generic error handler and
//     the finalizer, producing a fixed 500-class response.
//
// The ladder never lets an error escape: the caller always receives a
// materialized response, or for connections a terminal closed state. Debug
// mode changes only visibility (captured failures are re-raised to the
// surrounding transport) and never weakens that guarantee for non-debug
// deployments.
package pipeline
