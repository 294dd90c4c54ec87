// Package hook derives ordered callback lists from registered event hooks.
//
// A Hook is a record of three optional callbacks interposed around handler
// execution: OnRequest runs before the handler, OnResponse runs after
// rendering, and OnError runs when the recovery ladder reaches its final
// level. A hook participates in a phase only when the corresponding field
// is non-nil; absence is not an error.
//
// Hooks wrap the request like layers of an onion: OnRequest callbacks run
// in registration order, while OnResponse and OnError callbacks run in
// reverse registration order, so the hook registered last is the first to
// observe the response on the way out.
//
// Hooks that need per-request state are registered through AddFactory; the
// factory is invoked once per derivation, giving each request its own hook
// instance.
package hook
