// Package router resolves request paths to route descriptors.
//
// Routes are immutable after construction: patterns are compiled once by
// New, and Lookup/ReverseURL are safe for concurrent use across requests.
//
// Patterns are segment-based. A segment of the form {name} captures one
// path segment; a final segment of the form {+name} captures the remainder
// of the path, which suits standalone handlers that own a subtree (static
// files, raw protocol endpoints).
package router
