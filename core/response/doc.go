// Package response defines the materialized response value produced by the
// dispatch pipeline and the structured HTTP error taxonomy.
//
// A Response is built by a handler or by the pipeline's rendering and error
// paths, flows through the on-response hooks, and is immutable once handed
// to the transport finalizer. Header pairs are ordered and duplicates are
// legal, matching transport semantics.
//
// HTTPError is the recognized HTTP-class error: the pipeline's exception
// handler recovers it into a structured JSON response instead of escalating
// through the recovery ladder.
package response
