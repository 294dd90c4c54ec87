// Package inject executes ordered chains of pipeline steps against a shared
// execution state.
//
// A Step declares its contract statically: a diagnostic name and the state
// slot its return value is stored under. The runner resolves nothing by
// reflection; steps read and write named slots through the State API, and the
// slot each step provides is fixed at chain construction time.
//
// Panics raised inside a step are recovered and returned as a *PanicError
// carrying the original panic value and the stack captured at the panic
// point, so a failed step never takes down the serving loop.
//
// A State is owned by exactly one in-flight request or connection and must
// not be shared across calls. Step chains themselves are immutable after
// construction and safe for concurrent use.
package inject
