package pipeline

import (
	"errors"

	"github.com/dmitrymomot/cascade/core/inject"
	"github.com/dmitrymomot/cascade/core/response"
)

// raisedError is the finalizer's debug-mode signal: instead of emitting a
// normal reply, the captured failure must be re-raised to the surrounding
// transport. It escalates through the ladder like any other error and is
// rethrown once the final level completes.
type raisedError struct {
	failure *response.Failure
}

func (e *raisedError) Error() string {
	return "re-raising captured failure: " + e.failure.Err.Error()
}

// rethrow panics with the original failure so an outer debugging layer can
// present it. Panics that were captured into a PanicError resurface with
// their original value.
func (e *raisedError) rethrow() {
	var pe *inject.PanicError
	if errors.As(e.failure.Err, &pe) {
		panic(pe.Value())
	}
	panic(e.failure.Err)
}

// capture builds the failure record attached to generic error responses.
// Panic errors keep the stack captured at the panic point; plain errors
// carry no stack.
func capture(err error) *response.Failure {
	if err == nil {
		return nil
	}
	var pe *inject.PanicError
	if errors.As(err, &pe) {
		return &response.Failure{Err: err, Stack: pe.Stack()}
	}
	return &response.Failure{Err: err}
}
