package inject

import (
	"fmt"
	"runtime/debug"
)

// PanicError wraps a panic recovered from a pipeline step, providing access
// to the original panic value and the stack trace captured at the panic
// point.
type PanicError struct {
	step  string
	value any
	stack []byte
}

func newPanicError(step string, value any) *PanicError {
	return &PanicError{
		step:  step,
		value: value,
		stack: debug.Stack(),
	}
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in step %s: %v", e.step, e.value)
}

// Step returns the name of the step that panicked.
func (e *PanicError) Step() string {
	return e.step
}

// Value returns the original panic value.
func (e *PanicError) Value() any {
	return e.value
}

// Stack returns the stack trace captured at the panic point.
func (e *PanicError) Stack() []byte {
	return e.stack
}

// Unwrap allows errors.Is/As to work with panics raised on error values.
func (e *PanicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
