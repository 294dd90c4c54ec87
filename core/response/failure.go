package response

// Failure is the captured error and trace attached to a response produced
// by an error path. Debug mode re-raises it to the surrounding transport;
// otherwise it is carried for observability only.
type Failure struct {
	// Err is the error that terminated handler execution.
	Err error

	// Stack is the stack trace captured at the failure point, when one was
	// available.
	Stack []byte
}
