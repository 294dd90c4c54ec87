package inject

import "context"

// Func executes one pipeline stage against the shared state. The returned
// value is stored under the step's Provides slot; a non-nil error aborts
// the chain.
type Func func(ctx context.Context, s *State) (any, error)

// Step is one stage of an execution chain with a statically declared
// contract.
type Step struct {
	// Name identifies the step in logs and errors.
	Name string

	// Provides is the state slot the step's return value is stored under.
	// Empty means the return value is discarded.
	Provides string

	// Run is the step body.
	Run Func
}

// Run executes the steps in order against the state. Execution stops at the
// first failing step and its error is returned. A panic inside a step is
// recovered and returned as a *PanicError, leaving the state intact for a
// recovery chain to inspect.
func Run(ctx context.Context, steps []Step, s *State) error {
	for _, step := range steps {
		out, err := runStep(ctx, step, s)
		if err != nil {
			return err
		}
		if step.Provides != "" {
			s.Set(step.Provides, out)
		}
	}
	return nil
}

func runStep(ctx context.Context, step Step, s *State) (out any, err error) {
	defer func() {
		if p := recover(); p != nil {
			out = nil
			err = newPanicError(step.Name, p)
		}
	}()
	return step.Run(ctx, s)
}
