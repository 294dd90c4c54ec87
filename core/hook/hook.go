package hook

import (
	"context"

	"github.com/dmitrymomot/cascade/core/inject"
)

// Callback is cross-cutting logic invoked against the shared execution
// state at one phase of the dispatch pipeline.
type Callback func(ctx context.Context, s *inject.State) error

// Hook bundles the optional callbacks of one event hook. Nil fields mean
// the hook does not participate in that phase.
type Hook struct {
	OnRequest  Callback
	OnResponse Callback
	OnError    Callback
}

// Factory constructs a fresh Hook instance. Factories are invoked once per
// derivation so hooks can carry per-request state.
type Factory func() Hook

// Registry holds registered hooks and derives the three ordered callback
// lists used by the dispatch pipeline. Registration is not safe for
// concurrent use; Derive is.
type Registry struct {
	factories []Factory
}

// NewRegistry creates an empty hook registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers an already-instantiated hook. The same instance is shared
// across all derivations.
func (r *Registry) Add(h Hook) *Registry {
	r.factories = append(r.factories, func() Hook { return h })
	return r
}

// AddFactory registers a hook constructor, invoked once per derivation.
func (r *Registry) AddFactory(f Factory) *Registry {
	r.factories = append(r.factories, f)
	return r
}

// Len returns the number of registered hooks.
func (r *Registry) Len() int {
	return len(r.factories)
}

// Derive instantiates the registered hooks and returns the three ordered
// callback lists: onRequest in registration order, onResponse and onError
// in reverse registration order. Hooks without the corresponding callback
// are skipped.
func (r *Registry) Derive() (onRequest, onResponse, onError []Callback) {
	hooks := make([]Hook, len(r.factories))
	for i, f := range r.factories {
		hooks[i] = f()
	}

	for _, h := range hooks {
		if h.OnRequest != nil {
			onRequest = append(onRequest, h.OnRequest)
		}
	}
	for i := len(hooks) - 1; i >= 0; i-- {
		if hooks[i].OnResponse != nil {
			onResponse = append(onResponse, hooks[i].OnResponse)
		}
	}
	for i := len(hooks) - 1; i >= 0; i-- {
		if hooks[i].OnError != nil {
			onError = append(onError, hooks[i].OnError)
		}
	}
	return onRequest, onResponse, onError
}
