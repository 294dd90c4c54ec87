package inject

// State is the mutable execution context shared by the steps of one
// request or connection. Slots are identified by name; the set of slot
// names a pipeline uses is fixed when its chains are built.
//
// A State is exclusive to a single in-flight call, so access is not
// synchronized.
type State struct {
	slots map[string]any
}

// NewState creates an empty execution state.
func NewState() *State {
	return &State{slots: make(map[string]any)}
}

// Set stores a value under the given slot name, replacing any previous value.
func (s *State) Set(name string, v any) {
	s.slots[name] = v
}

// Get returns the value stored under the given slot name, or nil.
func (s *State) Get(name string) any {
	return s.slots[name]
}

// Has reports whether the slot has been set, even to a nil value.
func (s *State) Has(name string) bool {
	_, ok := s.slots[name]
	return ok
}

// Slot returns the value under name asserted to T. The second return value
// is false when the slot is unset or holds a different type.
func Slot[T any](s *State, name string) (T, bool) {
	v, ok := s.slots[name].(T)
	return v, ok
}
