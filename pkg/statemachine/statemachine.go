package statemachine

// Guard evaluates whether a transition may be taken for the given runtime data.
type Guard[S, E comparable, D any] func(from S, event E, data D) bool

// Transition defines a state change triggered by an event, with optional guards.
// A transition whose From equals To is a handled event that leaves the state unchanged.
type Transition[S, E comparable, D any] struct {
	From   S
	To     S
	Event  E
	Guards []Guard[S, E, D] // All must pass for the transition to be selected
	Note   string           // Diagnostic reported when the transition is taken
}

// SelfLoop reports whether taking the transition leaves the state unchanged.
func (t Transition[S, E, D]) SelfLoop() bool {
	return t.From == t.To
}

// allows reports whether every guard of the transition passes.
func (t Transition[S, E, D]) allows(data D) bool {
	for _, guard := range t.Guards {
		if guard != nil && !guard(t.From, t.Event, data) {
			return false
		}
	}
	return true
}
