// Package statemachine provides generic, type-safe transition tables for
// finite-state machines.
//
// A Table maps a (state, event) pair to the transitions declared for it. The
// package deliberately holds no "current state": callers own their state value
// and ask the table what happens next. This keeps transition logic pure and
// lets one package-level table serve many machine instances.
//
// The table handles:
//  1. Transition lookup in O(1) via map[From][Event][]Transition
//  2. Optional Guard evaluation over caller-supplied data to pick between branches
//  3. A Note per transition, the diagnostic a caller reports when taking it
//
// # Architecture
//
// States, events and guard data are type parameters. Any comparable type works
// for states and events, so small integer enums with a String method are the
// common choice. Construction uses the functional options pattern.
//
// Rich error types with helper predicates (e.g. IsNoTransitionAvailableError)
// allow callers to differentiate between "transition not declared" and
// "every guard rejected" cases.
//
// # Usage
//
//	type light int
//	const (
//	    off light = iota
//	    on
//	)
//
//	table := statemachine.MustNewTable(
//	    statemachine.WithTransition[light, string, struct{}](off, on, "toggle",
//	        statemachine.WithNote[light, string, struct{}]("lights on")),
//	    statemachine.WithTransition[light, string, struct{}](on, off, "toggle"),
//	)
//
//	tr, err := table.Resolve(off, "toggle", struct{}{})
//	// tr.To == on, tr.Note == "lights on"
//
// # Guards
//
// Guards branch on runtime data. When several transitions share a state and
// event, they are tried in declaration order and the first one whose guards
// all pass is selected:
//
//	hasStock := func(_ light, _ string, n int) bool { return n > 0 }
//
// Declaring a second transition behind an unguarded one for the same pair is
// rejected with ErrUnreachableTransition.
//
// # Error Handling
//
//	if statemachine.IsNoTransitionAvailableError(err) { /* ... */ }
//	if statemachine.IsTransitionRejectedError(err)   { /* ... */ }
//
// # Concurrency
//
// Table uses a RWMutex; Resolve, Can, Events and States only take the read
// lock and may be called concurrently.
package statemachine
