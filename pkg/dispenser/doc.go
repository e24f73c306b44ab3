// Package dispenser implements a payment-gated unit dispenser as an explicit
// finite-state machine with four states and a bounded inventory counter.
//
// # States and stimuli
//
// A Machine is always in exactly one of SoldOut, NoPayment, HasPayment or Sold.
// Callers send three stimuli: InsertPayment, EjectPayment and TurnCrank. Every
// stimulus is answered in every state; the ones that make no sense (cranking
// without paying, ejecting from an empty slot) produce a diagnostic and leave
// the state alone. Nothing here returns an error for a bad button press.
//
//	            insert               crank
//	NoPayment ─────────▶ HasPayment ──────▶ Sold ──dispense──▶ NoPayment
//	    ▲                    │                         └──────▶ SoldOut (last unit / empty)
//	    └──────── eject ─────┘
//
// Entering Sold runs the dispense step in the same call: with stock left the
// inventory drops by one and the machine returns to NoPayment, or to SoldOut
// when that was the last unit. SoldOut absorbs every further stimulus because
// there is no restock operation.
//
// # Architecture
//
// Transition logic lives in a package-level statemachine.Table and the pure
// function Step(state, stimulus, inventory). Machine only holds the current
// state and inventory and applies Step under a mutex; states hold no
// reference back to the machine.
//
// # Usage
//
//	m, err := dispenser.New(2, dispenser.WithOutput(os.Stdout))
//	if err != nil {
//	    return err // negative inventory
//	}
//
//	m.InsertPayment(ctx) // payment accepted
//	m.TurnCrank(ctx)     // dispensing / unit dispensed
//	fmt.Println(m.Status())
//
// # Concurrency
//
// Stimuli are serialized by the machine's lock, so a Machine can be shared by
// an HTTP host without extra locking. Step itself is safe to call from any
// goroutine.
package dispenser
