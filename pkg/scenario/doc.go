// Package scenario drives a dispenser through a scripted sequence of steps
// and records the console transcript.
//
// Scripts are YAML documents:
//
//	name: tissue
//	inventory: 1
//	steps: [inventory, insert, crank, inventory, crank, inventory, insert, crank]
//	expect:
//	  state: sold_out
//	  inventory: 0
//
// Each step is a stimulus name understood by dispenser.ParseStimulus or the
// special "inventory" step, which prints the current unit count. Run builds a
// fresh machine, plays the steps and checks the optional expectation; a
// mismatch is reported as ErrExpectationFailed together with the complete
// Result.
//
// A handful of scenarios ship with the package and are available through
// Builtin and BuiltinNames.
package scenario
