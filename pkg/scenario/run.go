package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/dmitrymomot/dispenser/pkg/dispenser"
)

// Result is what a scenario run produced.
type Result struct {
	Scenario string              `json:"scenario"`
	Outcomes []dispenser.Outcome `json:"outcomes"`
	Final    dispenser.Status    `json:"final"`
}

// Messages flattens the diagnostics of every outcome in order.
func (r Result) Messages() []string {
	var msgs []string
	for _, o := range r.Outcomes {
		msgs = append(msgs, o.Messages...)
	}
	return msgs
}

// Dispensed counts the units handed out during the run.
func (r Result) Dispensed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Dispensed {
			n++
		}
	}
	return n
}

// Run validates s, builds a machine with its inventory and plays the steps,
// writing the transcript to w. Machine diagnostics and inventory reports are
// written one per line in call order. The expectation, if any, is checked
// last; a mismatch returns the full result along with ErrExpectationFailed.
func Run(ctx context.Context, s Scenario, w io.Writer, opts ...dispenser.Option) (Result, error) {
	if err := s.Validate(); err != nil {
		return Result{Scenario: s.Name}, err
	}
	if w == nil {
		w = io.Discard
	}

	m, err := dispenser.New(s.Inventory, append(slices.Clone(opts), dispenser.WithOutput(w))...)
	if err != nil {
		return Result{Scenario: s.Name}, err
	}

	res := Result{Scenario: s.Name, Outcomes: make([]dispenser.Outcome, 0, len(s.Steps))}
	for i, step := range s.Steps {
		if err := ctx.Err(); err != nil {
			res.Final = m.Status()
			return res, errors.Join(ErrScenarioCancelled, err)
		}

		if step.isInventory() {
			if _, err := fmt.Fprintf(w, "inventory: %d\n", m.Inventory()); err != nil {
				return res, fmt.Errorf("step %d: write inventory report: %w", i+1, err)
			}
			continue
		}

		stimulus, _ := step.Stimulus()
		out, err := m.Apply(ctx, stimulus)
		if err != nil {
			return res, fmt.Errorf("step %d: %w", i+1, err)
		}
		res.Outcomes = append(res.Outcomes, out)
	}

	res.Final = m.Status()
	return res, s.Expect.Check(res)
}
