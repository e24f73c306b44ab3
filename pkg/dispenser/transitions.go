package dispenser

import (
	"fmt"

	"github.com/dmitrymomot/dispenser/pkg/statemachine"
)

// Diagnostics written to the transcript. Wording is not load-bearing;
// the state/inventory transition paired with each call is.
const (
	MsgPaymentAccepted    = "payment accepted"
	MsgNothingToEject     = "nothing to eject"
	MsgInsertPaymentFirst = "insert payment first"
	MsgDuplicatePayment   = "payment already received, refunding duplicate"
	MsgPaymentReturned    = "payment returned"
	MsgDispensing         = "dispensing"
	MsgPleaseWait         = "please wait, payment refunded"
	MsgCannotRefund       = "cannot refund, dispensing in progress"
	MsgAlreadyDispensing  = "already dispensing"
	MsgOutOfStockRefund   = "out of stock, payment refunded"
	MsgNoPaymentToRefund  = "no payment to refund"
	MsgOutOfStock         = "out of stock"
	MsgUnitDispensed      = "unit dispensed"
	MsgRefundedOutOfStock = "payment refunded, out of stock"
)

type (
	transition = statemachine.Transition[State, Stimulus, int]
	guard      = statemachine.Guard[State, Stimulus, int]
)

var (
	moreThanOne guard = func(_ State, _ Stimulus, inventory int) bool { return inventory > 1 }
	exactlyOne  guard = func(_ State, _ Stimulus, inventory int) bool { return inventory == 1 }
)

// transitions is the complete table: every state answers every stimulus,
// and Sold additionally answers the internal dispense.
var transitions = statemachine.MustNewTable(
	statemachine.WithTransitions([]transition{
		{From: NoPayment, To: HasPayment, Event: InsertPayment, Note: MsgPaymentAccepted},
		{From: NoPayment, To: NoPayment, Event: EjectPayment, Note: MsgNothingToEject},
		{From: NoPayment, To: NoPayment, Event: TurnCrank, Note: MsgInsertPaymentFirst},

		{From: HasPayment, To: HasPayment, Event: InsertPayment, Note: MsgDuplicatePayment},
		{From: HasPayment, To: NoPayment, Event: EjectPayment, Note: MsgPaymentReturned},
		{From: HasPayment, To: Sold, Event: TurnCrank, Note: MsgDispensing},

		{From: Sold, To: Sold, Event: InsertPayment, Note: MsgPleaseWait},
		{From: Sold, To: Sold, Event: EjectPayment, Note: MsgCannotRefund},
		{From: Sold, To: Sold, Event: TurnCrank, Note: MsgAlreadyDispensing},
		{From: Sold, To: NoPayment, Event: dispense, Note: MsgUnitDispensed, Guards: []guard{moreThanOne}},
		{From: Sold, To: SoldOut, Event: dispense, Note: MsgUnitDispensed, Guards: []guard{exactlyOne}},
		{From: Sold, To: SoldOut, Event: dispense, Note: MsgRefundedOutOfStock},

		{From: SoldOut, To: SoldOut, Event: InsertPayment, Note: MsgOutOfStockRefund},
		{From: SoldOut, To: SoldOut, Event: EjectPayment, Note: MsgNoPaymentToRefund},
		{From: SoldOut, To: SoldOut, Event: TurnCrank, Note: MsgOutOfStock},
	}),
)

// Outcome describes what a single stimulus did to a machine.
type Outcome struct {
	Stimulus  Stimulus `json:"stimulus"`
	From      State    `json:"from"`
	To        State    `json:"state"`
	Inventory int      `json:"inventory"`
	Messages  []string `json:"messages"`
	Dispensed bool     `json:"dispensed"`
}

// Changed reports whether the stimulus moved the machine to another state.
func (o Outcome) Changed() bool {
	return o.From != o.To
}

// Step computes the effect of a stimulus without touching any machine.
// A transition into Sold chains the internal dispense in the same step, so
// Sold is the result only when it was already the starting state. Errors are returned only for values outside the
// declared domain; every legal stimulus in every state is a handled transition.
func Step(state State, stimulus Stimulus, inventory int) (Outcome, error) {
	if !state.Valid() {
		return Outcome{}, fmt.Errorf("%w: %d", ErrInvalidState, int(state))
	}
	if !stimulus.External() {
		return Outcome{}, fmt.Errorf("%w: %s", ErrUnknownStimulus, stimulus)
	}
	if inventory < 0 {
		return Outcome{}, fmt.Errorf("%w: %d", ErrNegativeInventory, inventory)
	}

	out := Outcome{
		Stimulus:  stimulus,
		From:      state,
		To:        state,
		Inventory: inventory,
	}

	tr, err := transitions.Resolve(state, stimulus, inventory)
	if err != nil {
		return Outcome{}, fmt.Errorf("resolve %s in %s: %w", stimulus, state, err)
	}
	out.To = tr.To
	out.Messages = append(out.Messages, tr.Note)

	if tr.To != Sold || tr.SelfLoop() {
		return out, nil
	}

	dtr, err := transitions.Resolve(Sold, dispense, inventory)
	if err != nil {
		return Outcome{}, fmt.Errorf("resolve %s in %s: %w", dispense, Sold, err)
	}
	if inventory > 0 {
		out.Inventory--
		out.Dispensed = true
	}
	out.To = dtr.To
	out.Messages = append(out.Messages, dtr.Note)

	return out, nil
}
