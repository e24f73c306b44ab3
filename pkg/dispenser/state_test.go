package dispenser_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/dispenser/pkg/dispenser"
)

func TestParseStimulus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    dispenser.Stimulus
		wantErr bool
	}{
		{in: "insert", want: dispenser.InsertPayment},
		{in: "insert-payment", want: dispenser.InsertPayment},
		{in: "EJECT", want: dispenser.EjectPayment},
		{in: " eject-payment ", want: dispenser.EjectPayment},
		{in: "crank", want: dispenser.TurnCrank},
		{in: "Turn-Crank", want: dispenser.TurnCrank},
		{in: "dispense", wantErr: true},
		{in: "restock", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := dispenser.ParseStimulus(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, dispenser.ErrUnknownStimulus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseState(t *testing.T) {
	t.Parallel()

	for _, s := range dispenser.States() {
		got, err := dispenser.ParseState(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := dispenser.ParseState("NO_PAYMENT")
	require.NoError(t, err)
	assert.Equal(t, dispenser.NoPayment, got)

	_, err = dispenser.ParseState("broken")
	assert.ErrorIs(t, err, dispenser.ErrInvalidState)
}

func TestState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sold_out", dispenser.SoldOut.String())
	assert.Equal(t, "has_payment", dispenser.HasPayment.String())
	assert.Equal(t, "state(7)", dispenser.State(7).String())
	assert.False(t, dispenser.State(-1).Valid())
}

func TestStatus_JSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dispenser.Status{ID: "m-1", State: dispenser.NoPayment, Inventory: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"m-1","state":"no_payment","inventory":3}`, string(data))

	var st dispenser.Status
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","state":"sold_out","inventory":0}`), &st))
	assert.Equal(t, dispenser.SoldOut, st.State)

	_, err = json.Marshal(dispenser.Status{State: dispenser.State(42)})
	assert.Error(t, err)
}

func TestOutcome_JSON(t *testing.T) {
	t.Parallel()

	out, err := dispenser.Step(dispenser.HasPayment, dispenser.TurnCrank, 1)
	require.NoError(t, err)

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"stimulus": "turn-crank",
		"from": "has_payment",
		"state": "sold_out",
		"inventory": 0,
		"messages": ["dispensing", "unit dispensed"],
		"dispensed": true
	}`, string(data))
}
