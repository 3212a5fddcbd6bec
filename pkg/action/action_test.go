package action

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	assertType := func(t *testing.T, s string, expected Type, name string) {
		t.Helper()

		a, err := FromString(s)
		assert.NoError(t, err)
		assert.Equal(t, expected, a)
		assert.Equal(t, name, a.String())
		assert.True(t, a.IsValid())
	}

	assertType(t, "fold", Fold, "Fold")
	assertType(t, "check", Check, "Check")
	assertType(t, "bet", Bet, "Bet")
	assertType(t, "call", Call, "Call")
	assertType(t, "raise", Raise, "Raise")

	_, err := FromString("discard")
	assert.EqualError(t, err, "unknown action for identifier: discard")
	assert.False(t, Type("discard").IsValid())
	assert.Equal(t, "Unknown(discard)", Type("discard").String())
}

func TestType_RequiresValue(t *testing.T) {
	a := assert.New(t)
	a.True(Bet.RequiresValue())
	a.True(Raise.RequiresValue())
	a.False(Fold.RequiresValue())
	a.False(Check.RequiresValue())
	a.False(Call.RequiresValue())
}

func TestType_LogMessage(t *testing.T) {
	a := assert.New(t)
	a.Equal("folded", Fold.LogMessage(0))
	a.Equal("bet 15", Bet.LogMessage(15))
	a.Equal("raised to 12.5", Raise.LogMessage(12.5))
	a.Equal("", Type("x").LogMessage(1))
}

func TestAction_Describe(t *testing.T) {
	a := assert.New(t)
	a.Equal("Player 1 Chose to Bet 15", NewWithValue("1", Bet, 15).Describe("Player 1"))
	a.Equal("Player 2 Chose to Fold", New("2", Fold).Describe("Player 2"))
	a.Equal("Player 2 Chose to Raise 0.5", NewWithValue("2", Raise, 0.5).Describe("Player 2"))
}

func TestAction_Amount(t *testing.T) {
	assert.Equal(t, 0.0, New("1", Bet).Amount())
	assert.Equal(t, 10.0, NewWithValue("1", Bet, 10).Amount())
}

func TestAction_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewWithValue("abc", Bet, 10))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"playerId":"abc","type":{"id":"bet","name":"Bet"},"value":10}`, string(b))

	b, err = json.Marshal(New("abc", Check))
	assert.NoError(t, err)
	assert.JSONEq(t, `{"playerId":"abc","type":{"id":"check","name":"Check"}}`, string(b))
}
