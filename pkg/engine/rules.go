package engine

import (
	"pokertable-server/pkg/action"
	"pokertable-server/pkg/player"
)

// Rules holds the parts of a betting round the engine deliberately leaves open.
// Blinds, call and raise amounts, and settlement belong to an implementation of
// this interface, not to the engine.
type Rules interface {
	// PostBlinds is called after the hand is dealt at the start of a round
	PostBlinds(s Snapshot) error

	// ApplyCall applies a call for the player when the action queue is drained
	ApplyCall(p *player.Record, a action.Action) error

	// ApplyRaise applies a raise for the player when the action queue is drained
	ApplyRaise(p *player.Record, a action.Action) error

	// RoundComplete reports whether the current round may advance
	RoundComplete(s Snapshot) bool

	// SettleBets is called when the showdown is reached
	SettleBets(s Snapshot) error
}

// StubRules leaves every extension point empty.
// Calls and raises do not change player state and nothing is settled.
type StubRules struct{}

var _ Rules = StubRules{}

// PostBlinds does nothing
func (StubRules) PostBlinds(Snapshot) error { return nil }

// ApplyCall does nothing
func (StubRules) ApplyCall(*player.Record, action.Action) error { return nil }

// ApplyRaise does nothing
func (StubRules) ApplyRaise(*player.Record, action.Action) error { return nil }

// RoundComplete is true once every submitted action has been executed
func (StubRules) RoundComplete(s Snapshot) bool {
	return s.PendingActionCount == 0
}

// SettleBets does nothing
func (StubRules) SettleBets(Snapshot) error { return nil }
