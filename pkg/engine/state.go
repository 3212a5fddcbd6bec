package engine

import "encoding/json"

// RoundType is the stage of a hand
type RoundType int

// constants for RoundType
const (
	RoundBlind RoundType = iota
	RoundPreFlop
	RoundFlop
	RoundTurn
	RoundRiver
	RoundShowdown
)

func (r RoundType) String() string {
	switch r {
	case RoundBlind:
		return "blind"
	case RoundPreFlop:
		return "pre-flop"
	case RoundFlop:
		return "flop"
	case RoundTurn:
		return "turn"
	case RoundRiver:
		return "river"
	case RoundShowdown:
		return "showdown"
	}

	return ""
}

// MarshalJSON encodes JSON
func (r RoundType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(r),
		Name: r.String(),
	})
}

// communityCards returns how many cards are revealed when entering the round
func (r RoundType) communityCards() int {
	switch r {
	case RoundFlop:
		return 3
	case RoundTurn, RoundRiver:
		return 1
	}

	return 0
}

// TurnState is what the engine is doing within a round
type TurnState int

// constants for TurnState
const (
	TurnReady TurnState = iota
	TurnDealing
	TurnExecuting
	TurnAwaitingPlayer
)

func (t TurnState) String() string {
	switch t {
	case TurnReady:
		return "ready"
	case TurnDealing:
		return "dealing"
	case TurnExecuting:
		return "executing"
	case TurnAwaitingPlayer:
		return "awaiting-player"
	}

	return ""
}

// MarshalJSON encodes JSON
func (t TurnState) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(t),
		Name: t.String(),
	})
}
