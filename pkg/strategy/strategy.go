// Package strategy contains decision policies for seats that are not driven by a remote player
package strategy

import (
	"pokertable-server/internal/rng"
	"pokertable-server/pkg/action"
	"pokertable-server/pkg/engine"
)

// Strategy decides the next action for the seat holding the turn.
// Strategies only produce actions; the caller submits them.
type Strategy interface {
	Decide(s engine.Snapshot) action.Action
}

// Step is one scripted decision
type Step struct {
	Type  action.Type
	Value float64
}

// Scripted replays a fixed list of steps, then checks forever
type Scripted struct {
	steps []Step
	next  int
}

var _ Strategy = (*Scripted)(nil)

// NewScripted returns a strategy that plays steps in order
func NewScripted(steps ...Step) *Scripted {
	return &Scripted{steps: steps}
}

// Decide implements Strategy
func (s *Scripted) Decide(snap engine.Snapshot) action.Action {
	id := currentID(snap)
	if s.next >= len(s.steps) {
		return action.New(id, action.Check)
	}

	step := s.steps[s.next]
	s.next++

	if step.Type.RequiresValue() {
		return action.NewWithValue(id, step.Type, step.Value)
	}

	return action.New(id, step.Type)
}

// Remaining returns how many scripted steps have not been played
func (s *Scripted) Remaining() int {
	return len(s.steps) - s.next
}

// Passive always checks
type Passive struct{}

// Decide implements Strategy
func (Passive) Decide(snap engine.Snapshot) action.Action {
	return action.New(currentID(snap), action.Check)
}

// Folder always folds
type Folder struct{}

// Decide implements Strategy
func (Folder) Decide(snap engine.Snapshot) action.Action {
	return action.New(currentID(snap), action.Fold)
}

// Random picks uniformly between check, fold and bet
type Random struct {
	gen    rng.Generator
	maxBet int
}

// NewRandom returns a random strategy. Bets are whole amounts from 1 to maxBet.
func NewRandom(gen rng.Generator, maxBet int) *Random {
	if gen == nil {
		gen = rng.Crypto{}
	}

	if maxBet < 1 {
		maxBet = 1
	}

	return &Random{gen: gen, maxBet: maxBet}
}

// Decide implements Strategy
func (r *Random) Decide(snap engine.Snapshot) action.Action {
	id := currentID(snap)
	switch r.gen.Intn(3) {
	case 0:
		return action.New(id, action.Check)
	case 1:
		return action.New(id, action.Fold)
	}

	return action.NewWithValue(id, action.Bet, float64(r.gen.Intn(r.maxBet)+1))
}

func currentID(snap engine.Snapshot) string {
	if snap.CurrentPlayer == nil {
		return ""
	}

	return snap.CurrentPlayer.ID
}
