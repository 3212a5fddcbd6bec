package engine

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"pokertable-server/pkg/action"
)

// SubmitAction queues an action for the next drain and queues its description as a message.
// Player state is not changed until ExecuteQueuedActions runs. Amounts must be finite and not negative.
func (e *Engine) SubmitAction(a action.Action) error {
	p, err := e.lookup(a.PlayerID)
	if err != nil {
		return err
	}

	if a.Value != nil {
		if v := *a.Value; v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v", ErrInvalidValue, v)
		}
	}

	e.actions.Push(a)
	e.enqueueMessage(p.ID, a.Describe(p.String()))

	if e.turn == TurnAwaitingPlayer && e.current == p {
		e.turn = TurnReady
	}

	e.logger.WithFields(logrus.Fields{
		"player": p.Name,
		"action": a.Type,
	}).Debug("action queued")

	return nil
}

// PendingActionCount returns the number of actions waiting to be executed
func (e *Engine) PendingActionCount() int {
	return e.actions.Len()
}

// ExecuteQueuedActions drains the action queue in submission order.
// If an action cannot be applied, it is discarded, draining stops and the
// remaining actions stay queued for the next drain.
// Draining while a player is awaited applies the other seats' actions and keeps the wait.
func (e *Engine) ExecuteQueuedActions() error {
	prev := e.turn
	if prev != TurnReady && prev != TurnAwaitingPlayer {
		return fmt.Errorf("%w: cannot execute actions while %s", ErrInvalidTurnState, e.turn)
	}

	e.turn = TurnExecuting
	defer func() {
		e.turn = prev
	}()

	for {
		a, ok := e.actions.Pop()
		if !ok {
			return nil
		}

		if err := e.execute(a); err != nil {
			return err
		}
	}
}

func (e *Engine) execute(a action.Action) error {
	p, err := e.lookup(a.PlayerID)
	if err != nil {
		return err
	}

	switch a.Type {
	case action.Fold:
		p.Folded = true
	case action.Check:
	case action.Bet:
		// a bet replaces the previous amount
		p.CurrentBet = a.Amount()
	case action.Call:
		if err := e.rules.ApplyCall(p, a); err != nil {
			return err
		}
	case action.Raise:
		if err := e.rules.ApplyRaise(p, a); err != nil {
			return err
		}
	default:
		e.logger.WithField("action", string(a.Type)).Error("unknown action type in queue")
		return fmt.Errorf("%w: %s", ErrUnknownActionType, string(a.Type))
	}

	e.logger.WithFields(logrus.Fields{
		"player": p.Name,
		"action": a.Type,
	}).Debug(a.Type.LogMessage(a.Amount()))

	return nil
}
