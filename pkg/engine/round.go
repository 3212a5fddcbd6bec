package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// DealHand resets the deck and deals two cards to every player in registration order.
// If the deck cannot supply every player, ErrDeckExhausted is returned and no hand is changed.
func (e *Engine) DealHand() error {
	if e.turn != TurnReady {
		return fmt.Errorf("%w: cannot deal while %s", ErrInvalidTurnState, e.turn)
	}

	e.turn = TurnDealing
	defer func() {
		e.turn = TurnReady
	}()

	if err := e.resetDeck(); err != nil {
		return err
	}

	e.community = e.community[:0]
	for _, p := range e.players {
		p.Hand = p.Hand[:0]
		for i := 0; i < cardsPerHand; i++ {
			card, err := e.deck.Pop()
			if err != nil {
				// CanDraw guarantees this never happens
				panic(err)
			}

			p.Hand.AddCard(card)
		}
	}

	e.logger.WithField("players", len(e.players)).Debug("hand dealt")
	return nil
}

// resetDeck shuffles a fresh deck and makes sure it can supply every player
func (e *Engine) resetDeck() error {
	e.deck.Reset()
	e.logger.WithField("deck", e.deck.HashCode()).Debug("deck shuffled")

	need := cardsPerHand * len(e.players)
	if !e.deck.CanDraw(need) {
		return fmt.Errorf("%w: need %d cards for %d players, have %d", ErrDeckExhausted, need, len(e.players), e.deck.CardsLeft())
	}

	return nil
}

// StartRound begins a new hand: per-round state is cleared, the dealer moves,
// cards are dealt and blinds are posted.
// If the deck cannot supply every player, nothing is changed.
func (e *Engine) StartRound() error {
	if len(e.players) == 0 {
		return ErrNoPlayers
	}

	if e.turn != TurnReady {
		return fmt.Errorf("%w: cannot start a round while %s", ErrInvalidTurnState, e.turn)
	}

	if err := e.resetDeck(); err != nil {
		return err
	}

	for _, p := range e.players {
		p.NewRound()
	}

	e.clearCurrentPlayer()
	e.AdvanceDealer()

	if err := e.DealHand(); err != nil {
		return err
	}

	e.round = RoundBlind
	e.logger.WithField("dealer", e.dealer.Name).Info("round started")

	return e.rules.PostBlinds(e.Snapshot())
}

// AdvanceRound moves the hand to the next stage, revealing community cards on
// the flop, turn and river, and settling bets at the showdown.
func (e *Engine) AdvanceRound() error {
	if e.turn != TurnReady {
		return fmt.Errorf("%w: cannot advance while %s", ErrInvalidTurnState, e.turn)
	}

	if e.round == RoundShowdown {
		return ErrRoundOver
	}

	next := e.round + 1
	if n := next.communityCards(); n > 0 {
		if err := e.reveal(n); err != nil {
			return err
		}
	}

	e.round = next
	e.clearCurrentPlayer()

	e.logger.WithFields(logrus.Fields{
		"round":     e.round,
		"community": e.community.String(),
	}).Debug("round advanced")

	if e.round == RoundShowdown {
		return e.rules.SettleBets(e.Snapshot())
	}

	return nil
}

// AdvanceRoundIfComplete advances only if the rules report the round is complete
func (e *Engine) AdvanceRoundIfComplete() (bool, error) {
	if e.round == RoundShowdown || !e.rules.RoundComplete(e.Snapshot()) {
		return false, nil
	}

	if err := e.AdvanceRound(); err != nil {
		return false, err
	}

	return true, nil
}

func (e *Engine) reveal(n int) error {
	if !e.deck.CanDraw(n) {
		return fmt.Errorf("%w: need %d community cards, have %d", ErrDeckExhausted, n, e.deck.CardsLeft())
	}

	e.turn = TurnDealing
	defer func() {
		e.turn = TurnReady
	}()

	for i := 0; i < n; i++ {
		card, err := e.deck.Pop()
		if err != nil {
			panic(err)
		}

		e.community.AddCard(card)
	}

	return nil
}
