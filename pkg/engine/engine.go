package engine

import (
	"fmt"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"pokertable-server/internal/rng"
	"pokertable-server/pkg/action"
	"pokertable-server/pkg/deck"
	"pokertable-server/pkg/player"
	"pokertable-server/pkg/queue"
)

// cardsPerHand is the number of hole cards dealt to each player
const cardsPerHand = 2

// Engine is the authoritative state of one game session.
// It is not safe for concurrent use; callers must serialize access.
type Engine struct {
	logger logrus.FieldLogger
	rules  Rules
	clock  quartz.Clock

	deck      *deck.Deck
	players   []*player.Record
	byID      map[string]*player.Record
	community deck.Hand

	dealer  *player.Record
	current *player.Record

	round RoundType
	turn  TurnState

	actions  queue.FIFO[action.Action]
	messages queue.FIFO[Message]
}

// Options configures a new Engine
// Zero values select the defaults
type Options struct {
	Rules      Rules
	Clock      quartz.Clock
	DeckSource rng.Source
}

// New returns a new engine with no players registered
func New(logger logrus.FieldLogger, opts Options) *Engine {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	if opts.Rules == nil {
		opts.Rules = StubRules{}
	}

	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}

	return &Engine{
		logger:    logger,
		rules:     opts.Rules,
		clock:     opts.Clock,
		deck:      deck.NewWithSource(opts.DeckSource),
		players:   make([]*player.Record, 0),
		byID:      make(map[string]*player.Record),
		community: make(deck.Hand, 0, 5),
		round:     RoundBlind,
		turn:      TurnReady,
	}
}

// RegisterPlayer seats a new player and returns the player's ID
// Registration is permanent for the life of the engine
func (e *Engine) RegisterPlayer(name string) string {
	p := player.NewRecord(name)
	e.players = append(e.players, p)
	e.byID[p.ID] = p

	e.logger.WithFields(logrus.Fields{
		"player": p.ID,
		"name":   p.Name,
	}).Debug("player registered")

	return p.ID
}

// Player returns a copy of the player's record
func (e *Engine) Player(id string) (player.View, bool) {
	p, ok := e.byID[id]
	if !ok {
		return player.View{}, false
	}

	return p.View(), true
}

// PlayerIDs returns the IDs of every registered player in registration order
func (e *Engine) PlayerIDs() []string {
	ids := make([]string, len(e.players))
	for i, p := range e.players {
		ids[i] = p.ID
	}

	return ids
}

func (e *Engine) lookup(id string) (*player.Record, error) {
	p, ok := e.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
	}

	return p, nil
}

// AdvanceDealer moves the dealer to the next registered player, wrapping around.
// If there is no dealer yet, the first registered player is treated as the
// current dealer, so the second player deals first.
func (e *Engine) AdvanceDealer() {
	n := len(e.players)
	if n == 0 {
		return
	}

	index := 0
	if e.dealer != nil {
		index = e.indexOf(e.dealer)
	}

	for _, p := range e.players {
		p.IsDealer = false
	}

	e.dealer = e.players[(index+1)%n]
	e.dealer.IsDealer = true

	e.logger.WithField("dealer", e.dealer.Name).Debug("dealer advanced")
}

func (e *Engine) indexOf(p *player.Record) int {
	for i, candidate := range e.players {
		if candidate == p {
			return i
		}
	}

	return 0
}

// SetCurrentPlayer gives the turn to the player
// This is the only way turn ownership changes
func (e *Engine) SetCurrentPlayer(id string) error {
	p, err := e.lookup(id)
	if err != nil {
		return err
	}

	for _, other := range e.players {
		other.IsCurrentTurn = false
	}

	e.current = p
	p.IsCurrentTurn = true
	return nil
}

func (e *Engine) clearCurrentPlayer() {
	for _, p := range e.players {
		p.IsCurrentTurn = false
	}

	e.current = nil
}

// BeginTurn gives the turn to the player and waits for their action
func (e *Engine) BeginTurn(id string) error {
	if e.turn != TurnReady {
		return fmt.Errorf("%w: cannot begin a turn while %s", ErrInvalidTurnState, e.turn)
	}

	if err := e.SetCurrentPlayer(id); err != nil {
		return err
	}

	e.turn = TurnAwaitingPlayer
	return nil
}

// EndTurn abandons the wait for the current player and returns the engine to ready.
// Actions the player has not submitted are simply never queued.
func (e *Engine) EndTurn() error {
	if e.turn != TurnAwaitingPlayer {
		return fmt.Errorf("%w: no turn to end while %s", ErrInvalidTurnState, e.turn)
	}

	e.clearCurrentPlayer()
	e.turn = TurnReady
	return nil
}

// TurnState returns what the engine is currently doing
func (e *Engine) TurnState() TurnState {
	return e.turn
}

// RoundType returns the current stage of the hand
func (e *Engine) RoundType() RoundType {
	return e.round
}

// CardsLeft returns the number of cards remaining in the deck
func (e *Engine) CardsLeft() int {
	return e.deck.CardsLeft()
}
