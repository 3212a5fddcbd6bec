package engine

import (
	"errors"

	"pokertable-server/pkg/deck"
)

// ErrDeckExhausted is returned when a deal needs more cards than the deck holds
var ErrDeckExhausted = deck.ErrDeckExhausted

// ErrUnknownPlayer is returned when an ID does not belong to a registered player
var ErrUnknownPlayer = errors.New("unknown player")

// ErrUnknownActionType is returned when a queued action is not one of the known types.
// This indicates a programming error, not bad input.
var ErrUnknownActionType = errors.New("unknown action type")

// ErrInvalidTurnState is returned when an operation is attempted from the wrong turn state
var ErrInvalidTurnState = errors.New("invalid turn state")

// ErrRoundOver is returned when advancing past the showdown
var ErrRoundOver = errors.New("round is over")

// ErrNoPlayers is returned when a round is started with nobody registered
var ErrNoPlayers = errors.New("no players registered")

// ErrInvalidValue is returned when an action carries a negative or non-finite amount
var ErrInvalidValue = errors.New("invalid action value")
