package player

import (
	"github.com/google/uuid"
	"pokertable-server/pkg/deck"
)

// Record is the per-seat state of a registered player.
// Records are owned and mutated by the engine; everyone else sees a View.
type Record struct {
	ID   string
	Name string

	Hand       deck.Hand
	CurrentBet float64

	Folded        bool
	IsDealer      bool
	IsCurrentTurn bool
}

// NewRecord returns a record with a newly assigned unique ID
func NewRecord(name string) *Record {
	return &Record{
		ID:   uuid.New().String(),
		Name: name,
		Hand: make(deck.Hand, 0, 2),
	}
}

func (r *Record) String() string {
	if r.Name == "" {
		return "No Name"
	}

	return r.Name
}

// NewRound clears the per-round state. The hand is left for the next deal to replace.
func (r *Record) NewRound() {
	r.CurrentBet = 0
	r.Folded = false
}

// View returns a read-only copy of the record
func (r *Record) View() View {
	return View{
		ID:            r.ID,
		Name:          r.Name,
		Hand:          r.Hand.Clone(),
		CurrentBet:    r.CurrentBet,
		Folded:        r.Folded,
		IsDealer:      r.IsDealer,
		IsCurrentTurn: r.IsCurrentTurn,
	}
}

// View is an immutable copy of a Record handed to observers
type View struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Hand          deck.Hand `json:"hand"`
	CurrentBet    float64   `json:"currentBet"`
	Folded        bool      `json:"folded"`
	IsDealer      bool      `json:"isDealer"`
	IsCurrentTurn bool      `json:"isCurrentTurn"`
}

// WithoutHand returns the view with the cards hidden, for sending to other players
func (v View) WithoutHand() View {
	v.Hand = deck.Hand{}
	return v
}
