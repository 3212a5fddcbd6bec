package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pokertable-server/pkg/deck"
)

func TestNewRecord(t *testing.T) {
	a := assert.New(t)

	r1 := NewRecord("Player 1")
	r2 := NewRecord("")

	a.NotEmpty(r1.ID)
	a.NotEqual(r1.ID, r2.ID)
	a.Equal("Player 1", r1.String())
	a.Equal("No Name", r2.String())
	a.Len(r1.Hand, 0)
	a.False(r1.Folded || r1.IsDealer || r1.IsCurrentTurn)
}

func TestRecord_View(t *testing.T) {
	a := assert.New(t)

	r := NewRecord("Player 1")
	r.Hand = deck.CardsFromString("14s,13s")
	r.CurrentBet = 15

	v := r.View()
	a.Equal(r.ID, v.ID)
	a.Equal(15.0, v.CurrentBet)

	// mutating the view does not reach the record
	v.Hand[0] = deck.CardFromString("2c")
	a.Equal("14s,13s", r.Hand.String())

	a.Len(v.WithoutHand().Hand, 0)
}

func TestRecord_NewRound(t *testing.T) {
	r := NewRecord("Player 1")
	r.CurrentBet = 20
	r.Folded = true
	r.NewRound()

	assert.Equal(t, 0.0, r.CurrentBet)
	assert.False(t, r.Folded)
}
