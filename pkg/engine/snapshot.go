package engine

import (
	"pokertable-server/pkg/deck"
	"pokertable-server/pkg/player"
)

// Snapshot is a read-only copy of the game state for observers
type Snapshot struct {
	Players             []player.View `json:"players"`
	CurrentPlayers      []player.View `json:"currentPlayers"`
	CommunityCards      deck.Hand     `json:"communityCards"`
	CurrentPlayer       *player.View  `json:"currentPlayer"`
	Dealer              *player.View  `json:"dealer"`
	CurrentRoundType    RoundType     `json:"currentRoundType"`
	CurrentTurnState    TurnState     `json:"currentTurnState"`
	PotSize             float64       `json:"potSize"`
	PendingMessageCount int           `json:"pendingMessageCount"`
	PendingActionCount  int           `json:"pendingActionCount"`
	CardsLeft           int           `json:"cardsLeft"`
}

// Snapshot computes the current state. It has no side effects.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Players:             make([]player.View, 0, len(e.players)),
		CurrentPlayers:      make([]player.View, 0, len(e.players)),
		CommunityCards:      e.community.Clone(),
		CurrentRoundType:    e.round,
		CurrentTurnState:    e.turn,
		PendingMessageCount: e.messages.Len(),
		PendingActionCount:  e.actions.Len(),
		CardsLeft:           e.deck.CardsLeft(),
	}

	for _, p := range e.players {
		v := p.View()
		s.Players = append(s.Players, v)
		if !p.Folded {
			s.CurrentPlayers = append(s.CurrentPlayers, v)
			s.PotSize += p.CurrentBet
		}
	}

	if e.current != nil {
		v := e.current.View()
		s.CurrentPlayer = &v
	}

	if e.dealer != nil {
		v := e.dealer.View()
		s.Dealer = &v
	}

	return s
}

// ForPlayer returns a copy of the snapshot with every other player's cards hidden
func (s Snapshot) ForPlayer(id string) Snapshot {
	hide := func(views []player.View) []player.View {
		out := make([]player.View, len(views))
		for i, v := range views {
			if v.ID != id {
				v = v.WithoutHand()
			}
			out[i] = v
		}

		return out
	}

	s.Players = hide(s.Players)
	s.CurrentPlayers = hide(s.CurrentPlayers)
	if s.CurrentPlayer != nil && s.CurrentPlayer.ID != id {
		v := s.CurrentPlayer.WithoutHand()
		s.CurrentPlayer = &v
	}

	if s.Dealer != nil && s.Dealer.ID != id {
		v := s.Dealer.WithoutHand()
		s.Dealer = &v
	}

	return s
}

// Player returns the view of the player in the snapshot
func (s Snapshot) Player(id string) (player.View, bool) {
	for _, v := range s.Players {
		if v.ID == id {
			return v, true
		}
	}

	return player.View{}, false
}
