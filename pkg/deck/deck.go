package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"pokertable-server/internal/rng"
)

// ErrDeckExhausted is returned when a card is requested from an empty deck
var ErrDeckExhausted = errors.New("deck exhausted")

// Size is the number of cards in a full deck
const Size = 52

// Deck represents a playing deck
// The deck is a stack: the top card is the last element of Cards.
type Deck struct {
	Cards  []Card `json:"cards"`
	source rng.Source
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call Shuffle() or Reset() to shuffle the cards
func New() *Deck {
	return NewWithSource(rng.CryptoSeeded)
}

// NewWithSource returns an unshuffled deck that draws a generator from src on every shuffle
func NewWithSource(src rng.Source) *Deck {
	if src == nil {
		src = rng.CryptoSeeded
	}

	return &Deck{
		Cards:  BuildOrdered(),
		source: src,
	}
}

// BuildOrdered returns all 52 cards, suit-major and rank-minor
func BuildOrdered() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for rank := MinRank; rank <= MaxRank; rank++ {
			cards = append(cards, Card{Rank: rank, Suit: suit})
		}
	}

	return cards
}

// Shuffle will shuffle the cards currently in the deck in place (Fisher-Yates)
func (d *Deck) Shuffle() {
	gen := d.source()
	for i := len(d.Cards) - 1; i > 0; i-- {
		j := gen.Intn(i + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Reset replaces the contents with a full, freshly shuffled deck
func (d *Deck) Reset() {
	d.Cards = BuildOrdered()
	d.Shuffle()
}

// Pop removes and returns the top card
// If there are no more cards, ErrDeckExhausted is returned
func (d *Deck) Pop() (Card, error) {
	n := len(d.Cards)
	if n == 0 {
		return Card{}, ErrDeckExhausted
	}

	card := d.Cards[n-1]
	d.Cards = d.Cards[:n-1]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// HashCode returns a SHA1 hash code of the deck.
// Two decks with the same cards in the same order have the same hash.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}
