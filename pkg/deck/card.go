package deck

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit int

// suit constants
// The declaration order is the order used by Compare
const (
	Hearts Suit = iota
	Diamonds
	Spades
	Clubs
)

// Suits lists every suit in declaration order
var Suits = []Suit{Hearts, Diamonds, Spades, Clubs}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Spades:
		return "spades"
	case Clubs:
		return "clubs"
	}

	panic(fmt.Sprintf("unknown suit: %d", int(s)))
}

// MarshalText encodes the suit by name
func (s Suit) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s Suit) symbol() string {
	switch s {
	case Hearts:
		return "♡"
	case Diamonds:
		return "♢"
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	}

	panic("unknown suit")
}

// Rank is the face value of a card, 2 through 14
type Rank int

// face cards
const (
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// MinRank and MaxRank bound the valid ranks
const (
	MinRank Rank = 2
	MaxRank Rank = Ace
)

var rankNames = map[Rank]string{
	2: "Two", 3: "Three", 4: "Four", 5: "Five", 6: "Six", 7: "Seven", 8: "Eight",
	9: "Nine", 10: "Ten", Jack: "Jack", Queen: "Queen", King: "King", Ace: "Ace",
}

// Name returns the rank as a word (i.e., Queen)
func (r Rank) Name() string {
	if name, ok := rankNames[r]; ok {
		return name
	}

	return strconv.Itoa(int(r))
}

// Card is an individual playing card
// Cards are values; two cards with the same suit and rank are the same card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard returns the card of the given suit and rank
func NewCard(suit Suit, rank Rank) Card {
	return Card{Rank: rank, Suit: suit}
}

func (c Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(int(c.Rank))
	}

	return rank + c.Suit.symbol()
}

// Name returns the long name of the card (i.e., Ace of Hearts)
func (c Card) Name() string {
	suit := c.Suit.String()
	return fmt.Sprintf("%s of %s%s", c.Rank.Name(), strings.ToUpper(suit[:1]), suit[1:])
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c == card
}

// Compare orders two cards by suit only. The rank is not considered, so
// the Two and Ace of the same suit compare as equal.
func (c Card) Compare(card Card) int {
	switch {
	case c.Suit < card.Suit:
		return -1
	case c.Suit > card.Suit:
		return 1
	}

	return 0
}

// FileName returns the image resource key for the card.
// Face cards use the "2" artwork variant.
func (c Card) FileName() string {
	switch c.Rank {
	case Jack, Queen, King:
		return strings.ToLower(fmt.Sprintf("%s_of_%s2", c.Rank.Name(), c.Suit))
	case Ace:
		return strings.ToLower(fmt.Sprintf("%s_of_%s", c.Rank.Name(), c.Suit))
	}

	return fmt.Sprintf("%d_of_%s", c.Rank, c.Suit)
}

// MarshalJSON encodes the card along with its image key
func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Rank     Rank   `json:"rank"`
		Suit     Suit   `json:"suit"`
		FileName string `json:"fileName"`
	}{
		Rank:     c.Rank,
		Suit:     c.Suit,
		FileName: c.FileName(),
	})
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([hdsc])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [hdsc]
func CardFromString(s string) Card {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "h":
		suit = Hearts
	case "d":
		suit = Diamonds
	case "s":
		suit = Spades
	case "c":
		suit = Clubs
	}

	return Card{Rank: Rank(rank), Suit: suit}
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) Hand {
	if s == "" {
		return Hand{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make(Hand, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card Card) string {
	return fmt.Sprintf("%d%c", card.Rank, card.Suit.String()[0])
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
