// Package cards implements the 52-card deck, discard pile and the
// poker-style evaluation of three-card hands that grant attack bonuses.
package cards

import "fmt"

// Suit of a card.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// AllSuits lists the suits in deck order.
var AllSuits = []Suit{Clubs, Diamonds, Hearts, Spades}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return fmt.Sprintf("Suit(%d)", int(s))
	}
}

// Rank of a card; the value is the rank's poker value (J=11 ... A=14).
type Rank int

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Card is a single playing card.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func (c Card) String() string { return c.Rank.String() + c.Suit.String() }

// DeckSize is the number of distinct cards.
const DeckSize = 52

// FullSet returns every suit x rank combination once, in a fixed order.
func FullSet() []Card {
	out := make([]Card, 0, DeckSize)
	for _, s := range AllSuits {
		for r := Two; r <= Ace; r++ {
			out = append(out, Card{Suit: s, Rank: r})
		}
	}
	return out
}
