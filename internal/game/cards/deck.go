package cards

import (
	"math/rand"

	"github.com/mitchelldurbincs/conquest/internal/game/core"
)

// Deck holds the draw pile and the discard pile of a match.
type Deck struct {
	Draw    []Card `json:"deck"`
	Discard []Card `json:"discard_pile"`
}

// NewDeck returns a shuffled full deck with an empty discard pile.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{Draw: FullSet()}
	Shuffle(d.Draw, rng)
	return d
}

// Shuffle permutes cards uniformly in place (Fisher-Yates).
func Shuffle(cards []Card, rng *rand.Rand) {
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// DrawOne takes the top card. An empty draw pile is refilled from the
// shuffled discard pile first; core.ErrDeckExhausted is returned when both are empty.
func (d *Deck) DrawOne(rng *rand.Rand) (Card, bool, error) {
	reshuffled := false
	if len(d.Draw) == 0 {
		if len(d.Discard) == 0 {
			return Card{}, false, core.ErrDeckExhausted
		}
		d.Draw = d.Discard
		d.Discard = nil
		Shuffle(d.Draw, rng)
		reshuffled = true
	}
	top := d.Draw[len(d.Draw)-1]
	d.Draw = d.Draw[:len(d.Draw)-1]
	return top, reshuffled, nil
}

// DrawInto appends up to n cards to hand. It stops at the first exhaustion
// and reports how many were drawn and whether a reshuffle happened.
func (d *Deck) DrawInto(hand []Card, n int, rng *rand.Rand) ([]Card, int, bool, error) {
	drawn := 0
	reshuffled := false
	for i := 0; i < n; i++ {
		c, r, err := d.DrawOne(rng)
		if err != nil {
			return hand, drawn, reshuffled, err
		}
		reshuffled = reshuffled || r
		hand = append(hand, c)
		drawn++
	}
	return hand, drawn, reshuffled, nil
}

// AddToDiscard puts cards on the discard pile.
func (d *Deck) AddToDiscard(cards ...Card) {
	d.Discard = append(d.Discard, cards...)
}

// Clone returns an independent copy.
func (d *Deck) Clone() *Deck {
	return &Deck{
		Draw:    append([]Card(nil), d.Draw...),
		Discard: append([]Card(nil), d.Discard...),
	}
}

// RemoveIndices removes the cards at the given indices from hand and returns
// the removed cards and the remaining hand. Indices must be distinct and in range.
func RemoveIndices(hand []Card, indices []int) (removed, rest []Card, err error) {
	pick := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(hand) || pick[i] {
			return nil, hand, core.ErrInvalidCardSelection
		}
		pick[i] = true
	}
	for _, i := range indices {
		removed = append(removed, hand[i])
	}
	for i, c := range hand {
		if !pick[i] {
			rest = append(rest, c)
		}
	}
	return removed, rest, nil
}
