package cards

import (
	"testing"

	"github.com/mitchelldurbincs/conquest/internal/game/core"
	"github.com/mitchelldurbincs/conquest/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullSet(t *testing.T) {
	set := FullSet()
	require.Len(t, set, DeckSize)

	seen := make(map[Card]bool)
	for _, card := range set {
		assert.False(t, seen[card], "duplicate %s", card)
		seen[card] = true
	}
	assert.Equal(t, "A♠", Card{Suit: Spades, Rank: Ace}.String())
	assert.Equal(t, "10♥", Card{Suit: Hearts, Rank: 10}.String())
}

func TestRankValues(t *testing.T) {
	ranks := []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
	for i, r := range ranks {
		assert.Equal(t, Rank(i+2), r)
	}
	assert.Equal(t, "5♦", Card{Suit: Diamonds, Rank: Five}.String())
	assert.Equal(t, "9♣", Card{Suit: Clubs, Rank: Nine}.String())
}

func TestNewDeck_IsPermutation(t *testing.T) {
	d := NewDeck(testutil.NewTestRNG(12345))
	assert.Len(t, d.Draw, DeckSize)
	assert.Empty(t, d.Discard)
	assert.ElementsMatch(t, FullSet(), d.Draw)
	assert.NotEqual(t, FullSet(), d.Draw)
}

func TestDeck_DrawReshufflesDiscard(t *testing.T) {
	rng := testutil.NewTestRNG(7)
	d := &Deck{Draw: []Card{c(2, Hearts)}, Discard: []Card{c(3, Hearts), c(4, Hearts)}}

	first, reshuffled, err := d.DrawOne(rng)
	require.NoError(t, err)
	assert.False(t, reshuffled)
	assert.Equal(t, c(2, Hearts), first)

	second, reshuffled, err := d.DrawOne(rng)
	require.NoError(t, err)
	assert.True(t, reshuffled)
	assert.Empty(t, d.Discard)
	assert.Len(t, d.Draw, 1)
	assert.ElementsMatch(t, []Card{c(3, Hearts), c(4, Hearts)}, append(d.Draw, second))
}

func TestDeck_DrawExhausted(t *testing.T) {
	rng := testutil.NewTestRNG(7)
	d := &Deck{Draw: []Card{c(2, Hearts)}}

	hand, drawn, _, err := d.DrawInto(nil, 3, rng)

	assert.ErrorIs(t, err, core.ErrDeckExhausted)
	assert.Equal(t, 1, drawn)
	assert.Len(t, hand, 1)
}

func TestDeck_Conservation(t *testing.T) {
	rng := testutil.NewTestRNG(12345)
	d := NewDeck(rng)
	var hands [3][]Card
	for i := range hands {
		hands[i], _, _, _ = d.DrawInto(nil, 5, rng)
	}

	// Cycle through many discards and draws so the deck reshuffles repeatedly.
	for round := 0; round < 200; round++ {
		p := round % len(hands)
		var removed []Card
		var err error
		removed, hands[p], err = RemoveIndices(hands[p], []int{0})
		require.NoError(t, err)
		d.AddToDiscard(removed...)
		hands[p], _, _, err = d.DrawInto(hands[p], 1, rng)
		require.NoError(t, err)
	}

	all := append(append([]Card(nil), d.Draw...), d.Discard...)
	for _, h := range hands {
		all = append(all, h...)
	}
	assert.ElementsMatch(t, FullSet(), all)
}

func TestRemoveIndices(t *testing.T) {
	hand := []Card{c(2, Hearts), c(3, Hearts), c(4, Hearts), c(5, Hearts)}

	removed, rest, err := RemoveIndices(hand, []int{3, 1})
	require.NoError(t, err)
	assert.Equal(t, []Card{c(5, Hearts), c(3, Hearts)}, removed)
	assert.Equal(t, []Card{c(2, Hearts), c(4, Hearts)}, rest)

	_, _, err = RemoveIndices(hand, []int{0, 0})
	assert.ErrorIs(t, err, core.ErrInvalidCardSelection)
	_, _, err = RemoveIndices(hand, []int{4})
	assert.ErrorIs(t, err, core.ErrInvalidCardSelection)
}

func TestDeck_Clone(t *testing.T) {
	d := NewDeck(testutil.NewTestRNG(1))
	cp := d.Clone()
	cp.Draw[0] = Card{}
	assert.NotEqual(t, d.Draw[0], cp.Draw[0])
}
