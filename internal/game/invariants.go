package game

import (
	"errors"
	"fmt"

	"github.com/mitchelldurbincs/conquest/internal/game/cards"
	"github.com/mitchelldurbincs/conquest/internal/game/core"
)

// ErrInvariantViolation marks a state the rules can never produce.
var ErrInvariantViolation = errors.New("invariant violation")

// CheckInvariants verifies the state against the rules that must hold at
// every point of a match. Any violation is a bug in the match itself.
func (m *Match) CheckInvariants() error {
	var errs []error
	violation := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...)))
	}

	gs := m.gs
	for _, id := range gs.Board.Graph.TerritoryIDs() {
		t := gs.Board.Get(id)
		switch {
		case t.Owner == core.NeutralID && t.Troops != 0:
			violation("neutral territory %s holds %d troops", id, t.Troops)
		case t.Owner != core.NeutralID && gs.Player(t.Owner) == nil:
			violation("territory %s owned by unknown player %d", id, t.Owner)
		case t.Owner != core.NeutralID && t.Troops < 1:
			violation("territory %s owned by player %d holds %d troops", id, t.Owner, t.Troops)
		}
	}

	seen := make(map[cards.Card]int, cards.DeckSize)
	total := 0
	count := func(cs []cards.Card) {
		for _, c := range cs {
			seen[c]++
			total++
		}
	}
	count(gs.Deck.Draw)
	count(gs.Deck.Discard)
	for _, p := range gs.Players {
		count(p.Hand)
	}
	if total != cards.DeckSize {
		violation("%d cards in play, want %d", total, cards.DeckSize)
	}
	for c, n := range seen {
		if n != 1 {
			violation("card %s appears %d times", c, n)
		}
	}

	for _, p := range gs.Players {
		if p.ArmiesToDeploy < 0 {
			violation("player %d has a negative pool of %d", p.ID, p.ArmiesToDeploy)
		}
		if p.Alive != (gs.Board.CountOwned(p.ID) > 0) {
			violation("player %d alive=%t with %d territories", p.ID, p.Alive, gs.Board.CountOwned(p.ID))
		}
	}

	if !m.fogHolds() {
		violation("revealed territories do not cover every human-owned territory and its neighbors")
	}
	return errors.Join(errs...)
}
