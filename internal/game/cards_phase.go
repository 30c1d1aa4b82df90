package game

import (
	"github.com/mitchelldurbincs/conquest/internal/game/cards"
	"github.com/mitchelldurbincs/conquest/internal/game/core"
	"github.com/mitchelldurbincs/conquest/internal/game/events"
	"github.com/mitchelldurbincs/conquest/internal/game/states"
)

// Card sub-turn skip reasons
const (
	skipReasonPassed     = "passed"
	skipReasonEliminated = "eliminated"
)

func (m *Match) expectCardTurn(pid int) (*Player, error) {
	if err := m.expect(pid, states.PhaseCardPlayRound); err != nil {
		return nil, err
	}
	p := m.gs.Player(pid)
	if p.HasPlayedCardsThisRound {
		return nil, core.ErrAlreadyPlayedCards
	}
	return p, nil
}

func (m *Match) playCards(pid int, indices []int) error {
	p, err := m.expectCardTurn(pid)
	if err != nil {
		return err
	}
	if len(indices) != 3 {
		return core.ErrInvalidCardSelection
	}
	played, rest, err := cards.RemoveIndices(p.Hand, indices)
	if err != nil {
		return err
	}
	kind := cards.Evaluate(played)
	if kind == cards.HandNone {
		return core.ErrNotAValidHand
	}

	bonus := m.bonuses.For(kind)
	p.Hand = rest
	m.gs.Deck.AddToDiscard(played...)
	drawn := m.draw(p, len(played))

	p.AttackBonus = &HandBonus{Kind: kind, Value: bonus}
	p.PlayedHand = played
	p.HasPlayedCardsThisRound = true
	p.Stats.HandsPlayed++
	m.publish(events.NewCardsPlayedEvent(m.id, pid, played, kind, bonus, drawn))

	m.turnProcessor.nextCardTurn()
	return nil
}

func (m *Match) discardCard(pid, index int) error {
	p, err := m.expectCardTurn(pid)
	if err != nil {
		return err
	}
	removed, rest, err := cards.RemoveIndices(p.Hand, []int{index})
	if err != nil {
		return err
	}

	p.Hand = rest
	m.gs.Deck.AddToDiscard(removed...)
	drawn := m.draw(p, 1)

	p.HasPlayedCardsThisRound = true
	p.Stats.CardsDiscarded++
	m.publish(events.NewCardDiscardedEvent(m.id, pid, removed[0], drawn))

	m.turnProcessor.nextCardTurn()
	return nil
}

func (m *Match) skipCards(pid int) error {
	p, err := m.expectCardTurn(pid)
	if err != nil {
		return err
	}
	p.HasPlayedCardsThisRound = true
	m.publish(events.NewCardsSkippedEvent(m.id, pid, skipReasonPassed, 0))

	m.turnProcessor.nextCardTurn()
	return nil
}

// draw refills a hand with up to n cards. Exhaustion of both piles is logged
// and the missing cards are simply not drawn.
func (m *Match) draw(p *Player, n int) int {
	pending := len(m.gs.Deck.Discard)
	hand, drawn, reshuffled, err := m.gs.Deck.DrawInto(p.Hand, n, m.rng)
	p.Hand = hand
	if reshuffled {
		m.publish(events.NewDeckReshuffledEvent(m.id, pending))
	}
	if err != nil {
		m.logger.Warn().
			Err(err).
			Int("player_id", p.ID).
			Int("requested", n).
			Int("drawn", drawn).
			Msg("Card draw skipped")
		m.publish(events.NewDeckExhaustedEvent(m.id, p.ID, n-drawn))
	}
	return drawn
}

// discardHand returns a player's whole hand to the discard pile.
func (m *Match) discardHand(p *Player) int {
	n := len(p.Hand)
	m.gs.Deck.AddToDiscard(p.Hand...)
	p.Hand = nil
	return n
}
