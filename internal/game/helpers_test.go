package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/conquest/internal/config"
	"github.com/mitchelldurbincs/conquest/internal/game/cards"
	"github.com/mitchelldurbincs/conquest/internal/game/core"
	"github.com/mitchelldurbincs/conquest/internal/game/events"
	"github.com/mitchelldurbincs/conquest/internal/game/rules"
	"github.com/mitchelldurbincs/conquest/internal/game/states"
	"github.com/mitchelldurbincs/conquest/internal/testutil"
)

func humans(names ...string) []PlayerConfig {
	out := make([]PlayerConfig, len(names))
	for i, n := range names {
		out[i] = PlayerConfig{Name: n}
	}
	return out
}

func newTestMatch(t *testing.T, territories int, players []PlayerConfig, dice rules.Dice) *Match {
	t.Helper()
	return newTestMatchWithConfig(t, territories, players, dice, nil)
}

func newTestMatchWithConfig(t *testing.T, territories int, players []PlayerConfig, dice rules.Dice, cfg *config.Config) *Match {
	t.Helper()
	m, err := SetupMatch(context.Background(), GameConfig{
		MatchID: "test-match",
		Players: players,
		Graph:   testutil.LineGraph(territories),
		Seed:    42,
		Dice:    dice,
		Logger:  testutil.NopLogger(),
		Config:  cfg,
	})
	require.NoError(t, err)
	return m
}

// setBoard replaces the dealt board. capitals are assigned to the players in
// seat order.
func setBoard(m *Match, owned map[core.TerritoryID]testutil.Owned, capitals ...core.TerritoryID) {
	m.gs.Board = testutil.BoardWith(m.gs.Board.Graph, owned)
	for i, c := range capitals {
		m.gs.Players[i].Capital = c
	}
	for i := range m.gs.Players {
		m.gs.Players[i].Alive = m.gs.Board.CountOwned(i) > 0
	}
	m.gs.Revealed = make(map[core.TerritoryID]bool)
	m.updatePlayerStats()
	m.revealFog()
	m.recorder.Drain()
}

// setHands replaces the first hands. Other seats give up any card handed
// out here and are topped up again, and the draw pile is rebuilt from the
// cards nobody holds.
func setHands(m *Match, hands ...[]cards.Card) {
	held := make(map[cards.Card]bool)
	for i, h := range hands {
		m.gs.Players[i].Hand = append([]cards.Card(nil), h...)
		for _, c := range h {
			held[c] = true
		}
	}

	var spare []cards.Card
	for _, c := range cards.FullSet() {
		if !held[c] {
			spare = append(spare, c)
		}
	}
	take := func() cards.Card {
		for i, c := range spare {
			if !held[c] {
				spare = spare[i+1:]
				held[c] = true
				return c
			}
		}
		panic("setHands: no spare cards")
	}

	for i := len(hands); i < len(m.gs.Players); i++ {
		p := &m.gs.Players[i]
		size := len(p.Hand)
		var kept []cards.Card
		for _, c := range p.Hand {
			if !held[c] {
				held[c] = true
				kept = append(kept, c)
			}
		}
		for len(kept) < size {
			kept = append(kept, take())
		}
		p.Hand = kept
	}

	var draw []cards.Card
	for _, c := range cards.FullSet() {
		if !held[c] {
			draw = append(draw, c)
		}
	}
	m.gs.Deck = &cards.Deck{Draw: draw}
}

func card(r cards.Rank, s cards.Suit) cards.Card {
	return cards.Card{Suit: s, Rank: r}
}

// skipCardRound passes the card sub-turn of every human seat.
func skipCardRound(t *testing.T, m *Match) {
	t.Helper()
	for m.Phase() == states.PhaseCardPlayRound {
		res := m.SkipCardPhase()
		require.NoError(t, res.Err)
	}
}

// deployAll places the whole pool of the acting player on one territory.
func deployAll(t *testing.T, m *Match, territory core.TerritoryID) {
	t.Helper()
	pool := m.gs.Players[m.gs.CurrentPlayer].ArmiesToDeploy
	res := m.Deploy(territory, pool)
	require.NoError(t, res.Err)
	require.Equal(t, states.PhaseAttack, m.Phase())
}

// duel is the usual two player board on a line of four territories:
// Alice holds the west with her capital on ta, Bob the east with td.
func duel(tb, tc int) map[core.TerritoryID]testutil.Owned {
	return map[core.TerritoryID]testutil.Owned{
		"ta": {Owner: 0, Troops: 3},
		"tb": {Owner: 0, Troops: tb},
		"tc": {Owner: 1, Troops: tc},
		"td": {Owner: 1, Troops: 3},
	}
}

// attackReady returns a two player match in Alice's attack phase on the duel
// board, with her reinforcements placed on ta.
func attackReady(t *testing.T, tb, tc int, dice rules.Dice) *Match {
	t.Helper()
	m := newTestMatch(t, 4, humans("Alice", "Bob"), dice)
	setBoard(m, duel(tb, tc), "ta", "td")
	skipCardRound(t, m)
	deployAll(t, m, "ta")
	return m
}

func eventsOfType(evs []events.Event, eventType string) []events.Event {
	var out []events.Event
	for _, e := range evs {
		if e.Type() == eventType {
			out = append(out, e)
		}
	}
	return out
}
