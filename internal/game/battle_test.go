package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/conquest/internal/game/cards"
	"github.com/mitchelldurbincs/conquest/internal/game/core"
	"github.com/mitchelldurbincs/conquest/internal/game/events"
	"github.com/mitchelldurbincs/conquest/internal/game/states"
	"github.com/mitchelldurbincs/conquest/internal/testutil"
)

func TestSelectAttackSourceErrors(t *testing.T) {
	m := attackReady(t, 5, 3, nil)
	m.gs.Board.Get("ta").Troops = 1

	assert.ErrorIs(t, m.SelectAttackSource("ta").Err, core.ErrInsufficientTroops)
	assert.ErrorIs(t, m.SelectAttackSource("tc").Err, core.ErrNotOwned)

	res := m.SelectAttackSource("tb")
	require.NoError(t, res.Err)
	assert.Equal(t, core.TerritoryID("tb"), res.State.AttackSource)
}

func TestDeclareAttackErrors(t *testing.T) {
	tests := []struct {
		name   string
		target core.TerritoryID
		dice   int
		want   error
	}{
		{"own territory", "ta", 1, core.ErrOwnTerritory},
		{"not adjacent", "td", 1, core.ErrNotAdjacent},
		{"unknown territory", "zz", 1, core.ErrUnknownTerritory},
		{"no dice", "tc", 0, core.ErrInvalidDice},
		{"more dice than spare troops", "tc", 3, core.ErrInvalidDice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := attackReady(t, 3, 3, nil)
			require.NoError(t, m.SelectAttackSource("tb").Err)

			res := m.DeclareAttack(tt.target, tt.dice)
			assert.ErrorIs(t, res.Err, tt.want)
			assert.Nil(t, res.State.Attack)
		})
	}
}

func TestResolveOneBattleRoundConquers(t *testing.T) {
	dice := &testutil.ScriptedDice{Faces: []int{6, 6, 6, 1}}
	m := attackReady(t, 5, 1, dice)

	require.NoError(t, m.SelectAttackSource("tb").Err)
	res := m.DeclareAttack("tc", 3)
	require.NoError(t, res.Err)
	require.Len(t, eventsOfType(res.Events, events.TypeAttackDeclared), 1)

	res = m.ResolveOneBattleRound()
	require.NoError(t, res.Err)

	gs := res.State
	assert.Equal(t, 0, gs.Board.OwnerOf("tc"))
	assert.Equal(t, 3, gs.Board.TroopsOf("tc"))
	assert.Equal(t, 2, gs.Board.TroopsOf("tb"))
	assert.Nil(t, gs.Attack)
	assert.Equal(t, core.TerritoryID("tb"), gs.AttackSource)
	assert.Equal(t, states.PhaseAttack, gs.Phase)

	battles := eventsOfType(res.Events, events.TypeBattleResolved)
	require.Len(t, battles, 1)
	battle := battles[0].(*events.BattleResolvedEvent)
	assert.Equal(t, []int{6, 6, 6}, battle.AttackerRolls)
	assert.Equal(t, []int{1}, battle.DefenderRolls)
	assert.Equal(t, 1, battle.DefenderLosses)
	assert.True(t, battle.Conquered)
	assert.Len(t, eventsOfType(res.Events, events.TypeTerritoryConquered), 1)

	assert.Equal(t, 1, gs.Players[0].Stats.TerritoriesConquered)
	assert.Equal(t, 1, gs.Players[1].Stats.TerritoriesLost)
	assert.True(t, gs.Players[1].Alive)
	assert.NoError(t, m.CheckInvariants())
}

func TestResolveOneBattleRoundDefenderWinsTies(t *testing.T) {
	dice := &testutil.ScriptedDice{Faces: []int{4, 4, 4, 4}}
	m := attackReady(t, 5, 3, dice)

	require.NoError(t, m.SelectAttackSource("tb").Err)
	require.NoError(t, m.DeclareAttack("tc", 2).Err)
	res := m.ResolveOneBattleRound()
	require.NoError(t, res.Err)

	assert.Equal(t, 3, res.State.Board.TroopsOf("tb"))
	assert.Equal(t, 3, res.State.Board.TroopsOf("tc"))
	// the declared attack stays live for another round
	require.NotNil(t, res.State.Attack)
	assert.Equal(t, core.TerritoryID("tc"), res.State.Attack.To)
}

func TestResolveOneBattleRoundCapsDice(t *testing.T) {
	dice := &testutil.ScriptedDice{Faces: []int{1}}
	m := attackReady(t, 4, 5, dice)

	require.NoError(t, m.SelectAttackSource("tb").Err)
	require.NoError(t, m.DeclareAttack("tc", 3).Err)

	// 4 -> 2 after the first round, which leaves a single attack die
	require.NoError(t, m.ResolveOneBattleRound().Err)
	res := m.ResolveOneBattleRound()
	require.NoError(t, res.Err)

	battle := eventsOfType(res.Events, events.TypeBattleResolved)[0].(*events.BattleResolvedEvent)
	assert.Len(t, battle.AttackerRolls, 1)
	assert.Equal(t, 1, res.State.Board.TroopsOf("tb"))

	assert.ErrorIs(t, m.ResolveOneBattleRound().Err, core.ErrInsufficientTroops)
}

func TestEntrenchmentDefendsTopDie(t *testing.T) {
	dice := &testutil.ScriptedDice{Faces: []int{6, 5}}
	m := attackReady(t, 5, 3, dice)
	m.gs.Board.Get("tc").EntrenchedTurns = 2

	require.NoError(t, m.SelectAttackSource("tb").Err)
	require.NoError(t, m.DeclareAttack("tc", 1).Err)
	res := m.ResolveOneBattleRound()
	require.NoError(t, res.Err)

	battle := eventsOfType(res.Events, events.TypeBattleResolved)[0].(*events.BattleResolvedEvent)
	assert.Equal(t, 1, battle.DefenderBonus)
	assert.Equal(t, 1, battle.AttackerLosses)
	assert.Equal(t, 4, res.State.Board.TroopsOf("tb"))
	// any troop change resets the entrenchment
	assert.Equal(t, 0, res.State.Board.Get("tc").EntrenchedTurns)
}

func TestHandBonusAppliesToAttack(t *testing.T) {
	dice := &testutil.ScriptedDice{Faces: []int{5, 5}}
	m := newTestMatch(t, 4, humans("Alice", "Bob"), dice)
	setBoard(m, duel(2, 1), "ta", "td")
	setHands(m, []cards.Card{
		card(cards.Two, cards.Clubs),
		card(cards.Two, cards.Diamonds),
		card(cards.Five, cards.Hearts),
		card(cards.Nine, cards.Spades),
		card(cards.King, cards.Clubs),
	})

	require.NoError(t, m.PlayCards([]int{0, 1, 2}).Err)
	require.NoError(t, m.SkipCardPhase().Err)
	deployAll(t, m, "ta")

	require.NoError(t, m.SelectAttackSource("tb").Err)
	require.NoError(t, m.DeclareAttack("tc", 1).Err)
	res := m.ResolveOneBattleRound()
	require.NoError(t, res.Err)

	battle := eventsOfType(res.Events, events.TypeBattleResolved)[0].(*events.BattleResolvedEvent)
	assert.Equal(t, 1, battle.AttackerBonus)
	assert.Equal(t, []int{6}, battle.AttackerRolls)
	assert.True(t, battle.Conquered)
	assert.Equal(t, 0, res.State.Board.OwnerOf("tc"))
	assert.Equal(t, 1, res.State.Board.TroopsOf("tc"))
	assert.Equal(t, 1, res.State.Board.TroopsOf("tb"))
	// the source cannot attack again
	assert.Empty(t, res.State.AttackSource)
}

func TestQuickAttack(t *testing.T) {
	t.Run("success moves half the spare troops", func(t *testing.T) {
		dice := &testutil.ScriptedDice{Fractions: []float64{0.9, 0}}
		m := attackReady(t, 10, 5, dice)

		require.NoError(t, m.SelectAttackSource("tb").Err)
		res := m.QuickAttack("tc")
		require.NoError(t, res.Err)

		assert.Equal(t, 0, res.State.Board.OwnerOf("tc"))
		assert.Equal(t, 4, res.State.Board.TroopsOf("tc"))
		assert.Equal(t, 6, res.State.Board.TroopsOf("tb"))

		battle := eventsOfType(res.Events, events.TypeBattleResolved)[0].(*events.BattleResolvedEvent)
		assert.True(t, battle.Decisive)
		assert.True(t, battle.Conquered)
		assert.Equal(t, 5, battle.DefenderBonus)
		assert.Equal(t, 5, battle.DefenderLosses)
		assert.Equal(t, 0, battle.AttackerLosses)
		assert.NoError(t, m.CheckInvariants())
	})

	t.Run("failure costs half the attackers", func(t *testing.T) {
		dice := &testutil.ScriptedDice{Fractions: []float64{0, 0.9}}
		m := attackReady(t, 10, 5, dice)

		require.NoError(t, m.SelectAttackSource("tb").Err)
		res := m.QuickAttack("tc")
		require.NoError(t, res.Err)

		assert.Equal(t, 1, res.State.Board.OwnerOf("tc"))
		assert.Equal(t, 5, res.State.Board.TroopsOf("tc"))
		assert.Equal(t, 5, res.State.Board.TroopsOf("tb"))

		battle := eventsOfType(res.Events, events.TypeBattleResolved)[0].(*events.BattleResolvedEvent)
		assert.False(t, battle.Conquered)
		assert.Equal(t, 5, battle.AttackerLosses)
		assert.Equal(t, 0, battle.DefenderLosses)
	})

	t.Run("through apply", func(t *testing.T) {
		dice := &testutil.ScriptedDice{Fractions: []float64{0.9, 0}}
		m := attackReady(t, 10, 5, dice)

		res := m.Apply(&core.AttackAction{PlayerID: 0, From: "tb", To: "tc", Quick: true})
		require.NoError(t, res.Err)
		assert.Equal(t, 0, res.State.Board.OwnerOf("tc"))
	})
}

func TestBlitz(t *testing.T) {
	t.Run("stops on conquest", func(t *testing.T) {
		dice := &testutil.ScriptedDice{Faces: []int{6, 6, 6, 1, 1}}
		m := attackReady(t, 4, 2, dice)

		require.NoError(t, m.SelectAttackSource("tb").Err)
		require.NoError(t, m.DeclareAttack("tc", 1).Err)
		res := m.StartBlitz()
		require.NoError(t, res.Err)
		assert.True(t, res.State.Blitzing)
		assert.False(t, res.Waiting)

		assert.ErrorIs(t, m.EndPhase().Err, core.ErrBlitzInProgress)

		res = m.Advance()
		require.NoError(t, res.Err)
		assert.False(t, res.State.Blitzing)
		assert.Equal(t, 0, res.State.Board.OwnerOf("tc"))
		assert.Equal(t, 3, res.State.Board.TroopsOf("tc"))
		assert.Equal(t, 1, res.State.Board.TroopsOf("tb"))

		stops := eventsOfType(res.Events, events.TypeBlitzStopped)
		require.Len(t, stops, 1)
		stop := stops[0].(*events.BlitzStoppedEvent)
		assert.Equal(t, events.BlitzConquered, stop.Reason)
		assert.Equal(t, 1, stop.Rounds)
		assert.True(t, res.Waiting)
	})

	t.Run("stops when the source is exhausted", func(t *testing.T) {
		dice := &testutil.ScriptedDice{Faces: []int{1}}
		m := attackReady(t, 10, 5, dice)

		res := m.Apply(&core.AttackAction{PlayerID: 0, From: "tb", To: "tc", Dice: 3, Blitz: true})
		require.NoError(t, res.Err)
		require.True(t, res.State.Blitzing)

		res, err := m.Run(context.Background(), 0)
		require.NoError(t, err)
		assert.False(t, res.State.Blitzing)
		assert.Equal(t, 1, res.State.Board.TroopsOf("tb"))
		assert.Equal(t, 5, res.State.Board.TroopsOf("tc"))
		assert.Len(t, eventsOfType(res.Events, events.TypeBattleResolved), 5)

		stop := eventsOfType(res.Events, events.TypeBlitzStopped)[0].(*events.BlitzStoppedEvent)
		assert.Equal(t, events.BlitzExhausted, stop.Reason)
		assert.Equal(t, 5, stop.Rounds)
		assert.True(t, res.Waiting)
	})

	t.Run("cancelled before the next roll", func(t *testing.T) {
		dice := &testutil.ScriptedDice{Faces: []int{1}}
		m := attackReady(t, 10, 5, dice)

		require.NoError(t, m.SelectAttackSource("tb").Err)
		require.NoError(t, m.DeclareAttack("tc", 3).Err)
		require.NoError(t, m.StartBlitz().Err)
		require.NoError(t, m.Advance().Err)

		res := m.StopBlitz()
		require.NoError(t, res.Err)
		assert.False(t, res.State.Blitzing)
		assert.Equal(t, 8, res.State.Board.TroopsOf("tb"))

		stop := eventsOfType(res.Events, events.TypeBlitzStopped)[0].(*events.BlitzStoppedEvent)
		assert.Equal(t, events.BlitzCancelled, stop.Reason)
		assert.Equal(t, 1, stop.Rounds)

		res = m.Advance()
		assert.False(t, res.Applied)
		assert.Equal(t, 8, res.State.Board.TroopsOf("tb"))
		assert.ErrorIs(t, m.StopBlitz().Err, core.ErrNoAttackContext)
	})
}

func TestConquestEliminatesLastOpponent(t *testing.T) {
	dice := &testutil.ScriptedDice{Faces: []int{6, 6, 6, 1}}
	m := newTestMatch(t, 4, humans("Alice", "Bob"), dice)
	setBoard(m, map[core.TerritoryID]testutil.Owned{
		"ta": {Owner: 0, Troops: 3},
		"tb": {Owner: 0, Troops: 5},
		"tc": {Owner: 1, Troops: 1},
	}, "ta", "tc")
	skipCardRound(t, m)
	deployAll(t, m, "ta")

	require.NoError(t, m.SelectAttackSource("tb").Err)
	require.NoError(t, m.DeclareAttack("tc", 3).Err)
	res := m.ResolveOneBattleRound()
	require.NoError(t, res.Err)

	assert.True(t, m.IsOver())
	assert.Equal(t, 0, m.Winner())
	assert.Equal(t, states.PhaseGameOver, res.State.Phase)
	assert.False(t, res.State.Players[1].Alive)
	assert.Len(t, eventsOfType(res.Events, events.TypeCapitalCaptured), 1)
	assert.Len(t, eventsOfType(res.Events, events.TypePlayerEliminated), 1)
	assert.Len(t, eventsOfType(res.Events, events.TypePlayerWon), 1)
	assert.Len(t, eventsOfType(res.Events, events.TypeMatchEnded), 1)
	assert.False(t, res.Waiting)

	history := m.History()
	require.NotEmpty(t, history)
	assert.Equal(t, states.PhaseGameOver, history[len(history)-1].To)

	res = m.ResolveOneBattleRound()
	assert.ErrorIs(t, res.Err, core.ErrGameOver)
	assert.Empty(t, eventsOfType(res.Events, events.TypePlayerWon))
	assert.ErrorIs(t, m.Advance().Err, core.ErrGameOver)
	assert.NoError(t, m.CheckInvariants())
}
