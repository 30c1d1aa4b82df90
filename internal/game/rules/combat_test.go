package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/conquest/internal/game/core"
	"github.com/mitchelldurbincs/conquest/internal/testutil"
)

func TestDiceLimits(t *testing.T) {
	assert.Equal(t, 0, MaxAttackDice(1))
	assert.Equal(t, 1, MaxAttackDice(2))
	assert.Equal(t, 2, MaxAttackDice(3))
	assert.Equal(t, 3, MaxAttackDice(4))
	assert.Equal(t, 3, MaxAttackDice(40))

	assert.Equal(t, 1, DefenderDice(1))
	assert.Equal(t, 2, DefenderDice(2))
	assert.Equal(t, 2, DefenderDice(9))
}

func TestRollRound(t *testing.T) {
	tests := []struct {
		name          string
		faces         []int
		attDice       int
		defDice       int
		attBonus      int
		defBonus      int
		wantAttRolls  []int
		wantDefRolls  []int
		wantAttLosses int
		wantDefLosses int
	}{
		{
			name:          "ties favor the defender",
			faces:         []int{4, 6, 5, 6, 5},
			attDice:       3,
			defDice:       2,
			wantAttRolls:  []int{6, 5, 4},
			wantDefRolls:  []int{6, 5},
			wantAttLosses: 2,
		},
		{
			name:          "attacker bonus lands on the highest die",
			faces:         []int{4, 6, 5, 6, 5},
			attDice:       3,
			defDice:       2,
			attBonus:      1,
			wantAttRolls:  []int{7, 5, 4},
			wantDefRolls:  []int{6, 5},
			wantAttLosses: 1,
			wantDefLosses: 1,
		},
		{
			name:          "entrenchment bonus turns a win into a tie",
			faces:         []int{6, 5},
			attDice:       1,
			defDice:       1,
			defBonus:      1,
			wantAttRolls:  []int{6},
			wantDefRolls:  []int{6},
			wantAttLosses: 1,
		},
		{
			name:          "only the shorter side's dice are compared",
			faces:         []int{6, 6, 6, 1},
			attDice:       3,
			defDice:       1,
			wantAttRolls:  []int{6, 6, 6},
			wantDefRolls:  []int{1},
			wantDefLosses: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &testutil.ScriptedDice{Faces: tt.faces}
			res := RollRound(d, tt.attDice, tt.defDice, tt.attBonus, tt.defBonus)
			assert.Equal(t, tt.wantAttRolls, res.AttackerRolls)
			assert.Equal(t, tt.wantDefRolls, res.DefenderRolls)
			assert.Equal(t, tt.wantAttLosses, res.AttackerLosses)
			assert.Equal(t, tt.wantDefLosses, res.DefenderLosses)
		})
	}
}

func TestRollRound_SeededRandom(t *testing.T) {
	rng := testutil.NewTestRNG(3)
	for i := 0; i < 200; i++ {
		res := RollRound(rng, 3, 2, 0, 0)
		assert.Equal(t, 2, res.AttackerLosses+res.DefenderLosses)
		for _, r := range append(res.AttackerRolls, res.DefenderRolls...) {
			assert.True(t, r >= 1 && r <= 6)
		}
	}
}

func TestConquestMoveIn(t *testing.T) {
	assert.Equal(t, 3, ConquestMoveIn(3, 10))
	assert.Equal(t, 2, ConquestMoveIn(3, 3))
	assert.Equal(t, 1, ConquestMoveIn(1, 2))
	assert.Equal(t, 1, ConquestMoveIn(0, 1))
}

func TestResolveDecisive(t *testing.T) {
	attackerWins := func() Dice { return &testutil.ScriptedDice{Fractions: []float64{0.99, 0}} }
	attackerLoses := func() Dice { return &testutil.ScriptedDice{Fractions: []float64{0, 0.99}} }

	t.Run("ten against five wins and moves four", func(t *testing.T) {
		res := ResolveDecisive(attackerWins(), 10, 5, 0, 5)
		assert.True(t, res.Success)
		assert.Equal(t, 5, res.DefenderLoss)
		assert.Equal(t, 0, res.AttackerLoss)
		assert.Equal(t, 4, res.MoveIn)
	})

	t.Run("three against one moves the minimum", func(t *testing.T) {
		res := ResolveDecisive(attackerWins(), 3, 1, 0, 5)
		assert.True(t, res.Success)
		assert.Equal(t, 1, res.MoveIn)
	})

	t.Run("losing with ten costs five", func(t *testing.T) {
		res := ResolveDecisive(attackerLoses(), 10, 5, 0, 5)
		assert.False(t, res.Success)
		assert.Equal(t, 5, res.AttackerLoss)
		assert.Equal(t, 0, res.DefenderLoss)
		assert.Equal(t, 0, res.MoveIn)
	})

	t.Run("odd losses round up", func(t *testing.T) {
		res := ResolveDecisive(attackerLoses(), 7, 2, 0, 5)
		assert.Equal(t, 4, res.AttackerLoss)
	})

	t.Run("equal totals favor the defender", func(t *testing.T) {
		// attacker floor(0.5*2*10)=10, defender floor(0.5*1*10)+5=10
		d := &testutil.ScriptedDice{Fractions: []float64{0.5, 0.5}}
		res := ResolveDecisive(d, 2, 1, 0, 5)
		assert.Equal(t, 10, res.AttackerRoll)
		assert.Equal(t, 10, res.DefenderRoll)
		assert.False(t, res.Success)
	})

	t.Run("bonuses shift the rolls", func(t *testing.T) {
		d := &testutil.ScriptedDice{Fractions: []float64{0, 0}}
		res := ResolveDecisive(d, 4, 4, 3, 6)
		assert.Equal(t, 3, res.AttackerRoll)
		assert.Equal(t, 6, res.DefenderRoll)
	})
}

func TestEntrenchmentBonus(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 0, EntrenchmentBonus(nil, cfg))
	assert.Equal(t, 0, EntrenchmentBonus(&core.TerritoryState{Owner: 0, Troops: 3, EntrenchedTurns: 1}, cfg))
	assert.Equal(t, 1, EntrenchmentBonus(&core.TerritoryState{Owner: 0, Troops: 3, EntrenchedTurns: 2}, cfg))
	assert.Equal(t, 1, EntrenchmentBonus(&core.TerritoryState{Owner: 0, Troops: 3, EntrenchedTurns: 5}, cfg))
	assert.Equal(t, 0, EntrenchmentBonus(&core.TerritoryState{Owner: core.NeutralID, EntrenchedTurns: 5}, cfg))

	ts := &core.TerritoryState{Owner: 0, Troops: 3, EntrenchedTurns: 2}
	ts.Touch()
	assert.Equal(t, 0, EntrenchmentBonus(ts, cfg), "touching removes the bonus immediately")
}
