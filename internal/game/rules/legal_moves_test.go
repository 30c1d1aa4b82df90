package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/conquest/internal/game/core"
	"github.com/mitchelldurbincs/conquest/internal/testutil"
)

func TestLegalMoveCalculator(t *testing.T) {
	g := testutil.LineGraph(4)
	b := testutil.BoardWith(g, map[core.TerritoryID]testutil.Owned{
		"ta": {Owner: 0, Troops: 3},
		"tb": {Owner: 0, Troops: 2},
		"tc": {Owner: 1, Troops: 2},
		"td": {Owner: 1, Troops: 1},
	})
	lmc := NewLegalMoveCalculator()
	p0 := testPlayer{id: 0, alive: true}
	p1 := testPlayer{id: 1, alive: true}

	assert.Equal(t, []Move{{From: "tb", To: "tc", MaxDice: 1}}, lmc.AttackMoves(b, p0))
	assert.Equal(t, []Move{{From: "tc", To: "tb", MaxDice: 1}}, lmc.AttackMoves(b, p1))
	assert.True(t, lmc.CanAttack(b, p0))

	assert.Equal(t, []Move{{From: "ta", To: "tb"}, {From: "tb", To: "ta"}}, lmc.FortifyMoves(b, p0))
	assert.Equal(t, []Move{{From: "tc", To: "td"}}, lmc.FortifyMoves(b, p1))

	assert.Equal(t, []core.TerritoryID{"ta", "tb"}, lmc.DeployTargets(b, p0))

	dead := testPlayer{id: 0, alive: false}
	assert.Empty(t, lmc.AttackMoves(b, dead))
	assert.Empty(t, lmc.FortifyMoves(b, dead))
	assert.Empty(t, lmc.DeployTargets(b, dead))
}

func TestLegalMoveCalculator_NoSpareTroops(t *testing.T) {
	g := testutil.LineGraph(2)
	b := testutil.BoardWith(g, map[core.TerritoryID]testutil.Owned{
		"ta": {Owner: 0, Troops: 1},
		"tb": {Owner: 1, Troops: 1},
	})
	lmc := NewLegalMoveCalculator()
	assert.False(t, lmc.CanAttack(b, testPlayer{id: 0, alive: true}))
}
