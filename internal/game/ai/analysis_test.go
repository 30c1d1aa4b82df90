package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/conquest/internal/game/core"
	"github.com/mitchelldurbincs/conquest/internal/testutil"
)

func TestAnalyze_BordersAndInternal(t *testing.T) {
	g := buildGraph(t,
		map[core.TerritoryID]core.ContinentID{"t1": "c1", "t2": "c1", "t3": "c2"},
		map[core.ContinentID]int{"c1": 5, "c2": 3},
		edge{"t1", "t2"}, edge{"t2", "t3"},
	)
	b := testutil.BoardWith(g, map[core.TerritoryID]testutil.Owned{
		"t1": {Owner: 0, Troops: 10},
		"t2": {Owner: 0, Troops: 10},
		"t3": {Owner: 1, Troops: 5},
	})

	a := Analyze(b, 0)

	assert.Equal(t, []core.TerritoryID{"t1", "t2"}, a.Owned)
	assert.Equal(t, []core.TerritoryID{"t1"}, a.Internal)
	assert.Equal(t, []core.TerritoryID{"t2"}, a.Borders)
	assert.Equal(t, 5, a.Threat["t2"])
	assert.Zero(t, a.Threat["t1"])
	assert.True(t, a.IsBorder("t2"))
	assert.True(t, a.IsInternal("t1"))
	assert.False(t, a.IsInternal("t3"))

	c1, ok := a.Continent("c1")
	require.True(t, ok)
	assert.True(t, c1.Complete)
	assert.Equal(t, 1.0, c1.Share())

	c2, ok := a.Continent("c2")
	require.True(t, ok)
	assert.False(t, c2.Complete)
	assert.Zero(t, c2.Share())
}

func TestAnalyze_Chokepoints(t *testing.T) {
	// One territory short of a continent: its borders are chokepoints.
	g := testutil.LineGraph(6)
	b := testutil.BoardWith(g, map[core.TerritoryID]testutil.Owned{
		"ta": {Owner: 0, Troops: 3},
		"tb": {Owner: 0, Troops: 3},
		"tc": {Owner: 1, Troops: 3},
		"td": {Owner: 1, Troops: 3},
		"te": {Owner: 0, Troops: 3},
		"tf": {Owner: 1, Troops: 3},
	})

	a := Analyze(b, 0)
	assert.True(t, a.Chokepoints["tb"], "west is one short, tb borders tc")
	assert.False(t, a.Chokepoints["ta"], "ta is internal")
	assert.False(t, a.Chokepoints["te"], "east holds only one of three")
}

func TestAnalyze_NoTerritories(t *testing.T) {
	g := testutil.LineGraph(4)
	b := testutil.BoardWith(g, map[core.TerritoryID]testutil.Owned{
		"ta": {Owner: 1, Troops: 1}, "tb": {Owner: 1, Troops: 1},
		"tc": {Owner: 1, Troops: 1}, "td": {Owner: 1, Troops: 1},
	})

	a := Analyze(b, 0)
	assert.Empty(t, a.Owned)
	assert.Empty(t, a.Chokepoints)
}
