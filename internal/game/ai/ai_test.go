package ai

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/conquest/internal/game/core"
	"github.com/mitchelldurbincs/conquest/internal/game/rules"
	"github.com/mitchelldurbincs/conquest/internal/testutil"
)

type edge [2]core.TerritoryID

// buildGraph creates a graph from continent membership and undirected edges.
func buildGraph(t *testing.T, members map[core.TerritoryID]core.ContinentID, bonuses map[core.ContinentID]int, edges ...edge) *core.Graph {
	t.Helper()
	adj := make(map[core.TerritoryID][]core.TerritoryID)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	var terrs []core.Territory
	for id, cont := range members {
		terrs = append(terrs, core.Territory{ID: id, Name: string(id), ContinentID: cont, Neighbors: adj[id]})
	}
	var conts []core.Continent
	for id, bonus := range bonuses {
		conts = append(conts, core.Continent{ID: id, Name: string(id), Bonus: bonus})
	}
	g, err := core.NewGraph(terrs, conts)
	require.NoError(t, err)
	return g
}

func newTestEngine(seed int64) *Engine {
	return NewEngine(DefaultSettings(), testutil.NewTestRNG(seed), testutil.NopLogger())
}

func view(b *core.Board, playerID int, d Difficulty) View {
	return View{Board: b, PlayerID: playerID, Difficulty: d, Rules: rules.DefaultConfig()}
}
