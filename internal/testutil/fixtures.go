package testutil

import (
	"github.com/mitchelldurbincs/conquest/internal/game/core"
)

// Owned describes the starting owner and troops of a territory in a fixture.
type Owned struct {
	Owner  int
	Troops int
}

// LineGraph builds a chain ta-tb-tc-... of n territories. The first half belongs to
// continent "west" (bonus 2), the rest to "east" (bonus 3).
func LineGraph(n int) *core.Graph {
	ids := make([]core.TerritoryID, n)
	for i := range ids {
		ids[i] = core.TerritoryID("t" + string(rune('a'+i)))
	}
	terrs := make([]core.Territory, n)
	for i, id := range ids {
		cont := core.ContinentID("west")
		if i >= n/2 {
			cont = "east"
		}
		var adj []core.TerritoryID
		if i > 0 {
			adj = append(adj, ids[i-1])
		}
		if i < n-1 {
			adj = append(adj, ids[i+1])
		}
		terrs[i] = core.Territory{ID: id, Name: string(id), ContinentID: cont, Neighbors: adj}
	}
	conts := []core.Continent{{ID: "west", Name: "West", Bonus: 2}}
	if n > 1 {
		conts = append(conts, core.Continent{ID: "east", Name: "East", Bonus: 3})
	}
	g, err := core.NewGraph(terrs, conts)
	if err != nil {
		panic("testutil: invalid line graph: " + err.Error())
	}
	return g
}

// StarGraph builds a hub "hub" connected to each spoke; every territory is in
// continent "star" (bonus 5).
func StarGraph(spokes ...core.TerritoryID) *core.Graph {
	hub := core.Territory{ID: "hub", Name: "Hub", ContinentID: "star"}
	terrs := []core.Territory{}
	for _, s := range spokes {
		hub.Neighbors = append(hub.Neighbors, s)
		terrs = append(terrs, core.Territory{ID: s, Name: string(s), ContinentID: "star", Neighbors: []core.TerritoryID{"hub"}})
	}
	terrs = append(terrs, hub)
	g, err := core.NewGraph(terrs, []core.Continent{{ID: "star", Name: "Star", Bonus: 5}})
	if err != nil {
		panic("testutil: invalid star graph: " + err.Error())
	}
	return g
}

// BoardWith returns a board on g where the listed territories are assigned;
// unlisted territories stay neutral.
func BoardWith(g *core.Graph, owned map[core.TerritoryID]Owned) *core.Board {
	b := core.NewBoard(g)
	for id, o := range owned {
		t := b.Get(id)
		if t == nil {
			panic("testutil: unknown territory " + string(id))
		}
		t.Owner = o.Owner
		t.Troops = o.Troops
	}
	return b
}
