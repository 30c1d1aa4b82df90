package mapgen

import (
	"fmt"
	"math/rand"

	"github.com/mitchelldurbincs/conquest/internal/game/core"
)

// SetupConfig holds the parameters of the opening distribution.
type SetupConfig struct {
	PlayerCount    int
	StartingArmies int // troops per player, including the one per territory
}

// Placement is the opening position of one player.
type Placement struct {
	PlayerID    int
	Capital     core.TerritoryID
	Territories []core.TerritoryID
}

// Generator distributes territories, troops and capitals with a deterministic RNG.
type Generator struct {
	graph  *core.Graph
	config SetupConfig
	rng    *rand.Rand
}

// NewGenerator creates a new setup generator
func NewGenerator(graph *core.Graph, config SetupConfig, rng *rand.Rand) *Generator {
	return &Generator{
		graph:  graph,
		config: config,
		rng:    rng,
	}
}

// Generate deals the territories round-robin in a shuffled order, gives every
// territory one troop, scatters each player's remaining starting troops over
// their territories and picks the most garrisoned territory as the capital.
func (g *Generator) Generate() (*core.Board, []Placement, error) {
	n := g.config.PlayerCount
	if n <= 0 {
		return nil, nil, fmt.Errorf("%w: player count %d", core.ErrInvalidPlayer, n)
	}
	if g.graph.Len() < n {
		return nil, nil, fmt.Errorf("%w: %d territories cannot host %d players", core.ErrInvalidMap, g.graph.Len(), n)
	}

	board := core.NewBoard(g.graph)
	ids := g.graph.TerritoryIDs()
	g.rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	placements := make([]Placement, n)
	for pid := range placements {
		placements[pid].PlayerID = pid
	}
	for i, id := range ids {
		pid := i % n
		t := board.Get(id)
		t.Owner = pid
		t.Troops = 1
		placements[pid].Territories = append(placements[pid].Territories, id)
	}

	for pid := range placements {
		owned := core.SortTerritoryIDs(placements[pid].Territories)
		for extra := g.config.StartingArmies - len(owned); extra > 0; extra-- {
			board.Get(owned[g.rng.Intn(len(owned))]).Troops++
		}
		placements[pid].Capital = strongest(board, owned)
	}

	return board, placements, nil
}

// strongest returns the territory with the most troops, first id on ties.
func strongest(b *core.Board, ids []core.TerritoryID) core.TerritoryID {
	best := ids[0]
	for _, id := range ids[1:] {
		if b.TroopsOf(id) > b.TroopsOf(best) {
			best = id
		}
	}
	return best
}
