package rules

import (
	"github.com/mitchelldurbincs/conquest/internal/game/core"
	"github.com/mitchelldurbincs/conquest/internal/testutil"
)

type testPlayer struct {
	id    int
	alive bool
}

func (p testPlayer) GetID() int    { return p.id }
func (p testPlayer) IsAlive() bool { return p.alive }

// ownRange assigns the territories in ids[from:to] of the line graph to owner.
func ownRange(owned map[core.TerritoryID]testutil.Owned, ids []core.TerritoryID, from, to, owner, troops int) {
	for _, id := range ids[from:to] {
		owned[id] = testutil.Owned{Owner: owner, Troops: troops}
	}
}
