package ai

import (
	"github.com/mitchelldurbincs/conquest/internal/game/core"
)

// ContinentStatus is a player's hold on one continent.
type ContinentStatus struct {
	ID       core.ContinentID
	Bonus    int
	Owned    int
	Total    int
	Complete bool
}

// Share is the fraction of the continent the player owns.
func (s ContinentStatus) Share() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Owned) / float64(s.Total)
}

// Analysis is a player's view of the map shared by every decision of a turn.
type Analysis struct {
	PlayerID    int
	Owned       []core.TerritoryID
	Borders     []core.TerritoryID
	Internal    []core.TerritoryID
	Threat      map[core.TerritoryID]int
	Continents  []ContinentStatus
	Chokepoints map[core.TerritoryID]bool

	border map[core.TerritoryID]bool
}

// Analyze partitions the player's territories into borders and internal
// territories, sums the enemy troops adjacent to each border and flags the
// borders of continents the player owns or is one territory away from owning.
func Analyze(b *core.Board, playerID int) *Analysis {
	a := &Analysis{
		PlayerID:    playerID,
		Threat:      make(map[core.TerritoryID]int),
		Chokepoints: make(map[core.TerritoryID]bool),
		border:      make(map[core.TerritoryID]bool),
	}

	for _, id := range b.OwnedBy(playerID) {
		a.Owned = append(a.Owned, id)
		threat := 0
		isBorder := false
		for _, n := range b.Graph.Neighbors(id) {
			if b.OwnerOf(n) != playerID {
				isBorder = true
				threat += b.TroopsOf(n)
			}
		}
		if isBorder {
			a.Borders = append(a.Borders, id)
			a.Threat[id] = threat
			a.border[id] = true
		} else {
			a.Internal = append(a.Internal, id)
		}
	}

	for _, c := range b.Graph.Continents() {
		status := ContinentStatus{ID: c.ID, Bonus: c.Bonus, Total: len(c.TerritoryIDs)}
		for _, id := range c.TerritoryIDs {
			if b.OwnerOf(id) == playerID {
				status.Owned++
			}
		}
		status.Complete = status.Owned == status.Total
		a.Continents = append(a.Continents, status)

		if status.Owned >= status.Total-1 {
			for _, id := range c.TerritoryIDs {
				if a.border[id] {
					a.Chokepoints[id] = true
				}
			}
		}
	}
	return a
}

// IsBorder reports whether an owned territory touches an enemy.
func (a *Analysis) IsBorder(id core.TerritoryID) bool { return a.border[id] }

// IsInternal reports whether an owned territory only touches friendly territory.
func (a *Analysis) IsInternal(id core.TerritoryID) bool {
	return !a.border[id] && core.ContainsTerritory(a.Owned, id)
}

// Continent returns the status of one continent.
func (a *Analysis) Continent(id core.ContinentID) (ContinentStatus, bool) {
	for _, s := range a.Continents {
		if s.ID == id {
			return s, true
		}
	}
	return ContinentStatus{}, false
}

// continentHold counts how much of a continent one owner holds.
func continentHold(b *core.Board, cid core.ContinentID, owner int) (held, total int) {
	c, ok := b.Graph.Continent(cid)
	if !ok {
		return 0, 0
	}
	for _, id := range c.TerritoryIDs {
		if b.OwnerOf(id) == owner {
			held++
		}
	}
	return held, len(c.TerritoryIDs)
}
