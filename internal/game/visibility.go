package game

import (
	"github.com/mitchelldurbincs/conquest/internal/game/core"
	"github.com/mitchelldurbincs/conquest/internal/game/events"
)

// This file contains the fog of war of a match.

// revealFog adds every territory owned by a human player, and the neighbors
// of each, to the revealed set. The set only ever grows. Without fog of war
// the whole map is revealed.
func (m *Match) revealFog() {
	gs := m.gs
	var newly []core.TerritoryID
	mark := func(id core.TerritoryID) {
		if !gs.Revealed[id] {
			gs.Revealed[id] = true
			newly = append(newly, id)
		}
	}

	if !m.fog {
		for _, id := range gs.Board.Graph.TerritoryIDs() {
			mark(id)
		}
	} else {
		for _, pid := range gs.HumanIDs() {
			for _, id := range gs.Board.OwnedBy(pid) {
				mark(id)
				for _, n := range gs.Board.Graph.Neighbors(id) {
					mark(n)
				}
			}
		}
	}

	if len(newly) == 0 {
		return
	}
	core.SortTerritoryIDs(newly)
	m.logger.Debug().Int("revealed", len(newly)).Int("total_revealed", len(gs.Revealed)).Msg("Fog of war lifted")
	m.publish(events.NewTerritoriesRevealedEvent(m.id, newly))
}

// fogHolds reports whether the revealed set covers every human-owned
// territory and its neighbors.
func (m *Match) fogHolds() bool {
	if !m.fog {
		return len(m.gs.Revealed) == m.gs.Board.Graph.Len()
	}
	for _, pid := range m.gs.HumanIDs() {
		for _, id := range m.gs.Board.OwnedBy(pid) {
			if !m.gs.Revealed[id] {
				return false
			}
			for _, n := range m.gs.Board.Graph.Neighbors(id) {
				if !m.gs.Revealed[n] {
					return false
				}
			}
		}
	}
	return true
}
