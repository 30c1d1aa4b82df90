package game

// This file contains all player statistics management functionality for a match.

// PlayerStats are per-player counters. Territories and Troops are recomputed
// from the board; the rest accumulate over the match.
type PlayerStats struct {
	Territories int `json:"territories"`
	Troops      int `json:"troops"`

	TroopsDeployed       int `json:"troops_deployed"`
	TroopsLost           int `json:"troops_lost"`
	TroopsKilled         int `json:"troops_killed"`
	BattlesFought        int `json:"battles_fought"`
	TerritoriesConquered int `json:"territories_conquered"`
	TerritoriesLost      int `json:"territories_lost"`
	HandsPlayed          int `json:"hands_played"`
	CardsDiscarded       int `json:"cards_discarded"`
}

// updatePlayerStats recalculates territory and troop totals from the board
// and returns the players that are still marked alive but own nothing.
func (m *Match) updatePlayerStats() []int {
	for pid := range m.gs.Players {
		s := &m.gs.Players[pid].Stats
		s.Territories = m.gs.Board.CountOwned(pid)
		s.Troops = m.gs.Board.TotalTroops(pid)
	}

	var empty []int
	for pid, p := range m.gs.Players {
		if p.Alive && p.Stats.Territories == 0 {
			empty = append(empty, pid)
		}
	}
	if len(empty) > 0 {
		m.logger.Debug().Ints("player_ids", empty).Msg("Players left without territory")
	}
	return empty
}

// recordBattle books the losses of one exchange on both sides.
func (m *Match) recordBattle(attacker, defender, attackerLosses, defenderLosses int) {
	if p := m.gs.Player(attacker); p != nil {
		p.Stats.BattlesFought++
		p.Stats.TroopsLost += attackerLosses
		p.Stats.TroopsKilled += defenderLosses
	}
	if p := m.gs.Player(defender); p != nil {
		p.Stats.BattlesFought++
		p.Stats.TroopsLost += defenderLosses
		p.Stats.TroopsKilled += attackerLosses
	}
}

// recordConquest books a territory changing hands by force.
func (m *Match) recordConquest(conqueror, previousOwner int) {
	if p := m.gs.Player(conqueror); p != nil {
		p.Stats.TerritoriesConquered++
	}
	if p := m.gs.Player(previousOwner); p != nil {
		p.Stats.TerritoriesLost++
	}
}
