package rules

import (
	"github.com/mitchelldurbincs/conquest/internal/game/core"
)

// Breakdown itemises a reinforcement grant.
type Breakdown struct {
	Territories    int
	Base           int
	Continents     []core.ContinentID
	ContinentBonus int
	Capitals       []core.TerritoryID
	CapitalBonus   int
	Total          int
}

// Reinforcements computes the troops a player receives at the start of a turn:
// max(min, owned/perTerritory) plus every fully owned continent's bonus plus
// the capital bonus for each capital the player currently holds. capitals
// lists the capital of every player, whoever holds it now. A player without
// territories receives nothing.
func Reinforcements(b *core.Board, playerID int, capitals []core.TerritoryID, cfg Config) Breakdown {
	var out Breakdown
	out.Territories = b.CountOwned(playerID)
	if out.Territories == 0 {
		return out
	}

	per := cfg.TerritoriesPerReinforcement
	if per <= 0 {
		per = 1
	}
	out.Base = out.Territories / per
	if out.Base < cfg.MinReinforcements {
		out.Base = cfg.MinReinforcements
	}

	for _, c := range b.Graph.Continents() {
		if b.OwnsContinent(playerID, c.ID) {
			out.Continents = append(out.Continents, c.ID)
			out.ContinentBonus += c.Bonus
		}
	}

	for _, id := range capitals {
		if id != "" && b.OwnerOf(id) == playerID {
			out.Capitals = append(out.Capitals, id)
			out.CapitalBonus += cfg.CapitalBonus
		}
	}

	out.Total = out.Base + out.ContinentBonus + out.CapitalBonus
	return out
}
