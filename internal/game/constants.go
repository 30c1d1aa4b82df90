package game

import (
	"github.com/mitchelldurbincs/conquest/internal/config"
	"github.com/mitchelldurbincs/conquest/internal/game/ai"
	"github.com/mitchelldurbincs/conquest/internal/game/rules"
)

// rulesFromConfig extracts the battle and reinforcement constants
func rulesFromConfig(cfg *config.Config) rules.Config {
	r := cfg.Rules
	return rules.Config{
		MinReinforcements:           r.MinReinforcements,
		TerritoriesPerReinforcement: r.TerritoriesPerReinforcement,
		CapitalBonus:                r.CapitalBonus,
		TurnsToEntrench:             r.TurnsToEntrench,
		EntrenchmentDefenseBonus:    r.EntrenchmentDefenseBonus,
		DecisiveDefenderBonus:       r.DecisiveDefenderBonus,
	}
}

// aiSettingsFromConfig extracts the computer opponent tunables
func aiSettingsFromConfig(cfg *config.Config) ai.Settings {
	a := cfg.AI
	return ai.Settings{
		MaxAttacksPerTurn:  a.MaxAttacksPerTurn,
		EasyContinueChance: a.EasyContinueChance,
		AttackGate: map[ai.Difficulty]float64{
			ai.Easy:   a.AttackGate.Easy,
			ai.Medium: a.AttackGate.Medium,
			ai.Hard:   a.AttackGate.Hard,
		},
		SurrenderEnabled:        a.Surrender.Enabled,
		SurrenderStrongestShare: a.Surrender.StrongestShare,
		SurrenderOwnShare:       a.Surrender.OwnShare,
	}
}
