package rules

// Config holds the numeric rule constants shared by the calculators.
type Config struct {
	MinReinforcements           int
	TerritoriesPerReinforcement int
	CapitalBonus                int
	TurnsToEntrench             int
	EntrenchmentDefenseBonus    int
	DecisiveDefenderBonus       int
}

// DefaultConfig returns the stock rule constants.
func DefaultConfig() Config {
	return Config{
		MinReinforcements:           3,
		TerritoriesPerReinforcement: 3,
		CapitalBonus:                2,
		TurnsToEntrench:             2,
		EntrenchmentDefenseBonus:    1,
		DecisiveDefenderBonus:       5,
	}
}
