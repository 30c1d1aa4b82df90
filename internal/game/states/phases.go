package states

import "fmt"

// TurnPhase is the phase of the turn structure a match is in
type TurnPhase int

const (
	// PhaseSetup - Territories dealt, troops and capitals being allocated
	PhaseSetup TurnPhase = iota

	// PhaseCardPlayRound - Every player plays, discards or skips cards
	PhaseCardPlayRound

	// PhaseReinforce - Current player places its reinforcement pool
	PhaseReinforce

	// PhaseAttack - Current player may attack adjacent enemies
	PhaseAttack

	// PhaseFortify - Current player may make one troop transfer
	PhaseFortify

	// PhaseGameOver - A winner has been determined
	PhaseGameOver
)

// String returns the string representation of a TurnPhase
func (p TurnPhase) String() string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhaseCardPlayRound:
		return "CardPlayRound"
	case PhaseReinforce:
		return "Reinforce"
	case PhaseAttack:
		return "Attack"
	case PhaseFortify:
		return "Fortify"
	case PhaseGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p TurnPhase) IsTerminal() bool {
	return p == PhaseGameOver
}

// CanReceiveActions returns true if players can act in this phase
func (p TurnPhase) CanReceiveActions() bool {
	return p != PhaseSetup && p != PhaseGameOver
}

// IsMainTurn returns true for the phases of a single player's turn
func (p TurnPhase) IsMainTurn() bool {
	return p == PhaseReinforce || p == PhaseAttack || p == PhaseFortify
}

// AllowedTransitions returns the valid phases this phase can transition to.
// Reinforce may follow itself when a player hands over its turn by surrender.
func (p TurnPhase) AllowedTransitions() []TurnPhase {
	switch p {
	case PhaseSetup:
		return []TurnPhase{PhaseCardPlayRound, PhaseGameOver}
	case PhaseCardPlayRound:
		return []TurnPhase{PhaseReinforce, PhaseGameOver}
	case PhaseReinforce:
		return []TurnPhase{PhaseAttack, PhaseReinforce, PhaseCardPlayRound, PhaseGameOver}
	case PhaseAttack:
		return []TurnPhase{PhaseFortify, PhaseGameOver}
	case PhaseFortify:
		return []TurnPhase{PhaseReinforce, PhaseCardPlayRound, PhaseGameOver}
	default:
		return []TurnPhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p TurnPhase) CanTransitionTo(target TurnPhase) bool {
	allowed := p.AllowedTransitions()
	for _, phase := range allowed {
		if phase == target {
			return true
		}
	}
	return false
}

// ParsePhase converts a string to a TurnPhase. Both "CardPlayRound" and
// "CARD_PLAY_ROUND" spellings are accepted.
func ParsePhase(s string) (TurnPhase, error) {
	switch s {
	case "Setup", "SETUP":
		return PhaseSetup, nil
	case "CardPlayRound", "CARD_PLAY_ROUND":
		return PhaseCardPlayRound, nil
	case "Reinforce", "REINFORCE":
		return PhaseReinforce, nil
	case "Attack", "ATTACK":
		return PhaseAttack, nil
	case "Fortify", "FORTIFY":
		return PhaseFortify, nil
	case "GameOver", "GAME_OVER":
		return PhaseGameOver, nil
	default:
		return PhaseSetup, fmt.Errorf("unknown phase %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler so snapshots carry phase names
func (p TurnPhase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *TurnPhase) UnmarshalText(b []byte) error {
	parsed, err := ParsePhase(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
