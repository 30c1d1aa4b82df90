package core

import "fmt"

// ActionType represents the type of action
type ActionType int

const (
	ActionDeploy ActionType = iota
	ActionAttack
	ActionFortify
	ActionPlayCards
	ActionDiscardCard
	ActionSkipCards
	ActionEndPhase
	ActionSurrender
)

func (t ActionType) String() string {
	switch t {
	case ActionDeploy:
		return "deploy"
	case ActionAttack:
		return "attack"
	case ActionFortify:
		return "fortify"
	case ActionPlayCards:
		return "play_cards"
	case ActionDiscardCard:
		return "discard_card"
	case ActionSkipCards:
		return "skip_cards"
	case ActionEndPhase:
		return "end_phase"
	case ActionSurrender:
		return "surrender"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// Action represents a player intent. Validate only checks what can be known
// from the board; phase and turn rules are enforced by the match.
type Action interface {
	GetPlayerID() int
	GetType() ActionType
	Validate(b *Board) error
	String() string
}

// DeployAction places reinforcements onto an owned territory.
type DeployAction struct {
	PlayerID  int
	Territory TerritoryID
	Amount    int
}

func (a *DeployAction) GetPlayerID() int    { return a.PlayerID }
func (a *DeployAction) GetType() ActionType { return ActionDeploy }
func (a *DeployAction) String() string {
	return fmt.Sprintf("deploy %d to %s", a.Amount, a.Territory)
}

func (a *DeployAction) Validate(b *Board) error {
	t := b.Get(a.Territory)
	if t == nil {
		return ErrUnknownTerritory
	}
	if t.Owner != a.PlayerID {
		return ErrNotOwned
	}
	if a.Amount < 1 {
		return ErrInvalidAmount
	}
	return nil
}

// AttackAction declares an attack. Blitz keeps rolling with maximum dice;
// Quick resolves the whole battle with a single decisive roll.
type AttackAction struct {
	PlayerID int
	From     TerritoryID
	To       TerritoryID
	Dice     int
	Blitz    bool
	Quick    bool
}

func (a *AttackAction) GetPlayerID() int    { return a.PlayerID }
func (a *AttackAction) GetType() ActionType { return ActionAttack }
func (a *AttackAction) String() string {
	return fmt.Sprintf("attack %s from %s with %d dice", a.To, a.From, a.Dice)
}

func (a *AttackAction) Validate(b *Board) error {
	src, dst := b.Get(a.From), b.Get(a.To)
	if src == nil || dst == nil {
		return ErrUnknownTerritory
	}
	if src.Owner != a.PlayerID {
		return ErrNotOwned
	}
	if dst.Owner == a.PlayerID {
		return ErrOwnTerritory
	}
	if !b.Graph.IsAdjacent(a.From, a.To) {
		return ErrNotAdjacent
	}
	if src.Troops <= 1 {
		return ErrInsufficientTroops
	}
	if !a.Quick && (a.Dice < 1 || a.Dice > 3 || a.Dice > src.Troops-1) {
		return ErrInvalidDice
	}
	return nil
}

// FortifyAction moves troops between two adjacent owned territories.
type FortifyAction struct {
	PlayerID int
	From     TerritoryID
	To       TerritoryID
	Amount   int
}

func (a *FortifyAction) GetPlayerID() int    { return a.PlayerID }
func (a *FortifyAction) GetType() ActionType { return ActionFortify }
func (a *FortifyAction) String() string {
	return fmt.Sprintf("fortify %s with %d from %s", a.To, a.Amount, a.From)
}

func (a *FortifyAction) Validate(b *Board) error {
	src, dst := b.Get(a.From), b.Get(a.To)
	if src == nil || dst == nil {
		return ErrUnknownTerritory
	}
	if src.Owner != a.PlayerID || dst.Owner != a.PlayerID {
		return ErrNotOwned
	}
	if a.From == a.To || !b.Graph.IsAdjacent(a.From, a.To) {
		return ErrNotAdjacent
	}
	if a.Amount < 1 {
		return ErrInvalidAmount
	}
	if src.Troops-a.Amount < 1 {
		return ErrInsufficientTroops
	}
	return nil
}

// PlayCardsAction plays three cards from the hand by index.
type PlayCardsAction struct {
	PlayerID int
	Indices  []int
}

func (a *PlayCardsAction) GetPlayerID() int    { return a.PlayerID }
func (a *PlayCardsAction) GetType() ActionType { return ActionPlayCards }
func (a *PlayCardsAction) String() string      { return fmt.Sprintf("play cards %v", a.Indices) }

func (a *PlayCardsAction) Validate(_ *Board) error {
	if len(a.Indices) != 3 {
		return ErrInvalidCardSelection
	}
	seen := make(map[int]bool, 3)
	for _, i := range a.Indices {
		if i < 0 || seen[i] {
			return ErrInvalidCardSelection
		}
		seen[i] = true
	}
	return nil
}

// DiscardCardAction discards one card by index.
type DiscardCardAction struct {
	PlayerID int
	Index    int
}

func (a *DiscardCardAction) GetPlayerID() int    { return a.PlayerID }
func (a *DiscardCardAction) GetType() ActionType { return ActionDiscardCard }
func (a *DiscardCardAction) String() string      { return fmt.Sprintf("discard card %d", a.Index) }

func (a *DiscardCardAction) Validate(_ *Board) error {
	if a.Index < 0 {
		return ErrInvalidCardSelection
	}
	return nil
}

// SkipCardsAction passes on the card-play sub-turn.
type SkipCardsAction struct {
	PlayerID int
}

func (a *SkipCardsAction) GetPlayerID() int        { return a.PlayerID }
func (a *SkipCardsAction) GetType() ActionType     { return ActionSkipCards }
func (a *SkipCardsAction) String() string          { return "skip card phase" }
func (a *SkipCardsAction) Validate(_ *Board) error { return nil }

// EndPhaseAction ends the current attack or fortify phase.
type EndPhaseAction struct {
	PlayerID int
}

func (a *EndPhaseAction) GetPlayerID() int        { return a.PlayerID }
func (a *EndPhaseAction) GetType() ActionType     { return ActionEndPhase }
func (a *EndPhaseAction) String() string          { return "end phase" }
func (a *EndPhaseAction) Validate(_ *Board) error { return nil }

// SurrenderAction hands every territory of a player to another player.
type SurrenderAction struct {
	PlayerID int
	To       int
}

func (a *SurrenderAction) GetPlayerID() int    { return a.PlayerID }
func (a *SurrenderAction) GetType() ActionType { return ActionSurrender }
func (a *SurrenderAction) String() string      { return fmt.Sprintf("surrender to player %d", a.To) }

func (a *SurrenderAction) Validate(_ *Board) error {
	if a.To == a.PlayerID || a.To < 0 {
		return ErrInvalidPlayer
	}
	return nil
}
