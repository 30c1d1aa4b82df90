package events

import (
	"time"

	"github.com/mitchelldurbincs/conquest/internal/game/cards"
	"github.com/mitchelldurbincs/conquest/internal/game/core"
)

// Event type constants
const (
	TypeMatchStarted          = "match.started"
	TypeMatchEnded            = "match.ended"
	TypeRoundStarted          = "round.started"
	TypeTurnStarted           = "turn.started"
	TypeTurnEnded             = "turn.ended"
	TypeReinforcementsGranted = "reinforcements.granted"
	TypeTroopsDeployed        = "troops.deployed"
	TypeCardsPlayed           = "cards.played"
	TypeCardDiscarded         = "card.discarded"
	TypeCardsSkipped          = "cards.skipped"
	TypeDeckReshuffled        = "deck.reshuffled"
	TypeDeckExhausted         = "deck.exhausted"
	TypeAttackDeclared        = "attack.declared"
	TypeBattleResolved        = "battle.resolved"
	TypeTerritoryConquered    = "territory.conquered"
	TypeCapitalCaptured       = "capital.captured"
	TypeBlitzStarted          = "blitz.started"
	TypeBlitzStopped          = "blitz.stopped"
	TypeFortified             = "fortify.completed"
	TypeTerritoriesRevealed   = "fog.revealed"
	TypePlayerEliminated      = "player.eliminated"
	TypePlayerSurrendered     = "player.surrendered"
	TypePlayerWon             = "player.won"
	TypeStateTransition       = "state.transition"
	TypeActionRejected        = "action.rejected"
)

// MatchStartedEvent is published when a new match begins
type MatchStartedEvent struct {
	BaseEvent
	NumPlayers int    `json:"num_players"`
	MapID      string `json:"map_id"`
	Seed       int64  `json:"seed"`
}

// NewMatchStartedEvent creates a new MatchStartedEvent
func NewMatchStartedEvent(matchID string, numPlayers int, mapID string, seed int64) *MatchStartedEvent {
	return &MatchStartedEvent{
		BaseEvent:  newBase(TypeMatchStarted, matchID),
		NumPlayers: numPlayers,
		MapID:      mapID,
		Seed:       seed,
	}
}

// MatchEndedEvent is published once when a match ends
type MatchEndedEvent struct {
	BaseEvent
	Winner   int           `json:"winner"`
	Rounds   int           `json:"rounds"`
	Duration time.Duration `json:"duration"`
}

// NewMatchEndedEvent creates a new MatchEndedEvent
func NewMatchEndedEvent(matchID string, winner, rounds int, duration time.Duration) *MatchEndedEvent {
	return &MatchEndedEvent{
		BaseEvent: newBase(TypeMatchEnded, matchID),
		Winner:    winner,
		Rounds:    rounds,
		Duration:  duration,
	}
}

// RoundStartedEvent is published when a new card-play round opens
type RoundStartedEvent struct {
	BaseEvent
	Round int `json:"round"`
}

// NewRoundStartedEvent creates a new RoundStartedEvent
func NewRoundStartedEvent(matchID string, round int) *RoundStartedEvent {
	return &RoundStartedEvent{
		BaseEvent: newBase(TypeRoundStarted, matchID),
		Round:     round,
	}
}

// TurnStartedEvent is published when a player's main turn begins
type TurnStartedEvent struct {
	BaseEvent
	Metadata EventMetadata `json:"metadata"`
}

// NewTurnStartedEvent creates a new TurnStartedEvent
func NewTurnStartedEvent(matchID string, playerID, round int) *TurnStartedEvent {
	return &TurnStartedEvent{
		BaseEvent: newBase(TypeTurnStarted, matchID),
		Metadata:  EventMetadata{PlayerID: playerID, Round: round},
	}
}

// TurnEndedEvent is published after a player's fortify phase
type TurnEndedEvent struct {
	BaseEvent
	Metadata   EventMetadata `json:"metadata"`
	Entrenched int           `json:"entrenched"` // territories whose counter advanced
}

// NewTurnEndedEvent creates a new TurnEndedEvent
func NewTurnEndedEvent(matchID string, playerID, round, entrenched int) *TurnEndedEvent {
	return &TurnEndedEvent{
		BaseEvent:  newBase(TypeTurnEnded, matchID),
		Metadata:   EventMetadata{PlayerID: playerID, Round: round},
		Entrenched: entrenched,
	}
}

// ReinforcementsGrantedEvent is published when a player's pool is filled
type ReinforcementsGrantedEvent struct {
	BaseEvent
	PlayerID       int `json:"player_id"`
	Base           int `json:"base"`
	ContinentBonus int `json:"continent_bonus"`
	CapitalBonus   int `json:"capital_bonus"`
	Total          int `json:"total"`
}

// NewReinforcementsGrantedEvent creates a new ReinforcementsGrantedEvent
func NewReinforcementsGrantedEvent(matchID string, playerID, base, continentBonus, capitalBonus int) *ReinforcementsGrantedEvent {
	return &ReinforcementsGrantedEvent{
		BaseEvent:      newBase(TypeReinforcementsGranted, matchID),
		PlayerID:       playerID,
		Base:           base,
		ContinentBonus: continentBonus,
		CapitalBonus:   capitalBonus,
		Total:          base + continentBonus + capitalBonus,
	}
}

// TroopsDeployedEvent is published when reinforcements are placed
type TroopsDeployedEvent struct {
	BaseEvent
	PlayerID  int              `json:"player_id"`
	Territory core.TerritoryID `json:"territory"`
	Amount    int              `json:"amount"`
	Remaining int              `json:"remaining"`
}

// NewTroopsDeployedEvent creates a new TroopsDeployedEvent
func NewTroopsDeployedEvent(matchID string, playerID int, territory core.TerritoryID, amount, remaining int) *TroopsDeployedEvent {
	return &TroopsDeployedEvent{
		BaseEvent: newBase(TypeTroopsDeployed, matchID),
		PlayerID:  playerID,
		Territory: territory,
		Amount:    amount,
		Remaining: remaining,
	}
}

// CardsPlayedEvent is published when a player turns in a three-card hand
type CardsPlayedEvent struct {
	BaseEvent
	PlayerID int          `json:"player_id"`
	Cards    []cards.Card `json:"cards"`
	Hand     string       `json:"hand"`
	Bonus    int          `json:"bonus"`
	Drawn    int          `json:"drawn"`
}

// NewCardsPlayedEvent creates a new CardsPlayedEvent
func NewCardsPlayedEvent(matchID string, playerID int, played []cards.Card, kind cards.HandKind, bonus, drawn int) *CardsPlayedEvent {
	return &CardsPlayedEvent{
		BaseEvent: newBase(TypeCardsPlayed, matchID),
		PlayerID:  playerID,
		Cards:     append([]cards.Card(nil), played...),
		Hand:      kind.String(),
		Bonus:     bonus,
		Drawn:     drawn,
	}
}

// CardDiscardedEvent is published when a single card is exchanged
type CardDiscardedEvent struct {
	BaseEvent
	PlayerID int        `json:"player_id"`
	Card     cards.Card `json:"card"`
	Drawn    int        `json:"drawn"`
}

// NewCardDiscardedEvent creates a new CardDiscardedEvent
func NewCardDiscardedEvent(matchID string, playerID int, card cards.Card, drawn int) *CardDiscardedEvent {
	return &CardDiscardedEvent{
		BaseEvent: newBase(TypeCardDiscarded, matchID),
		PlayerID:  playerID,
		Card:      card,
		Drawn:     drawn,
	}
}

// CardsSkippedEvent is published when a player passes the card sub-turn,
// or is passed automatically because it holds no territory.
type CardsSkippedEvent struct {
	BaseEvent
	PlayerID  int    `json:"player_id"`
	Reason    string `json:"reason"`
	Discarded int    `json:"discarded"`
}

// NewCardsSkippedEvent creates a new CardsSkippedEvent
func NewCardsSkippedEvent(matchID string, playerID int, reason string, discarded int) *CardsSkippedEvent {
	return &CardsSkippedEvent{
		BaseEvent: newBase(TypeCardsSkipped, matchID),
		PlayerID:  playerID,
		Reason:    reason,
		Discarded: discarded,
	}
}

// DeckReshuffledEvent is published when the discard pile becomes the deck
type DeckReshuffledEvent struct {
	BaseEvent
	Cards int `json:"cards"`
}

// NewDeckReshuffledEvent creates a new DeckReshuffledEvent
func NewDeckReshuffledEvent(matchID string, n int) *DeckReshuffledEvent {
	return &DeckReshuffledEvent{
		BaseEvent: newBase(TypeDeckReshuffled, matchID),
		Cards:     n,
	}
}

// DeckExhaustedEvent is published when a draw finds both piles empty
type DeckExhaustedEvent struct {
	BaseEvent
	PlayerID int `json:"player_id"`
	Missing  int `json:"missing"`
}

// NewDeckExhaustedEvent creates a new DeckExhaustedEvent
func NewDeckExhaustedEvent(matchID string, playerID, missing int) *DeckExhaustedEvent {
	return &DeckExhaustedEvent{
		BaseEvent: newBase(TypeDeckExhausted, matchID),
		PlayerID:  playerID,
		Missing:   missing,
	}
}

// AttackDeclaredEvent is published when an attack context is set
type AttackDeclaredEvent struct {
	BaseEvent
	PlayerID   int              `json:"player_id"`
	DefenderID int              `json:"defender_id"`
	From       core.TerritoryID `json:"from"`
	To         core.TerritoryID `json:"to"`
	Dice       int              `json:"dice"`
}

// NewAttackDeclaredEvent creates a new AttackDeclaredEvent
func NewAttackDeclaredEvent(matchID string, playerID, defenderID int, from, to core.TerritoryID, dice int) *AttackDeclaredEvent {
	return &AttackDeclaredEvent{
		BaseEvent:  newBase(TypeAttackDeclared, matchID),
		PlayerID:   playerID,
		DefenderID: defenderID,
		From:       from,
		To:         to,
		Dice:       dice,
	}
}

// BattleResolvedEvent is published after every dice exchange or decisive roll
type BattleResolvedEvent struct {
	BaseEvent
	AttackerID     int              `json:"attacker_id"`
	DefenderID     int              `json:"defender_id"`
	From           core.TerritoryID `json:"from"`
	To             core.TerritoryID `json:"to"`
	AttackerRolls  []int            `json:"attacker_rolls"`
	DefenderRolls  []int            `json:"defender_rolls"`
	AttackerBonus  int              `json:"attacker_bonus"`
	DefenderBonus  int              `json:"defender_bonus"`
	AttackerLosses int              `json:"attacker_losses"`
	DefenderLosses int              `json:"defender_losses"`
	Decisive       bool             `json:"decisive"`
	Conquered      bool             `json:"conquered"`
}

// NewBattleResolvedEvent creates a BattleResolvedEvent; the caller fills in the outcome.
func NewBattleResolvedEvent(matchID string, attackerID, defenderID int, from, to core.TerritoryID) *BattleResolvedEvent {
	return &BattleResolvedEvent{
		BaseEvent:  newBase(TypeBattleResolved, matchID),
		AttackerID: attackerID,
		DefenderID: defenderID,
		From:       from,
		To:         to,
	}
}

// TerritoryConqueredEvent is published when ownership changes by battle
type TerritoryConqueredEvent struct {
	BaseEvent
	PlayerID      int              `json:"player_id"`
	PreviousOwner int              `json:"previous_owner"`
	From          core.TerritoryID `json:"from"`
	Territory     core.TerritoryID `json:"territory"`
	MovedIn       int              `json:"moved_in"`
}

// NewTerritoryConqueredEvent creates a new TerritoryConqueredEvent
func NewTerritoryConqueredEvent(matchID string, playerID, previousOwner int, from, territory core.TerritoryID, movedIn int) *TerritoryConqueredEvent {
	return &TerritoryConqueredEvent{
		BaseEvent:     newBase(TypeTerritoryConquered, matchID),
		PlayerID:      playerID,
		PreviousOwner: previousOwner,
		From:          from,
		Territory:     territory,
		MovedIn:       movedIn,
	}
}

// CapitalCapturedEvent is published when a capital changes hands
type CapitalCapturedEvent struct {
	BaseEvent
	PlayerID      int              `json:"player_id"`
	PreviousOwner int              `json:"previous_owner"`
	CapitalOf     int              `json:"capital_of"`
	Territory     core.TerritoryID `json:"territory"`
}

// NewCapitalCapturedEvent creates a new CapitalCapturedEvent
func NewCapitalCapturedEvent(matchID string, playerID, previousOwner, capitalOf int, territory core.TerritoryID) *CapitalCapturedEvent {
	return &CapitalCapturedEvent{
		BaseEvent:     newBase(TypeCapitalCaptured, matchID),
		PlayerID:      playerID,
		PreviousOwner: previousOwner,
		CapitalOf:     capitalOf,
		Territory:     territory,
	}
}

// BlitzStartedEvent is published when blitz mode is switched on
type BlitzStartedEvent struct {
	BaseEvent
	PlayerID int              `json:"player_id"`
	From     core.TerritoryID `json:"from"`
	To       core.TerritoryID `json:"to"`
}

// NewBlitzStartedEvent creates a new BlitzStartedEvent
func NewBlitzStartedEvent(matchID string, playerID int, from, to core.TerritoryID) *BlitzStartedEvent {
	return &BlitzStartedEvent{
		BaseEvent: newBase(TypeBlitzStarted, matchID),
		PlayerID:  playerID,
		From:      from,
		To:        to,
	}
}

// Blitz stop reasons
const (
	BlitzCancelled = "cancelled"
	BlitzConquered = "conquered"
	BlitzExhausted = "exhausted"
)

// BlitzStoppedEvent is published when blitz mode ends for any reason
type BlitzStoppedEvent struct {
	BaseEvent
	PlayerID int              `json:"player_id"`
	From     core.TerritoryID `json:"from"`
	To       core.TerritoryID `json:"to"`
	Rounds   int              `json:"rounds"`
	Reason   string           `json:"reason"`
}

// NewBlitzStoppedEvent creates a new BlitzStoppedEvent
func NewBlitzStoppedEvent(matchID string, playerID int, from, to core.TerritoryID, rounds int, reason string) *BlitzStoppedEvent {
	return &BlitzStoppedEvent{
		BaseEvent: newBase(TypeBlitzStopped, matchID),
		PlayerID:  playerID,
		From:      from,
		To:        to,
		Rounds:    rounds,
		Reason:    reason,
	}
}

// FortifiedEvent is published after the single fortify move of a turn
type FortifiedEvent struct {
	BaseEvent
	PlayerID int              `json:"player_id"`
	From     core.TerritoryID `json:"from"`
	To       core.TerritoryID `json:"to"`
	Amount   int              `json:"amount"`
}

// NewFortifiedEvent creates a new FortifiedEvent
func NewFortifiedEvent(matchID string, playerID int, from, to core.TerritoryID, amount int) *FortifiedEvent {
	return &FortifiedEvent{
		BaseEvent: newBase(TypeFortified, matchID),
		PlayerID:  playerID,
		From:      from,
		To:        to,
		Amount:    amount,
	}
}

// TerritoriesRevealedEvent is published when fog of war lifts from territories
type TerritoriesRevealedEvent struct {
	BaseEvent
	Territories []core.TerritoryID `json:"territories"`
}

// NewTerritoriesRevealedEvent creates a new TerritoriesRevealedEvent
func NewTerritoriesRevealedEvent(matchID string, ids []core.TerritoryID) *TerritoriesRevealedEvent {
	return &TerritoriesRevealedEvent{
		BaseEvent:   newBase(TypeTerritoriesRevealed, matchID),
		Territories: append([]core.TerritoryID(nil), ids...),
	}
}

// PlayerEliminatedEvent is published when a player loses its last territory
type PlayerEliminatedEvent struct {
	BaseEvent
	PlayerID     int `json:"player_id"`
	EliminatedBy int `json:"eliminated_by"`
	FinalRank    int `json:"final_rank"`
}

// NewPlayerEliminatedEvent creates a new PlayerEliminatedEvent
func NewPlayerEliminatedEvent(matchID string, playerID, eliminatedBy, rank int) *PlayerEliminatedEvent {
	return &PlayerEliminatedEvent{
		BaseEvent:    newBase(TypePlayerEliminated, matchID),
		PlayerID:     playerID,
		EliminatedBy: eliminatedBy,
		FinalRank:    rank,
	}
}

// PlayerSurrenderedEvent is published when an AI hands its territories over
type PlayerSurrenderedEvent struct {
	BaseEvent
	PlayerID    int `json:"player_id"`
	To          int `json:"to"`
	Territories int `json:"territories"`
}

// NewPlayerSurrenderedEvent creates a new PlayerSurrenderedEvent
func NewPlayerSurrenderedEvent(matchID string, playerID, to, territories int) *PlayerSurrenderedEvent {
	return &PlayerSurrenderedEvent{
		BaseEvent:   newBase(TypePlayerSurrendered, matchID),
		PlayerID:    playerID,
		To:          to,
		Territories: territories,
	}
}

// PlayerWonEvent is published exactly once per match
type PlayerWonEvent struct {
	BaseEvent
	PlayerID int `json:"player_id"`
}

// NewPlayerWonEvent creates a new PlayerWonEvent
func NewPlayerWonEvent(matchID string, playerID int) *PlayerWonEvent {
	return &PlayerWonEvent{
		BaseEvent: newBase(TypePlayerWon, matchID),
		PlayerID:  playerID,
	}
}

// StateTransitionEvent is published when the turn phase changes
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string `json:"from_phase"`
	ToPhase   string `json:"to_phase"`
	Reason    string `json:"reason"`
}

// NewStateTransitionEvent creates a new StateTransitionEvent
func NewStateTransitionEvent(matchID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, matchID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}

// ActionRejectedEvent is published when an illegal action is ignored
type ActionRejectedEvent struct {
	BaseEvent
	PlayerID int    `json:"player_id"`
	Action   string `json:"action"`
	Reason   string `json:"reason"`
}

// NewActionRejectedEvent creates a new ActionRejectedEvent
func NewActionRejectedEvent(matchID string, playerID int, action string, err error) *ActionRejectedEvent {
	reason := ""
	if err != nil {
		reason = err.Error()
	}
	return &ActionRejectedEvent{
		BaseEvent: newBase(TypeActionRejected, matchID),
		PlayerID:  playerID,
		Action:    action,
		Reason:    reason,
	}
}
