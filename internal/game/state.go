package game

import (
	"github.com/mitchelldurbincs/conquest/internal/game/ai"
	"github.com/mitchelldurbincs/conquest/internal/game/cards"
	"github.com/mitchelldurbincs/conquest/internal/game/core"
	"github.com/mitchelldurbincs/conquest/internal/game/states"
)

// HiddenTroops replaces the troop count of territories a viewer cannot see.
const HiddenTroops = -1

// HandBonus is the attack bonus a player earned in the current card round.
type HandBonus struct {
	Kind  cards.HandKind `json:"kind"`
	Value int            `json:"value"`
}

// Player is one seat of a match. A player is alive while holding at least
// one territory; eliminated players keep their seat and stats.
type Player struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	Color      string        `json:"color"`
	IsAI       bool          `json:"is_ai"`
	Difficulty ai.Difficulty `json:"difficulty"`

	ArmiesToDeploy int              `json:"armies_to_deploy"`
	Capital        core.TerritoryID `json:"capital"` // fixed at setup, kept after it is lost

	Hand                    []cards.Card `json:"hand"`
	AttackBonus             *HandBonus   `json:"attack_bonus,omitempty"`
	PlayedHand              []cards.Card `json:"played_hand,omitempty"`
	HasPlayedCardsThisRound bool         `json:"has_played_cards_this_round"`

	Alive bool        `json:"alive"`
	Stats PlayerStats `json:"stats"`
}

// GetID and IsAlive implement rules.Player.
func (p Player) GetID() int    { return p.ID }
func (p Player) IsAlive() bool { return p.Alive }

// AttackContext is the declared attack of the acting player.
type AttackContext struct {
	From core.TerritoryID `json:"from"`
	To   core.TerritoryID `json:"to"`
	Dice int              `json:"dice"`
}

// TurnState is the bookkeeping of automated play within one main turn.
type TurnState struct {
	SurrenderChecked bool `json:"surrender_checked"`
	GateRolled       bool `json:"gate_rolled"`
	WillAttack       bool `json:"will_attack"`
	Attacks          int  `json:"attacks"`
}

// GameState is the complete state of one match. Players are seated in turn
// order and a player's ID is its index.
type GameState struct {
	MatchID string           `json:"match_id"`
	MapID   string           `json:"map_id"`
	Round   int              `json:"round"`
	Phase   states.TurnPhase `json:"phase"`

	Players       []Player `json:"players"`
	CurrentPlayer int      `json:"current_player"`
	CardTurn      int      `json:"card_turn"`

	Board *core.Board `json:"-"`
	Deck  *cards.Deck `json:"deck"`

	AttackSource  core.TerritoryID `json:"attack_source,omitempty"`
	Attack        *AttackContext   `json:"attack,omitempty"`
	FortifySource core.TerritoryID `json:"fortify_source,omitempty"`
	FortifyTarget core.TerritoryID `json:"fortify_target,omitempty"`
	Blitzing      bool             `json:"blitzing"`
	BlitzRounds   int              `json:"blitz_rounds"`

	Revealed map[core.TerritoryID]bool `json:"revealed"`
	Turn     TurnState                 `json:"turn"`
	Winner   int                       `json:"winner"`
}

// Clone returns a deep copy that shares only the immutable map graph.
func (gs *GameState) Clone() *GameState {
	out := *gs
	out.Board = gs.Board.Clone()
	out.Deck = gs.Deck.Clone()
	if gs.Attack != nil {
		a := *gs.Attack
		out.Attack = &a
	}
	out.Revealed = make(map[core.TerritoryID]bool, len(gs.Revealed))
	for id, v := range gs.Revealed {
		out.Revealed[id] = v
	}
	out.Players = make([]Player, len(gs.Players))
	for i, p := range gs.Players {
		p.Hand = append([]cards.Card(nil), p.Hand...)
		p.PlayedHand = append([]cards.Card(nil), p.PlayedHand...)
		if p.AttackBonus != nil {
			b := *p.AttackBonus
			p.AttackBonus = &b
		}
		out.Players[i] = p
	}
	return &out
}

// ActingPlayer returns the player expected to act next, or -1 when nobody can.
func (gs *GameState) ActingPlayer() int {
	switch {
	case gs.Phase == states.PhaseCardPlayRound:
		if gs.CardTurn >= 0 && gs.CardTurn < len(gs.Players) {
			return gs.CardTurn
		}
		return -1
	case gs.Phase.IsMainTurn():
		return gs.CurrentPlayer
	default:
		return -1
	}
}

// Player returns a player by ID, nil when out of range.
func (gs *GameState) Player(id int) *Player {
	if id < 0 || id >= len(gs.Players) {
		return nil
	}
	return &gs.Players[id]
}

// AliveIDs returns the IDs of players still in the match, in seat order.
func (gs *GameState) AliveIDs() []int {
	var out []int
	for _, p := range gs.Players {
		if p.Alive {
			out = append(out, p.ID)
		}
	}
	return out
}

// HumanIDs returns the IDs of every human seat, eliminated or not.
func (gs *GameState) HumanIDs() []int {
	var out []int
	for _, p := range gs.Players {
		if !p.IsAI {
			out = append(out, p.ID)
		}
	}
	return out
}

// Capitals lists every player's capital, whoever holds it now.
func (gs *GameState) Capitals() []core.TerritoryID {
	out := make([]core.TerritoryID, 0, len(gs.Players))
	for _, p := range gs.Players {
		out = append(out, p.Capital)
	}
	return out
}

// IsOver reports whether a winner has been decided.
func (gs *GameState) IsOver() bool {
	return gs.Phase.IsTerminal()
}
