package processor

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/conquest/internal/game/core"
)

// ActionProcessor validates player actions and dispatches them onto a match
type ActionProcessor struct {
	logger zerolog.Logger
}

// NewActionProcessor creates a new action processor
func NewActionProcessor(logger zerolog.Logger) *ActionProcessor {
	return &ActionProcessor{
		logger: logger.With().Str("component", "ActionProcessor").Logger(),
	}
}

// Process applies a single action. The acting player and the board-level
// validity are checked here; phase rules are left to the handler. Errors are
// wrapped with the action that caused them.
func (ap *ActionProcessor) Process(h Handler, action core.Action) error {
	if action == nil {
		return core.WrapActionError(nil, core.ErrInvalidPlayer)
	}

	playerID := action.GetPlayerID()
	if acting := h.ActingPlayer(); playerID != acting {
		ap.logger.Debug().
			Int("player_id", playerID).
			Int("acting_player_id", acting).
			Msg("Ignoring action from player out of turn")
		return core.WrapActionError(action, core.ErrNotYourTurn)
	}

	if err := action.Validate(h.Board()); err != nil {
		return core.WrapActionError(action, err)
	}

	ap.logger.Debug().Int("player_id", playerID).Str("action", action.String()).Msg("Applying action")

	var err error
	switch act := action.(type) {
	case *core.DeployAction:
		err = h.Deploy(playerID, act.Territory, act.Amount)
	case *core.AttackAction:
		err = h.Attack(playerID, act)
	case *core.FortifyAction:
		err = h.Fortify(playerID, act.From, act.To, act.Amount)
	case *core.PlayCardsAction:
		err = h.PlayCards(playerID, act.Indices)
	case *core.DiscardCardAction:
		err = h.DiscardCard(playerID, act.Index)
	case *core.SkipCardsAction:
		err = h.SkipCards(playerID)
	case *core.EndPhaseAction:
		err = h.EndPhase(playerID)
	case *core.SurrenderAction:
		err = h.Surrender(playerID, act.To)
	default:
		ap.logger.Warn().Int("player_id", playerID).Str("action_type", core.GetActionType(action)).Msg("Unhandled action type")
		err = fmt.Errorf("unhandled action type %s", core.GetActionType(action))
	}

	if err != nil {
		wrapped := core.WrapActionError(action, err)
		ap.logger.Debug().Err(wrapped).Int("player_id", playerID).Msg("Action failed")
		return wrapped
	}
	return nil
}

// Handler is the match surface actions are dispatched to. It is implemented
// by the game package; defining it here avoids circular imports.
type Handler interface {
	ActingPlayer() int
	Board() *core.Board

	Deploy(playerID int, territory core.TerritoryID, amount int) error
	Attack(playerID int, action *core.AttackAction) error
	Fortify(playerID int, from, to core.TerritoryID, amount int) error
	PlayCards(playerID int, indices []int) error
	DiscardCard(playerID, index int) error
	SkipCards(playerID int) error
	EndPhase(playerID int) error
	Surrender(playerID, to int) error
}
