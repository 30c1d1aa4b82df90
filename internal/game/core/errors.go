package core

import (
	"errors"
	"fmt"
)

var (
	ErrWrongPhase           = errors.New("action not allowed in current phase")
	ErrNotYourTurn          = errors.New("not the acting player's turn")
	ErrUnknownTerritory     = errors.New("unknown territory")
	ErrNotAdjacent          = errors.New("territories are not adjacent")
	ErrNotOwned             = errors.New("territory not owned by player")
	ErrOwnTerritory         = errors.New("cannot attack own territory")
	ErrInsufficientTroops   = errors.New("insufficient troops")
	ErrInvalidAmount        = errors.New("invalid troop amount")
	ErrInvalidDice          = errors.New("invalid dice count")
	ErrNoAttackContext      = errors.New("no attack declared")
	ErrNoFortifySelection   = errors.New("fortify source and target not selected")
	ErrAlreadyFortified     = errors.New("fortify already used this turn")
	ErrBlitzInProgress      = errors.New("blitz in progress")
	ErrUndeployedTroops     = errors.New("reinforcements left to deploy")
	ErrInvalidCardSelection = errors.New("invalid card selection")
	ErrNotAValidHand        = errors.New("cards do not form a valid hand")
	ErrAlreadyPlayedCards   = errors.New("cards already played this round")
	ErrDeckExhausted        = errors.New("deck and discard pile are both empty")
	ErrGameOver             = errors.New("game is over")
	ErrInvalidPlayer        = errors.New("invalid player ID")
	ErrInvalidMap           = errors.New("invalid map")
)

// WrapActionError annotates err with the player and the action that caused it.
// errors.Is still matches the wrapped sentinel.
func WrapActionError(action Action, err error) error {
	if err == nil {
		return nil
	}
	if action == nil {
		return fmt.Errorf("player action: %w", err)
	}
	return fmt.Errorf("player %d: %s: %w", action.GetPlayerID(), action.String(), err)
}
