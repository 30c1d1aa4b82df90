package states

import (
	"fmt"
	"time"
)

// SetupState represents the opening deal
type SetupState struct{}

func NewSetupState() State {
	return &SetupState{}
}

func (s *SetupState) Phase() TurnPhase {
	return PhaseSetup
}

func (s *SetupState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().Msg("Entering Setup state")
	return nil
}

func (s *SetupState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().
		Int("player_count", ctx.PlayerCount).
		Msg("Setup complete")
	return nil
}

func (s *SetupState) Validate(ctx *GameContext) error {
	return nil
}

// CardPlayRoundState represents the card sub-turns that open every round
type CardPlayRoundState struct{}

func NewCardPlayRoundState() State {
	return &CardPlayRoundState{}
}

func (s *CardPlayRoundState) Phase() TurnPhase {
	return PhaseCardPlayRound
}

func (s *CardPlayRoundState) Enter(ctx *GameContext) error {
	if ctx.StartTime.IsZero() {
		ctx.StartTime = time.Now()
	}
	ctx.Logger.Debug().
		Int("round", ctx.Round).
		Msg("Card play round opened")
	return nil
}

func (s *CardPlayRoundState) Exit(ctx *GameContext) error {
	ctx.Logger.Debug().
		Int("round", ctx.Round).
		Msg("Card play round closed")
	return nil
}

func (s *CardPlayRoundState) Validate(ctx *GameContext) error {
	if ctx.Round < 1 {
		return fmt.Errorf("card play round requires round >= 1, got %d", ctx.Round)
	}
	return nil
}

// ReinforceState represents the placement of a player's reinforcement pool
type ReinforceState struct{}

func NewReinforceState() State {
	return &ReinforceState{}
}

func (s *ReinforceState) Phase() TurnPhase {
	return PhaseReinforce
}

func (s *ReinforceState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().
		Int("player_id", ctx.CurrentPlayer).
		Msg("Reinforcement phase")
	return nil
}

func (s *ReinforceState) Exit(ctx *GameContext) error {
	return nil
}

func (s *ReinforceState) Validate(ctx *GameContext) error {
	return validateCurrentPlayer(ctx)
}

// AttackState represents a player's attack phase
type AttackState struct{}

func NewAttackState() State {
	return &AttackState{}
}

func (s *AttackState) Phase() TurnPhase {
	return PhaseAttack
}

func (s *AttackState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().
		Int("player_id", ctx.CurrentPlayer).
		Msg("Attack phase")
	return nil
}

func (s *AttackState) Exit(ctx *GameContext) error {
	return nil
}

func (s *AttackState) Validate(ctx *GameContext) error {
	return validateCurrentPlayer(ctx)
}

// FortifyState represents a player's fortify phase
type FortifyState struct{}

func NewFortifyState() State {
	return &FortifyState{}
}

func (s *FortifyState) Phase() TurnPhase {
	return PhaseFortify
}

func (s *FortifyState) Enter(ctx *GameContext) error {
	ctx.Logger.Debug().
		Int("player_id", ctx.CurrentPlayer).
		Msg("Fortify phase")
	return nil
}

func (s *FortifyState) Exit(ctx *GameContext) error {
	return nil
}

func (s *FortifyState) Validate(ctx *GameContext) error {
	return validateCurrentPlayer(ctx)
}

// GameOverState represents a finished match
type GameOverState struct{}

func NewGameOverState() State {
	return &GameOverState{}
}

func (s *GameOverState) Phase() TurnPhase {
	return PhaseGameOver
}

func (s *GameOverState) Enter(ctx *GameContext) error {
	ctx.EndTime = time.Now()
	ctx.Logger.Info().
		Int("winner", ctx.Winner).
		Int("rounds", ctx.Round).
		Dur("match_duration", ctx.GetElapsedTime()).
		Msg("Match ended")
	return nil
}

func (s *GameOverState) Exit(ctx *GameContext) error {
	return fmt.Errorf("cannot leave a finished match")
}

func (s *GameOverState) Validate(ctx *GameContext) error {
	if !ctx.HasWinner() {
		return fmt.Errorf("game over requires a winner")
	}
	return nil
}

func validateCurrentPlayer(ctx *GameContext) error {
	if ctx.CurrentPlayer < 0 || ctx.CurrentPlayer >= ctx.PlayerCount {
		return fmt.Errorf("current player %d out of range [0, %d)", ctx.CurrentPlayer, ctx.PlayerCount)
	}
	return nil
}
