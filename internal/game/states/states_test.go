package states

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestStateImplementations(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("SetupState", func(t *testing.T) {
		state := NewSetupState()
		ctx := NewGameContext("test", 4, logger)

		assert.Equal(t, PhaseSetup, state.Phase())
		assert.NoError(t, state.Enter(ctx))
		assert.NoError(t, state.Exit(ctx))
		assert.NoError(t, state.Validate(ctx))
	})

	t.Run("CardPlayRoundState", func(t *testing.T) {
		state := NewCardPlayRoundState()
		ctx := NewGameContext("test", 4, logger)

		assert.Equal(t, PhaseCardPlayRound, state.Phase())
		assert.Error(t, state.Validate(ctx))

		ctx.Round = 1
		assert.NoError(t, state.Validate(ctx))
		assert.NoError(t, state.Enter(ctx))
		assert.False(t, ctx.StartTime.IsZero())

		// A later round keeps the original start time
		started := ctx.StartTime
		ctx.Round = 2
		assert.NoError(t, state.Enter(ctx))
		assert.Equal(t, started, ctx.StartTime)
		assert.NoError(t, state.Exit(ctx))
	})

	t.Run("MainTurnStates", func(t *testing.T) {
		for _, state := range []State{NewReinforceState(), NewAttackState(), NewFortifyState()} {
			ctx := NewGameContext("test", 3, logger)

			assert.True(t, state.Phase().IsMainTurn())
			assert.NoError(t, state.Validate(ctx))
			assert.NoError(t, state.Enter(ctx))
			assert.NoError(t, state.Exit(ctx))

			ctx.CurrentPlayer = 3
			assert.Error(t, state.Validate(ctx), state.Phase().String())
			ctx.CurrentPlayer = -1
			assert.Error(t, state.Validate(ctx), state.Phase().String())
		}
	})

	t.Run("GameOverState", func(t *testing.T) {
		state := NewGameOverState()
		ctx := NewGameContext("test", 4, logger)

		assert.Equal(t, PhaseGameOver, state.Phase())
		assert.Error(t, state.Validate(ctx))

		ctx.Winner = 2
		assert.NoError(t, state.Validate(ctx))
		assert.NoError(t, state.Enter(ctx))
		assert.False(t, ctx.EndTime.IsZero())
		assert.Error(t, state.Exit(ctx))
	})
}
