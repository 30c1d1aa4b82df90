package states

import (
	"fmt"
	"sync"
	"time"

	"github.com/mitchelldurbincs/conquest/internal/game/events"
)

// State represents a turn phase with lifecycle callbacks
type State interface {
	// Phase returns the TurnPhase this state represents
	Phase() TurnPhase

	// Enter is called when transitioning into this state
	Enter(ctx *GameContext) error

	// Exit is called when transitioning out of this state
	Exit(ctx *GameContext) error

	// Validate checks if the state is valid given the context
	Validate(ctx *GameContext) error
}

// Transition represents a state transition in the history
type Transition struct {
	From      TurnPhase
	To        TurnPhase
	Timestamp time.Time
	Reason    string
}

// StateMachine manages turn phase transitions and history
type StateMachine struct {
	mu             sync.RWMutex
	currentPhase   TurnPhase
	states         map[TurnPhase]State
	context        *GameContext
	history        []Transition
	maxHistorySize int
	eventBus       events.Publisher
}

// NewStateMachine creates a new state machine starting in PhaseSetup
func NewStateMachine(ctx *GameContext, eventBus events.Publisher) *StateMachine {
	sm := &StateMachine{
		currentPhase:   PhaseSetup,
		states:         make(map[TurnPhase]State),
		context:        ctx,
		history:        make([]Transition, 0, 100),
		maxHistorySize: 1000,
		eventBus:       eventBus,
	}

	sm.registerDefaultStates()

	return sm
}

// registerDefaultStates registers the built-in state implementations
func (sm *StateMachine) registerDefaultStates() {
	sm.RegisterState(NewSetupState())
	sm.RegisterState(NewCardPlayRoundState())
	sm.RegisterState(NewReinforceState())
	sm.RegisterState(NewAttackState())
	sm.RegisterState(NewFortifyState())
	sm.RegisterState(NewGameOverState())
}

// RegisterState registers a state implementation
func (sm *StateMachine) RegisterState(state State) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.states[state.Phase()] = state
}

// CurrentPhase returns the current turn phase
func (sm *StateMachine) CurrentPhase() TurnPhase {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.currentPhase
}

// TransitionTo attempts to transition to the specified phase. The transition
// event is published after the lock is released so subscribers may query the machine.
func (sm *StateMachine) TransitionTo(targetPhase TurnPhase, reason string) error {
	previousPhase, err := sm.transition(targetPhase, reason)
	if err != nil {
		return err
	}

	if sm.eventBus != nil {
		sm.eventBus.Publish(events.NewStateTransitionEvent(
			sm.context.MatchID,
			previousPhase.String(),
			targetPhase.String(),
			reason,
		))
	}

	sm.context.Logger.Debug().
		Str("from_phase", previousPhase.String()).
		Str("to_phase", targetPhase.String()).
		Str("reason", reason).
		Msg("State transition completed")

	return nil
}

func (sm *StateMachine) transition(targetPhase TurnPhase, reason string) (TurnPhase, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.currentPhase.CanTransitionTo(targetPhase) {
		return sm.currentPhase, fmt.Errorf("invalid transition from %s to %s", sm.currentPhase, targetPhase)
	}

	currentState, hasCurrentState := sm.states[sm.currentPhase]
	targetState, hasTargetState := sm.states[targetPhase]

	if !hasTargetState {
		return sm.currentPhase, fmt.Errorf("no state implementation for phase %s", targetPhase)
	}

	if err := targetState.Validate(sm.context); err != nil {
		return sm.currentPhase, fmt.Errorf("target state validation failed: %w", err)
	}

	if hasCurrentState {
		if err := currentState.Exit(sm.context); err != nil {
			sm.context.Logger.Error().
				Err(err).
				Str("from_phase", sm.currentPhase.String()).
				Str("to_phase", targetPhase.String()).
				Msg("Error exiting state")
			// Continue with transition despite exit error
		}
	}

	previousPhase := sm.currentPhase
	sm.currentPhase = targetPhase

	if err := targetState.Enter(sm.context); err != nil {
		// Rollback on enter failure
		sm.currentPhase = previousPhase
		return previousPhase, fmt.Errorf("failed to enter state %s: %w", targetPhase, err)
	}

	sm.addToHistory(Transition{
		From:      previousPhase,
		To:        targetPhase,
		Timestamp: time.Now(),
		Reason:    reason,
	})

	return previousPhase, nil
}

// addToHistory adds a transition to the history, maintaining max size
func (sm *StateMachine) addToHistory(transition Transition) {
	sm.history = append(sm.history, transition)

	if len(sm.history) > sm.maxHistorySize {
		// Keep the most recent entries
		sm.history = sm.history[len(sm.history)-sm.maxHistorySize:]
	}
}

// GetHistory returns a copy of the transition history
func (sm *StateMachine) GetHistory() []Transition {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	history := make([]Transition, len(sm.history))
	copy(history, sm.history)
	return history
}

// GetContext returns the game context
func (sm *StateMachine) GetContext() *GameContext {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.context
}

// CanTransitionTo checks if a transition to the target phase is allowed
func (sm *StateMachine) CanTransitionTo(targetPhase TurnPhase) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.currentPhase.CanTransitionTo(targetPhase)
}
