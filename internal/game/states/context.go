package states

import (
	"time"

	"github.com/rs/zerolog"
)

// GameContext provides match-specific information to states for making decisions
type GameContext struct {
	// MatchID uniquely identifies this match
	MatchID string

	// Logger for state-specific logging
	Logger zerolog.Logger

	// PlayerCount is the number of seats in the match
	PlayerCount int

	// CurrentPlayer is the index of the acting player
	CurrentPlayer int

	// Round counts card-play rounds, starting at 1
	Round int

	// StartTime is when the first round began
	StartTime time.Time

	// EndTime is when the match reached PhaseGameOver
	EndTime time.Time

	// Winner is the player ID of the winner (if the match ended)
	Winner int
}

// NewGameContext creates a new game context
func NewGameContext(matchID string, playerCount int, logger zerolog.Logger) *GameContext {
	return &GameContext{
		MatchID:     matchID,
		PlayerCount: playerCount,
		Logger:      logger.With().Str("match_id", matchID).Logger(),
		Winner:      -1, // -1 indicates no winner yet
	}
}

// HasWinner reports whether a winner has been recorded
func (gc *GameContext) HasWinner() bool {
	return gc.Winner >= 0
}

// GetElapsedTime returns the time between the first round and the end (or now)
func (gc *GameContext) GetElapsedTime() time.Duration {
	if gc.StartTime.IsZero() {
		return 0
	}
	if !gc.EndTime.IsZero() {
		return gc.EndTime.Sub(gc.StartTime)
	}
	return time.Since(gc.StartTime)
}
