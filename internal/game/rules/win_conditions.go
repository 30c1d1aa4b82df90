package rules

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/conquest/internal/game/core"
)

// WinConditionChecker decides when a match is over. A player stays in the
// match while they are alive and hold at least one territory; the last such
// player wins.
type WinConditionChecker struct {
	logger zerolog.Logger
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger) *WinConditionChecker {
	return &WinConditionChecker{
		logger: logger.With().Str("component", "WinConditionChecker").Logger(),
	}
}

// CheckGameOver returns (isGameOver, winnerID). winnerID is -1 when the
// match goes on or nobody is left.
func (wc *WinConditionChecker) CheckGameOver(b *core.Board, players []Player) (bool, int) {
	var holders []int
	for _, p := range players {
		if p.IsAlive() && b.CountOwned(p.GetID()) > 0 {
			holders = append(holders, p.GetID())
		}
	}

	wc.logger.Debug().
		Ints("holding_player_ids", holders).
		Msg("Game over check complete")

	switch len(holders) {
	case 0:
		wc.logger.Info().Msg("No winner found, no player holds a territory")
		return true, -1
	case 1:
		winner := holders[0]
		wc.logger.Info().
			Int("winner_player_id", winner).
			Int("territories", b.CountOwned(winner)).
			Msg("Winner determined")
		return true, winner
	default:
		return false, -1
	}
}

// Player interface to avoid circular imports
type Player interface {
	GetID() int
	IsAlive() bool
}
