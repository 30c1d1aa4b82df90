package rules

import "github.com/mitchelldurbincs/conquest/internal/game/core"

// Move is a legal source/target pair.
type Move struct {
	From    core.TerritoryID
	To      core.TerritoryID
	MaxDice int // attacks only
}

// LegalMoveCalculator computes legal moves for players
type LegalMoveCalculator struct{}

// NewLegalMoveCalculator creates a new legal move calculator
func NewLegalMoveCalculator() *LegalMoveCalculator {
	return &LegalMoveCalculator{}
}

// AttackMoves lists every owned territory with more than one troop paired
// with each adjacent enemy territory, in sorted order.
func (lmc *LegalMoveCalculator) AttackMoves(board *core.Board, player Player) []Move {
	if !player.IsAlive() {
		return nil
	}
	playerID := player.GetID()

	var moves []Move
	for _, from := range board.OwnedBy(playerID) {
		troops := board.TroopsOf(from)
		if troops <= 1 {
			continue
		}
		for _, to := range board.Graph.Neighbors(from) {
			action := &core.AttackAction{PlayerID: playerID, From: from, To: to, Quick: true}
			if err := action.Validate(board); err == nil {
				moves = append(moves, Move{From: from, To: to, MaxDice: MaxAttackDice(troops)})
			}
		}
	}
	return moves
}

// FortifyMoves lists every adjacent owned pair whose source can spare a troop.
func (lmc *LegalMoveCalculator) FortifyMoves(board *core.Board, player Player) []Move {
	if !player.IsAlive() {
		return nil
	}
	playerID := player.GetID()

	var moves []Move
	for _, from := range board.OwnedBy(playerID) {
		if board.TroopsOf(from) <= 1 {
			continue
		}
		for _, to := range board.Graph.Neighbors(from) {
			if board.OwnerOf(to) == playerID {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}

// DeployTargets lists the territories a player may reinforce.
func (lmc *LegalMoveCalculator) DeployTargets(board *core.Board, player Player) []core.TerritoryID {
	if !player.IsAlive() {
		return nil
	}
	return board.OwnedBy(player.GetID())
}

// CanAttack reports whether the player has at least one legal attack.
func (lmc *LegalMoveCalculator) CanAttack(board *core.Board, player Player) bool {
	return len(lmc.AttackMoves(board, player)) > 0
}
